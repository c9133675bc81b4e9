package fs

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/kinolist"
)

// Default credential file names, relative to the working directory.
const (
	DefaultCookiesJSON = "cookies.json"
	DefaultCookiesText = "cookies.txt"
)

// netscapeHTTPOnlyPrefix marks HttpOnly cookies in Netscape exports.
// Such lines look like comments but are cookie records.
const netscapeHTTPOnlyPrefix = "#HttpOnly_"

// Ensure CredentialStore implements kinolist.CredentialStore at compile time.
var _ kinolist.CredentialStore = (*CredentialStore)(nil)

// CredentialStore loads cookies from a persisted JSON map, falling back to
// a browser cookie export which is then persisted as JSON for later runs.
type CredentialStore struct {
	jsonPath string
	textPath string
}

// NewCredentialStore creates a CredentialStore reading jsonPath first and textPath second.
func NewCredentialStore(jsonPath, textPath string) *CredentialStore {
	return &CredentialStore{
		jsonPath: jsonPath,
		textPath: textPath,
	}
}

// Load returns the stored credentials.
func (s *CredentialStore) Load(ctx context.Context) (kinolist.Credentials, error) {
	creds, err := s.loadJSON()
	if err == nil {
		return creds, creds.Validate()
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return kinolist.Credentials{}, err
	}

	f, err := os.Open(s.textPath)
	if errors.Is(err, fs.ErrNotExist) {
		return kinolist.Credentials{}, kinolist.Errorf(kinolist.ENOTFOUND, "%s not found", filepath.Base(s.textPath))
	}
	if err != nil {
		return kinolist.Credentials{}, err
	}
	defer f.Close()

	cookies, err := ParseCookieText(f)
	if err != nil {
		return kinolist.Credentials{}, fmt.Errorf("parse %s: %w", s.textPath, err)
	}
	creds = kinolist.NewCredentials(cookies)
	if err := creds.Validate(); err != nil {
		return kinolist.Credentials{}, err
	}

	if err := s.save(creds); err != nil {
		return kinolist.Credentials{}, fmt.Errorf("persist %s: %w", s.jsonPath, err)
	}
	return creds, nil
}

func (s *CredentialStore) loadJSON() (kinolist.Credentials, error) {
	data, err := os.ReadFile(s.jsonPath)
	if err != nil {
		return kinolist.Credentials{}, err
	}
	var creds kinolist.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return kinolist.Credentials{}, kinolist.Errorf(kinolist.EINVALID, "invalid %s: %v", filepath.Base(s.jsonPath), err)
	}
	return creds, nil
}

func (s *CredentialStore) save(creds kinolist.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.jsonPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.jsonPath, data, 0600)
}

// ParseCookieText reads a cookie export with one cookie per line whose last
// two whitespace-separated tokens are the name and the (optionally quoted) value.
func ParseCookieText(r io.Reader) (map[string]string, error) {
	cookies := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") && !strings.HasPrefix(line, netscapeHTTPOnlyPrefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := fields[len(fields)-2]
		value := strings.Trim(fields[len(fields)-1], `"`)
		cookies[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cookies, nil
}
