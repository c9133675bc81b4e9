package kinolist

import (
	"context"
	"encoding/json"
	"sort"
)

// SessionCookie is the cookie that carries the authenticated session identity.
const SessionCookie = "Session_id"

// UserIDCookie holds the numeric ID of the logged-in user.
const UserIDCookie = "uid"

// Credentials is an immutable set of cookies presented with every request.
type Credentials struct {
	cookies map[string]string
}

// NewCredentials returns credentials holding a copy of cookies.
func NewCredentials(cookies map[string]string) Credentials {
	m := make(map[string]string, len(cookies))
	for k, v := range cookies {
		m[k] = v
	}
	return Credentials{cookies: m}
}

// Get returns the value of the named cookie.
func (c Credentials) Get(name string) (string, bool) {
	v, ok := c.cookies[name]
	return v, ok
}

// Len returns the number of cookies.
func (c Credentials) Len() int {
	return len(c.cookies)
}

// Names returns cookie names in sorted order.
func (c Credentials) Names() []string {
	names := make([]string, 0, len(c.cookies))
	for k := range c.cookies {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// UserID returns the ID of the logged-in user, if the cookies carry one.
func (c Credentials) UserID() string {
	return c.cookies[UserIDCookie]
}

// Map returns a copy of the cookies.
func (c Credentials) Map() map[string]string {
	m := make(map[string]string, len(c.cookies))
	for k, v := range c.cookies {
		m[k] = v
	}
	return m
}

// Validate returns an error if the credentials cannot authenticate a session.
func (c Credentials) Validate() error {
	if len(c.cookies) == 0 {
		return Errorf(EINVALID, "credentials contain no cookies")
	}
	if v := c.cookies[SessionCookie]; v == "" {
		return Errorf(EINVALID, "credentials missing %s cookie", SessionCookie)
	}
	return nil
}

// MarshalJSON encodes the credentials as a flat JSON object.
func (c Credentials) MarshalJSON() ([]byte, error) {
	if c.cookies == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.cookies)
}

// UnmarshalJSON decodes a flat JSON object of cookie values.
func (c *Credentials) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*c = NewCredentials(m)
	return nil
}

// CredentialStore loads the cookies used to authenticate requests.
type CredentialStore interface {
	// Load returns the stored credentials.
	// Returns ENOTFOUND if no credential source exists.
	Load(ctx context.Context) (Credentials, error)
}
