package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/kinolist"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Now     func() time.Time
	BaseDir string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" env:"KINOLIST_VERBOSE" help:"Log requests and extraction details to stderr"`
	Dir     string `short:"d" default:"." env:"KINOLIST_DIR" help:"Directory holding list folders"`

	Fetch FetchCmd `cmd:"" help:"Download every page of a movie list"`
	Parse ParseCmd `cmd:"" help:"Extract movies from downloaded pages into a table"`
	Run   RunCmd   `cmd:"" help:"Fetch a movie list and write its table"`
}

// FolderFlags name the local folder a list is kept in.
type FolderFlags struct {
	FolderName string `name:"folder-name" short:"n" default:"Watched" env:"KINOLIST_FOLDER_NAME" help:"Local folder for pages and tables"`
}

// FetchFlags configure how a list is downloaded.
type FetchFlags struct {
	UserID      string        `name:"user-id" short:"u" env:"KINOLIST_USER_ID" help:"Kinopoisk user ID (defaults to the uid cookie)"`
	FolderID    string        `name:"folder-id" short:"f" env:"KINOLIST_FOLDER_ID" help:"Kinopoisk folder ID"`
	Concurrency int           `short:"c" default:"10" env:"KINOLIST_CONCURRENCY" help:"Concurrent page requests"`
	Timeout     time.Duration `short:"t" default:"10s" env:"KINOLIST_TIMEOUT" help:"Per-request timeout"`
	Rate        float64       `default:"0" env:"KINOLIST_RATE" help:"Requests per second, 0 for no limit"`
	Cookies     string        `default:"cookies.json" env:"KINOLIST_COOKIES" help:"Saved cookie file"`
	CookiesTxt  string        `name:"cookies-txt" default:"cookies.txt" env:"KINOLIST_COOKIES_TXT" help:"Browser cookie export, read when the saved file is missing"`
	Site        string        `default:"https://www.kinopoisk.ru" env:"KINOLIST_SITE" help:"Site origin"`
}

// ParseFlags configure how stored pages become a table.
type ParseFlags struct {
	Format string `enum:"xlsx,csv,sqlite" default:"xlsx" env:"KINOLIST_FORMAT" help:"Output format (xlsx, csv, sqlite)"`
	Strict bool   `env:"KINOLIST_STRICT" help:"Fail on the first movie without a title instead of skipping it"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	FolderFlags `embed:""`
	FetchFlags  `embed:""`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	FolderFlags `embed:""`
	ParseFlags  `embed:""`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	FolderFlags `embed:""`
	FetchFlags  `embed:""`
	ParseFlags  `embed:""`
}

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	if err := fetchList(deps, c.FolderName, &c.FetchFlags); err != nil {
		return err
	}
	return parseList(deps, c.FolderName, &c.ParseFlags)
}

// errorMessage returns the text shown to the user for err.
// Internal errors keep their full chain.
func errorMessage(err error) string {
	if kinolist.ErrorCode(err) == kinolist.EINTERNAL {
		return err.Error()
	}
	return kinolist.ErrorMessage(err)
}
