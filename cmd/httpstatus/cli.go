package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/httpstatus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Statuses httpstatus.StatusService
	Fetcher  httpstatus.Fetcher
	DataPath string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data    string `type:"path" env:"HTTPSTATUS_DATA" help:"Status dataset JSON file (defaults to the bundled dataset)"`
	DB      string `name:"db" type:"path" env:"HTTPSTATUS_DB" help:"SQLite index to query instead of scanning in memory"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Find   FindCmd   `cmd:"" default:"withargs" help:"Look up status codes (default)"`
	Update UpdateCmd `cmd:"" help:"Download the latest status dataset"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Code   string `arg:"" optional:"" name:"CODE" help:"HTTP status code"`
	Search *string `short:"s" name:"search" placeholder:"KEYWORD" help:"Sets a keyword to search"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	URL string `help:"Dataset URL (defaults to the upstream know-your-http-well dataset)"`
	Out string `type:"path" help:"Output file (defaults to --data, then status-codes.json)"`
}
