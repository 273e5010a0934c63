package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/httpstatus"
	"github.com/fwojciec/httpstatus/fs"
	statushttp "github.com/fwojciec/httpstatus/http"
	statusslog "github.com/fwojciec/httpstatus/slog"
	"github.com/fwojciec/httpstatus/sqlite"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// ErrNoMatch is returned by the find command when nothing matched.
// The not-found message has already been written to stdout.
var ErrNoMatch = errors.New("no matching status")

func main() {
	ctx := context.Background()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if code := ExitCode(err); code != ExitOK {
		if code == ExitError {
			fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		}
		os.Exit(code)
	}
}

// ExitCode maps the result of Run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoMatch):
		return ExitNoMatch
	default:
		return ExitError
	}
}

func errorText(err error) string {
	if httpstatus.ErrorCode(err) == httpstatus.EINTERNAL {
		return err.Error()
	}
	return httpstatus.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// SQLite index, opened only when a database path is configured.
	DB *sqlite.DB

	// Services for end-to-end testing.
	StatusLoader  httpstatus.StatusLoader
	StatusService httpstatus.StatusService
	Fetcher       httpstatus.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("httpstatus"),
		kong.Description("Look up HTTP status codes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if isHelp(args) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(statusslog.NewTerminalHandler(stderr, level))
	deps.Logger = logger
	deps.DataPath = cli.Data

	if strings.HasPrefix(kongCtx.Command(), "update") {
		if m.Fetcher == nil {
			m.Fetcher = statushttp.NewFetcher()
		}
		deps.Fetcher = statusslog.NewLoggingFetcher(m.Fetcher, logger)
		return kongCtx.Run(deps)
	}

	// Load the dataset. Any failure here is fatal.
	if m.StatusLoader == nil {
		m.StatusLoader = fs.NewLoader(cli.Data)
	}
	source := cli.Data
	if source == "" {
		source = "embedded"
	}
	statuses, err := statusslog.NewLoggingStatusLoader(m.StatusLoader, source, logger).LoadStatuses(ctx)
	if err != nil {
		return err
	}

	if m.StatusService == nil {
		svc, err := m.openStatusService(ctx, cli.DB, statuses, logger)
		if err != nil {
			return err
		}
		defer m.Close()
		m.StatusService = svc
	}
	deps.Statuses = statusslog.NewLoggingStatusService(m.StatusService, logger)

	return kongCtx.Run(deps)
}

// openStatusService returns the SQLite index when dbPath is set,
// otherwise an in-memory service over statuses.
func (m *Main) openStatusService(ctx context.Context, dbPath string, statuses []httpstatus.Status, logger *slog.Logger) (httpstatus.StatusService, error) {
	if dbPath == "" {
		return fs.NewStatusService(statuses), nil
	}

	db := sqlite.NewDB(dbPath)
	if err := db.Open(); err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}

	svc := sqlite.NewStatusService(db)
	imported, err := svc.Import(ctx, statuses)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to import dataset: %w", err)
	}
	m.DB = db
	logger.Debug("index dataset", "path", dbPath, "imported", imported, "count", len(statuses))

	return svc, nil
}

func isHelp(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}
