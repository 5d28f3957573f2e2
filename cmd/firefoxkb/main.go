package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/cibere/firefoxkb"
	"github.com/cibere/firefoxkb/cache"
	"github.com/cibere/firefoxkb/clipboard"
	fkbexec "github.com/cibere/firefoxkb/exec"
	"github.com/cibere/firefoxkb/flow"
	fkbslog "github.com/cibere/firefoxkb/slog"
	"github.com/cibere/firefoxkb/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI describes the process-level flags. All functional configuration
// comes from the host launcher's settings, delivered with every query;
// these flags only control logging.
type CLI struct {
	Log      string `help:"Path of the plugin log file." default:"FirefoxKeywordBookmarks.log" type:"path"`
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"info"`
}

// Main represents the program.
type Main struct {
	// Log file opened by Run, closed by Close.
	logFile *os.File

	// Cache behind the plugin, exposed for end-to-end testing.
	Cache firefoxkb.BookmarkCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.logFile != nil {
		return m.logFile.Close()
	}
	return nil
}

// Run wires the plugin together and serves host requests from stdin until
// the host closes the stream.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("firefoxkb"),
		kong.Description("Firefox keyword bookmark lookup plugin."),
		kong.Writers(stderr, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger, err := m.openLogger(cli)
	if err != nil {
		return err
	}

	reader := fkbslog.NewLoggingReader(sqlite.NewBookmarkReader(), logger)
	m.Cache = fkbslog.NewLoggingCache(cache.New(reader), logger)

	// stdout belongs to the host protocol; everything else goes to the
	// log file.
	conn := flow.NewConn(stdin, stdout)
	plugin := &flow.Plugin{
		Cache:     m.Cache,
		Launcher:  conn,
		Clipboard: clipboard.New(),
		Browser:   fkbexec.NewBrowser(),
		Logger:    logger,
		LogDir:    filepath.Dir(cli.Log),
	}

	logger.Info("plugin started", "log_file", cli.Log)
	return flow.Serve(ctx, conn, plugin)
}

// openLogger opens the log file and builds a JSON logger tagged with a
// session ID, so overlapping plugin restarts stay distinguishable in one
// file.
func (m *Main) openLogger(cli *CLI) (*slog.Logger, error) {
	f, err := os.OpenFile(cli.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", cli.Log, err)
	}
	m.logFile = f

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger.With("session_id", uuid.New().String()), nil
}
