package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/activehq/activehq-go/config"
	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultCommandTimeout = time.Minute

func main() {
	logger := bootstrap.InitLogger(false)

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	if cfg.IsDev {
		logger = bootstrap.InitLogger(true)
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		if writeErr := writeln(os.Stderr, api.ErrorMessage(runErr)); writeErr != nil {
			logger.Error("print error message failed", "error", writeErr)
		}
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	all := map[string]command{}
	for _, group := range []map[string]command{
		authCommands(),
		gymCommands(),
		memberCommands(),
		planCommands(),
		membershipCommands(),
		paymentCommands(),
		attendanceCommands(),
		reportCommands(),
	} {
		for name, c := range group {
			all[name] = c
		}
	}
	return all
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: activehq <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	all := commands()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(os.Stdout, "  %-24s %s\n", name, all[name].description); err != nil {
			return err
		}
	}
	return nil
}

// withClient opens the configured session backend, restores the persisted
// session, and runs fn with an API client bound to it.
func withClient(cmdCtx *commandContext, fn func(ctx context.Context, client *api.Client) error) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, defaultCommandTimeout)
	defer cancel()

	store, closeSession, err := bootstrap.OpenSession(ctx, cmdCtx.Config.Session, cmdCtx.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeSession(); closeErr != nil {
			cmdCtx.Logger.Warn("close session backend failed", "error", closeErr)
		}
	}()

	client, err := bootstrap.NewAPIClient(cmdCtx.Config.API, store, cmdCtx.Logger)
	if err != nil {
		return err
	}

	return fn(ctx, client)
}

// requireSignedIn rejects commands that need credentials before a request is
// ever made, so the user gets a clear message instead of a 401.
func requireSignedIn(client *api.Client) error {
	if !client.Session().Snapshot().Authenticated {
		return fmt.Errorf("not signed in: run %q first", "activehq login")
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func write(w io.Writer, args ...any) error {
	_, err := fmt.Fprint(w, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}

func stringPtrIfSet(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
