// Command ticketdesk is a terminal client for the ticket service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/target/ticketdesk/config"
	"github.com/target/ticketdesk/internal/bootstrap"
	"github.com/target/ticketdesk/internal/domain/notification"
	"github.com/target/ticketdesk/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	usage       string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	App    *bootstrap.App

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// errUsage signals a command line mistake; it maps to exit status 2.
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code) //nolint:forbidigo // CLI must propagate command status to the shell
}

// run executes one command and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		_ = printUsage(stderr)
		if len(args) < 1 {
			return 2
		}
		return 0
	}

	cmdName := args[0]
	cmd, ok := commands()[cmdName]
	if !ok {
		_ = writef(stderr, "unknown command %q\n\n", cmdName)
		_ = printUsage(stderr)
		return 2
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		_ = writef(stderr, "error: load config: %v\n", err)
		return 1
	}
	logger := bootstrap.InitLogger(cfg.Observability, stderr)

	app, err := bootstrap.NewApp(ctx, bootstrap.AppOptions{Config: cfg, Logger: logger})
	if err != nil {
		logger.ErrorContext(ctx, "startup failed", "error", err)
		return 1
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("shutdown failed", "error", closeErr)
		}
	}()

	stopEcho := echoNotifications(app.Notifications, stderr)
	defer stopEcho()

	if initErr := app.Init(ctx); initErr != nil {
		logger.ErrorContext(ctx, "restore session failed", "error", initErr)
		return 1
	}

	cmdCtx := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		Config: cfg,
		App:    app,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
	if runErr := cmd.run(cmdCtx, args[1:]); runErr != nil {
		if errors.Is(runErr, pflag.ErrHelp) {
			return 0
		}
		_ = writef(stderr, "error: %v\n", runErr)
		if errors.Is(runErr, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func commands() map[string]command {
	list := []command{
		{"login", "login --email EMAIL [--password PW]", "Sign in and store the credential", runLogin},
		{"signup", "signup --email EMAIL --username NAME [--full-name NAME] [--password PW]", "Create an account and sign in", runSignup},
		{"logout", "logout", "Forget the stored credential", runLogout},
		{"whoami", "whoami [-o table|json|yaml]", "Show the signed-in identity", runWhoami},
		{"pages", "pages", "List the views offered to the signed-in identity", runPages},
		{"dashboard", "dashboard [-o table|json|yaml]", "Show the landing view", runDashboard},
		{"tickets", "tickets [--query EXPR] [-o table|json|yaml]", "List visible tickets", runTickets},
		{"ticket", "ticket ID [-o table|json|yaml]", "Show one ticket", runTicket},
		{"create-ticket", "create-ticket --title TITLE --description TEXT", "Open a new ticket", runCreateTicket},
		{"set-status", "set-status ID STATUS", "Change a ticket's status (open, in_progress, resolved, closed)", runSetStatus},
		{"stats", "stats [-o table|json|yaml]", "Show dashboard statistics (admin)", runStats},
		{"users", "users [-o table|json|yaml]", "List users (admin)", runUsers},
		{"update-user", "update-user ID --role ROLE [--skills a,b]", "Change a user's role and skills (admin)", runUpdateUser},
		{"rerun-ai", "rerun-ai", "Re-run AI triage on every ticket (admin)", runRerunAI},
	}
	out := make(map[string]command, len(list))
	for _, c := range list {
		out[c.name] = c
	}
	return out
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: ticketdesk <command> [flags]\n\nAvailable commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-16s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return writef(w, "\nConfiguration is read from TICKETDESK_* environment variables and .env.\n")
}

// newFlagSet builds a pflag set whose errors and help go to the command's stderr.
func newFlagSet(c *commandContext, name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(c.Stderr)
	fs.Usage = func() {
		_ = writef(c.Stderr, "Usage: ticketdesk %s\n", commands()[name].usage)
		fs.PrintDefaults()
	}
	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// echoNotifications prints each newly pushed notification to w.
func echoNotifications(q *service.NotificationQueue, w io.Writer) func() {
	var mu sync.Mutex
	seen := make(map[string]struct{})
	return q.Subscribe(func(list []notification.Notification) {
		mu.Lock()
		defer mu.Unlock()
		for _, n := range list {
			if _, ok := seen[n.ID]; ok {
				continue
			}
			seen[n.ID] = struct{}{}
			_ = writef(w, "[%s] %s\n", strings.ToUpper(string(n.Kind)), n.Message)
		}
	})
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
