package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/shopdesk"
	"github.com/smileynet/shopdesk/internal/config"
	"github.com/smileynet/shopdesk/internal/customer"
	"github.com/smileynet/shopdesk/internal/logger"
	"github.com/smileynet/shopdesk/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	userConfigPath    = "$HOME/.config/shopdesk/config.yaml"
	projectConfigPath = ".shopdesk/config.yaml"
)

// CLI is the top-level command structure for shopdesk.
type CLI struct {
	Version   kong.VersionFlag `help:"Show version." short:"V"`
	Customers CustomersCmd     `cmd:"" help:"Open the customers screen."`
	Config    ConfigCmd        `cmd:"" help:"Manage shopdesk configuration."`
}

// CustomersCmd opens the customers screen.
type CustomersCmd struct {
	NoTUI bool `help:"Force the line console even if stdout is a TTY." default:"false"`
}

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write the default configuration file."`
}

// ConfigInitCmd writes the embedded default configuration.
type ConfigInitCmd struct {
	Path  string `help:"Destination file." default:"${project_config}"`
	Force bool   `help:"Overwrite an existing file." default:"false"`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv(userConfigPath),
		projectConfigPath,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run builds config, logging, and the controller, then runs the display.
func (c *CustomersCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("customers: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("customers: %w", err)
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("customers: %w", err)
	}
	defer func() { _ = closer.Close() }()

	ctrl := customer.NewController(customer.WithLogger(log))
	display := tui.NewDisplay(ctrl, tui.DisplayOptions{
		Writer:     os.Stdout,
		Reader:     os.Stdin,
		ForcePlain: c.NoTUI,
		Options:    displayOptions(cfg),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.run(ctx, display, log)
}

// run executes the display, enabling testable wiring. An interrupt ends the
// session without error.
func (c *CustomersCmd) run(ctx context.Context, display tui.Display, log *slog.Logger) error {
	log.Info("customers session started", "plain", c.NoTUI)
	err := display.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		log.Error("customers session failed", "error", err)
		return &sessionError{err: err}
	}
	log.Info("customers session ended")
	return nil
}

// displayOptions maps configuration onto presentation options.
func displayOptions(cfg *config.Config) []tui.Option {
	return []tui.Option{
		tui.WithDebounce(cfg.Search.Debounce),
		tui.WithPhoneRegion(cfg.Display.PhoneRegion),
		tui.WithTimeFormat(cfg.Display.TimeFormat),
	}
}

// Run writes the default configuration file.
func (c *ConfigInitCmd) Run() error {
	return c.run(os.Stdout)
}

// run writes the config and reports the path, enabling testable wiring.
func (c *ConfigInitCmd) run(w io.Writer) error {
	if err := shopdesk.WriteDefaultConfig(c.Path, c.Force); err != nil {
		if errors.Is(err, shopdesk.ErrConfigExists) {
			return fmt.Errorf("config init: %s already exists (use --force to overwrite): %w", c.Path, err)
		}
		return fmt.Errorf("config init: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Wrote default config to %s\n", c.Path)
	return nil
}

// sessionError marks a failure after the customers session started.
type sessionError struct {
	err error
}

func (e *sessionError) Error() string { return "customers: " + e.err.Error() }

func (e *sessionError) Unwrap() error { return e.err }

const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sessionError
	if errors.As(err, &se) {
		return exitRuntime
	}
	var ce *customer.Error
	if errors.As(err, &ce) {
		return exitRuntime
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("shopdesk"),
		kong.Description("Manage a small shop's customers from the terminal."),
		kong.Vars{
			"version":        version + " " + commit + " " + date,
			"project_config": projectConfigPath,
		},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
