package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/tinypal/internal/api"
	"github.com/csheth/tinypal/internal/config"
	"github.com/csheth/tinypal/internal/content"
	"github.com/csheth/tinypal/internal/logging"
	"github.com/csheth/tinypal/internal/tinu"
	"github.com/csheth/tinypal/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tinypal:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath  string
	baseURL     string
	screen      string
	timeout     time.Duration
	logFile     string
	debug       bool
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{})
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tinypal",
		Short: "Parenting insight cards with Ask Tinu follow-ups",
		Long: `TinyPal shows personalized Did-You-Know and flash cards in the terminal.
Page through a carousel and ask Tinu for scripts and follow-up prompts
about the card on screen.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.baseURL, "base-url", "", "content service base URL")
	flags.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "per-request timeout")
	flags.StringVar(&opts.logFile, "log-file", config.DefaultLogPath, "log file path (empty disables logging)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.screen, "screen", "home", "start screen: home, dyk or flash")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")

	cmd.AddCommand(newFetchCmd(opts))
	return cmd
}

// loadConfig layers flags the user set over file and environment values.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, fmt.Errorf("error loading config: %w", err)
	}
	changed := func(name string) bool {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
		return false
	}
	if changed("base-url") {
		cfg.API.BaseURL = opts.baseURL
	}
	if changed("timeout") {
		cfg.API.Timeout = opts.timeout.String()
	}
	if changed("log-file") {
		cfg.Logging.File = opts.logFile
	}
	if changed("screen") {
		cfg.UI.Screen = opts.screen
	}
	if changed("no-alt-screen") {
		cfg.UI.AltScreen = !opts.noAltScreen
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type services struct {
	logger  *zap.Logger
	fetcher content.Fetcher
	tinu    tinu.Service
}

func buildServices(cfg config.Config, debug bool) (*services, error) {
	logger, err := logging.New(logging.Options{Path: cfg.Logging.File, Level: cfg.Logging.Level, Debug: debug})
	if err != nil {
		return nil, fmt.Errorf("error opening log: %w", err)
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: timeout,
		Hooks:   api.LoggingHooks(logger),
	})

	responses := make([]content.Response, 0, len(cfg.Identity.Responses))
	for _, r := range cfg.Identity.Responses {
		responses = append(responses, content.Response{
			QuestionID:        r.QuestionID,
			SelectedChoiceIDs: r.SelectedChoiceIDs,
			OpenResponseText:  r.OpenResponseText,
			Timestamp:         r.Timestamp,
		})
	}
	fetcher := content.NewHTTPFetcher(client, content.Profile{
		ModuleID:  cfg.Identity.ModuleID,
		ParentID:  cfg.Identity.ParentID,
		ChildID:   cfg.Identity.ChildID,
		Responses: responses,
	}, cfg.ImageBase())
	service := tinu.NewHTTPService(client, tinu.Identity{
		ChildID:  cfg.Identity.ChildID,
		ModuleID: cfg.Identity.ModuleID,
	})
	return &services{logger: logger, fetcher: fetcher, tinu: service}, nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	svc, err := buildServices(cfg, opts.debug)
	if err != nil {
		return err
	}
	defer func() { _ = svc.logger.Sync() }()
	svc.logger.Info("starting tinypal", zap.String("base_url", cfg.API.BaseURL), zap.String("screen", cfg.UI.Screen))

	programOpts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Fetcher:     svc.fetcher,
			Tinu:        svc.tinu,
			Logger:      svc.logger,
			StartScreen: cfg.UI.Screen,
		}),
		programOpts...,
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
