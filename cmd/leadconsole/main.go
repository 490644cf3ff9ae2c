package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leadconsole/internal/config"
	"leadconsole/internal/console"
	"leadconsole/internal/importdir"
	"leadconsole/internal/logging"
	"leadconsole/internal/trace"
	"leadconsole/internal/ui"
)

// Set by the linker.
var version = "dev"

type rootOptions struct {
	configPath string
	importDir  string
	logFile    string
	debug      bool
	quantity   int
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(&rootOptions{})
}

func newRootCmdWithOptions(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leadconsole",
		Short: "Console de distribuição de leads de crédito",
		Long: `leadconsole is a terminal console for a credit-lead brokerage.

Operators log in, import lead lists from CSV files, hand the first N leads
of the pool to a seller and manage the seller roster.

Run without arguments to open the console.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			return runConsole(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "Config file")
	flags.StringVar(&opts.importDir, "import-dir", "", "Directory CSV files are listed from (or set "+importdir.DirEnv+")")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file (or set "+config.LogFileEnv+")")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().IntVar(&opts.quantity, "quantity", 0, "Initial value of the lead quantity stepper")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newSampleCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// loadConfig reads the config file and lays explicitly set flags on top.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.importDir != "" {
		cfg.ImportDir = o.importDir
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = o.debug
	}
	if f := cmd.Flags().Lookup("quantity"); f != nil && f.Changed {
		cfg.DefaultQuantity = o.quantity
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", o.configPath, err)
	}
	return cfg, nil
}

func runConsole(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tracer, err := trace.NewProvider(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to start tracing: %w", err)
	}
	defer func() {
		if err := tracer.Shutdown(context.Background()); err != nil {
			logger.Warn("trace shutdown failed", zap.Error(err))
		}
	}()

	store, err := importdir.NewStore(cfg.ImportDir)
	if err != nil {
		return err
	}

	svc, err := console.New(console.Options{
		Seed:   cfg.Seed(),
		Store:  store,
		Logger: logger,
		Tracer: tracer,
	})
	if err != nil {
		return err
	}

	logger.Info("console starting",
		zap.String("version", version),
		zap.String("import_dir", store.BaseDir()),
		zap.Bool("tracing", tracer.Enabled()),
	)

	m := ui.NewAppModel(svc, cfg.DefaultQuantity)
	m.Ctx = ctx
	p := tea.NewProgram(m.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("console exited", zap.Error(err))
		return err
	}
	logger.Info("console closed")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "leadconsole", version)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
