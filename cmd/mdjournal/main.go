package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mdjournal/internal/bootstrap"
	"mdjournal/internal/platform/config"
	"mdjournal/internal/platform/logger"
)

type globalFlags struct {
	vault   string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "mdjournal",
		Short:         "Markdown journal with local insights",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.vault, "vault", ".", "journal vault path")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "debug logging on stderr")

	root.AddCommand(newEntryCmd(flags))
	root.AddCommand(newInsightsCmd(flags))
	root.AddCommand(newReindexCmd(flags))
	root.AddCommand(newDemoCmd(flags))
	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	return root
}

func loadApp(cmd *cobra.Command, flags *globalFlags) (*bootstrap.App, error) {
	cfg, err := config.New(flags.vault)
	if err != nil {
		return nil, err
	}
	log := logger.New(flags.verbose || cfg.Verbose, cmd.ErrOrStderr())
	return bootstrap.New(cfg, log)
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the journal terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newReindexCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite projection from vault markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Reindex(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newDemoCmd(flags *globalFlags) *cobra.Command {
	demo := &cobra.Command{Use: "demo", Short: "Demo data"}
	demo.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Write sample entries spread over the last three weeks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			n, err := app.JournalCLI.SeedDemo(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d entries\n", n)
			return nil
		},
	})
	return demo
}

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the journal and insights over local HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			srv := bootstrap.NewServer(app, addr)
			if addr == "" {
				addr = app.Config.ServeAddr
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "listening on http://%s\n", addr)
			return srv.Run(ctx)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return serve
}
