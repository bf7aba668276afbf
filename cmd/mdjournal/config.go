package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdjournal/internal/platform/config"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Inspect and write vault settings"}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(flags.vault)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "vault: %s\n", cfg.VaultPath)
			_, _ = fmt.Fprintf(out, "file: %s\n", cfg.FilePath)
			_, _ = fmt.Fprintf(out, "timezone: %s\n", cfg.Timezone)
			_, _ = fmt.Fprintf(out, "serve.addr: %s\n", cfg.ServeAddr)
			_, _ = fmt.Fprintf(out, "series.limit: %d\n", cfg.SeriesLimit)
			_, _ = fmt.Fprintf(out, "verbose: %t\n", cfg.Verbose)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write config.toml with the resolved settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(flags.vault)
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfg.FilePath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.FilePath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.FilePath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.toml")
	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}
