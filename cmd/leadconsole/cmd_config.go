package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leadconsole/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", opts.configPath)
			}
			if err := config.DefaultConfig().Save(opts.configPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", opts.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), opts.configPath)
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
