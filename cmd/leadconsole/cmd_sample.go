package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadconsole/internal/importdir"
	"leadconsole/internal/sample"
)

func newSampleCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write an example lead CSV into the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := importdir.NewStore(cfg.ImportDir)
			if err != nil {
				return err
			}
			path, err := sample.Write(store.BaseDir(), force)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing example")
	return cmd
}
