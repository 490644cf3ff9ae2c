package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadconsole/internal/importdir"
	"leadconsole/internal/lead"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.csv>",
		Short: "Parse a lead CSV and report what an import would load",
		Long: `Parses a lead file exactly as the console's import does, without opening
the console. Relative names are resolved against the import directory.

Expected columns: NOME,CPF,TELEFONE,VALOR LIBERADO`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := importdir.NewStore(cfg.ImportDir)
			if err != nil {
				return err
			}
			raw, err := store.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			leads, report, err := lead.ParseWithReport(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", store.Resolve(args[0]))
			fmt.Fprintf(out, "  linhas:     %d\n", report.Rows)
			fmt.Fprintf(out, "  importados: %d\n", report.Imported)
			fmt.Fprintf(out, "  ignorados:  %d\n", report.Skipped)
			fmt.Fprintf(out, "  valores inválidos: %d\n", report.ZeroedAmounts)
			fmt.Fprintf(out, "  total:      %s\n", lead.FormatBRL(lead.Sum(leads)))
			return nil
		},
	}
}
