// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-harvester/internal/config"
	"github.com/pdiddy/paper-harvester/internal/export"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the configured domains, their queries, and output files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		exporter := export.NewCSVExporter(cfg.DataDir, cfg.FilePrefix)
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DOMAIN\tQUERY\tOUTPUT")
		for _, d := range cfg.Domains {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Domain, d.Query, exporter.Path(d.Domain))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}
