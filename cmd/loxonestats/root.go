package main

import (
	"fmt"

	"github.com/Programie/LoxoneStats2InfluxDB/hlog"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/options"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "loxonestats",
	Short:        "Import statistics from Loxone Miniserver into InfluxDB",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		hlog.Init(options.Flags.Quiet, options.Flags.Verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&options.Flags.Config, "config", "c", "config.json", "the configuration file to use")
	rootCmd.PersistentFlags().BoolVarP(&options.Flags.Quiet, "quiet", "q", false, "only output warnings and errors")
	rootCmd.PersistentFlags().BoolVarP(&options.Flags.Verbose, "verbose", "v", false, "be more verbose")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Commit)
	},
}
