package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Programie/LoxoneStats2InfluxDB/hlog"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/config"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/options"
	"github.com/Programie/LoxoneStats2InfluxDB/pkg/miniserver"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sensors without importing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := hlog.GetLogger("list")
		ctx := options.CommandLineContext(log, Commit)
		defer options.Done(ctx)

		cfg, err := config.Load(options.Flags.Config)
		if err != nil {
			return err
		}

		client := miniserver.NewClient(cfg.Miniserver)

		files, err := client.ListFiles(ctx)
		if err != nil {
			log.Error(err, "Failed to get list of stats files")
			return nil
		}

		sensors := miniserver.Sensors(files)

		switch {
		case options.Flags.Json:
			s, err := json.Marshal(sensors)
			if err != nil {
				return err
			}
			fmt.Println(string(s))
		case options.Flags.Yaml:
			s, err := yaml.Marshal(sensors)
			if err != nil {
				return err
			}
			fmt.Print(string(s))
		default:
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, sensor := range sensors {
				fmt.Fprintf(w, "%s\t%s\n", sensor.Id, sensor.Name)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&options.Flags.Json, "json", false, "output as JSON")
	listCmd.Flags().BoolVar(&options.Flags.Yaml, "yaml", false, "output as YAML")
}
