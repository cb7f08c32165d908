package main

import (
	"context"
	"errors"

	"github.com/Programie/LoxoneStats2InfluxDB/hlog"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/config"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/global"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/importer"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/influx"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/options"
	"github.com/Programie/LoxoneStats2InfluxDB/pkg/miniserver"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import all statistics files into InfluxDB",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := hlog.GetLogger("import")
		ctx := options.CommandLineContext(log, Commit)
		defer options.Done(ctx)

		log.V(1).Info("Starting", "version", global.Version(ctx))

		cfg, err := config.Load(options.Flags.Config)
		if err != nil {
			return err
		}

		client := miniserver.NewClient(cfg.Miniserver)

		writer, err := influx.NewWriter(cfg.InfluxDB)
		if err != nil {
			return err
		}
		defer writer.Close()

		log.Info("Getting list of stats files from Miniserver")

		files, err := client.ListFiles(ctx)
		if err != nil {
			log.Error(err, "Failed to get list of stats files")
			return nil
		}

		log.Info("Stats files to import", "count", len(files))

		imp := &importer.Importer{
			Log:      log,
			Fetcher:  client,
			Writer:   writer,
			StatsMap: cfg.StatsMap,
		}

		if err := imp.ImportAll(ctx, files); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("Import cancelled")
				return nil
			}
			log.Error(err, "Import aborted")
		}

		return nil
	},
}
