package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/internal/config"
	"github.com/weft-ui/weft/internal/export"
)

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			if err := export.Export(cfg.Build.OutDir, log); err != nil {
				return err
			}
			success("exported site to %s", cfg.Build.OutDir)
			return nil
		},
	}
}
