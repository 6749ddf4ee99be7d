package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/internal/config"
	"github.com/weft-ui/weft/internal/devserver"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the development server with hot reload",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			printBanner()
			info("serving %s on http://%s", cfg.Name, cfg.Addr())
			info("watching %v", cfg.Build.WatchDirs)

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			srv := devserver.New(cfg, devserver.WithLogger(log))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
}
