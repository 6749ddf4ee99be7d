package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/internal/config"
	"github.com/weft-ui/weft/internal/deploy"
)

func deployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Upload the exported site to S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cfg.Deploy.Bucket == "" {
				return fmt.Errorf("deploy.bucket is not set in %s", cfgPath)
			}
			if _, err := os.Stat(cfg.Build.OutDir); err != nil {
				warn("output dir %s missing; run `weft build` first", cfg.Build.OutDir)
				return err
			}

			client := s3.New(s3.Options{Region: cfg.Deploy.Region})
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			p := deploy.NewPublisher(client, cfg.Deploy.Bucket, cfg.Deploy.Prefix, log)

			n, err := p.Publish(cmd.Context(), cfg.Build.OutDir)
			if err != nil {
				return err
			}
			success("deployed %d objects to s3://%s/%s", n, cfg.Deploy.Bucket, cfg.Deploy.Prefix)
			return nil
		},
	}
}
