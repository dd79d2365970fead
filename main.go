package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/golddranks/pencil/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pencil",
		Short:        "pencil runs a small JSON HTTP service",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd())

	return root
}

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and block until a termination signal",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			application := app.New(configPath)
			wait := application.Start()
			<-wait

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			application.Stop(ctx)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file (yaml, json or toml)")

	return cmd
}
