package main

import (
	"github.com/spf13/cobra"

	"github.com/van-is-code/portfolio/internal/config"
	"github.com/van-is-code/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve the built site with entry-document fallback",
	Long:    ServeHelp,
	PreRunE: bindFlags,
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().Int("port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().String("dir", config.DefaultDir, "Built assets directory")
	serveCmd.Flags().String("entry", config.DefaultEntry, "Entry document, relative to --dir")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.Run()
}
