package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfbridge/internal/inspect"
	"github.com/pdiddy/pdfbridge/internal/logging"
	"github.com/pdiddy/pdfbridge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP conversion service",
	Long: `Serve starts the HTTP service: an upload page at /, a health probe at
/health, and the API under /api/ (pdf-info, convert-single,
convert-batch). The conversion engine and the metadata reader are
checked before the listener starts, so a broken installation fails
here instead of on the first upload.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg, log)
	if err != nil {
		return err
	}

	insp, err := inspect.New()
	if err != nil {
		return err
	}
	defer insp.Close()

	return server.New(cfg, conv, insp, log).Run()
}

func init() {
	serveCmd.Flags().String("host", "", "listen address (overrides config)")
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
