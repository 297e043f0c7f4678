package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ergosmind/mindstyle-server/internal/config"
	"github.com/ergosmind/mindstyle-server/internal/delivery"
	"github.com/ergosmind/mindstyle-server/internal/layout"
	"github.com/ergosmind/mindstyle-server/internal/rendering"
	"github.com/ergosmind/mindstyle-server/internal/server"
	"github.com/ergosmind/mindstyle-server/internal/styles"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server that serves the quiz front-end and the report-generation endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print a summary of every generated report")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if insecure := cfg.InsecureDefaults(); len(insecure) > 0 {
		log.Printf("WARNING: %s not set; email delivery will fail with the placeholder credentials",
			strings.Join(insecure, ", "))
	}

	sender, err := delivery.NewSMTPSender(delivery.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPUser,
	})
	if err != nil {
		return fmt.Errorf("failed to create mail sender: %w", err)
	}

	engine := layout.NewEngine(styles.NewCatalog(), rendering.NewMetrics())

	srv := server.New(server.Config{
		Port:        cfg.Port,
		PublicDir:   cfg.PublicDir,
		SendTimeout: cfg.SendTimeout,
		Verbose:     serveVerbose,
	}, engine, sender)

	return srv.Start()
}
