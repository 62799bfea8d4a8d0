package cmd

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"reelscript/internal/app"
	"reelscript/internal/llm/groq"
	"reelscript/internal/server"
	"reelscript/pkg/config"
	"reelscript/pkg/prompts"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the generation HTTP API",
	Long: `Serve a JSON API for script generation. Each request runs its own
sequential pipeline; nothing is shared between requests.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (defaults to config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := prompts.Load()
	if err != nil {
		return err
	}

	client, err := groq.NewClient(groq.Config{
		APIKey:      cfg.GroqAPIKey,
		Model:       cfg.Groq.Model,
		MaxTokens:   cfg.Groq.MaxTokens,
		Temperature: *cfg.Groq.Temperature,
		Prompts:     p,
	})
	if err != nil {
		return err
	}

	srv, err := server.New(app.NewPipeline(client))
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	slog.Info("Listening", "addr", addr)
	return http.ListenAndServe(addr, srv.Routes())
}
