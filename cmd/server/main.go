package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"studypipe/internal/application/generate"
	studyapp "studypipe/internal/application/study"
	"studypipe/internal/config"
	"studypipe/internal/infrastructure/assemblyai"
	"studypipe/internal/infrastructure/groq"
	"studypipe/internal/infrastructure/ytdlp"
	"studypipe/internal/metrics"
	httptransport "studypipe/internal/transport/http"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "studypipe",
		Short: "Turn a video URL into transcripts, quiz questions, and flashcards",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.ServerAddr = addr
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	return cmd
}

func serve(cfg config.Config) error {
	logger := log.Default()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	fetcher := ytdlp.NewFetcher(cfg.YtdlpBin)

	transcriber := assemblyai.NewClient(cfg.AssemblyAIBaseURL, cfg.AssemblyAIAPIKey)
	transcriber.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second
	transcriber.MaxAttempts = cfg.PollMaxAttempts

	generator := generate.NewService(groq.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, groq.DefaultModel), logger)
	service := studyapp.NewService(fetcher, transcriber, generator, collector, logger, cfg.WorkDir)

	handler := httptransport.NewHandler(service)
	router := httptransport.NewRouter(handler, registry)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	})

	logger.Printf("Server started on %s", cfg.ServerAddr)
	return http.ListenAndServe(cfg.ServerAddr, c.Handler(router))
}
