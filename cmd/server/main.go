package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/phonicsplay/internal/api"
	"github.com/vytor/phonicsplay/internal/config"
	"github.com/vytor/phonicsplay/internal/db"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/repository/sqlite"
	"github.com/vytor/phonicsplay/internal/services"
	"github.com/vytor/phonicsplay/internal/speech"
	"github.com/vytor/phonicsplay/internal/store"
	"github.com/vytor/phonicsplay/internal/wordlist"
	"github.com/vytor/phonicsplay/internal/worker"
	"github.com/vytor/phonicsplay/web"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("PhonicsPlay Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("words_dir=%s", cfg.WordsDir)
	log.Debug("source_url=%s", cfg.SourceURL)
	log.Debug("manifest_file=%s lists_path=%s", cfg.ManifestFile, cfg.ListsPath)
	log.Debug("speech_command=%s", cfg.SpeechCommand)
	log.Debug("speech_worker_count=%d speech_queue_size=%d", cfg.SpeechWorkerCount, cfg.SpeechQueueSize)
	log.Debug("session_idle=%v", cfg.SessionIdle())

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates(web.Templates)
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stateRepo := sqlite.NewStateRepository(database.DB)
	hidden := store.NewHiddenWords(stateRepo)
	settings := store.NewSettings(stateRepo)
	hidden.Load(ctx)
	settings.Load(ctx)

	var fetcher wordlist.Fetcher
	if cfg.SourceURL != "" {
		log.Info("serving word lists from %s", cfg.SourceURL)
		fetcher = wordlist.NewHTTPFetcher(cfg.SourceURL, cfg.FetchTimeout())
	} else {
		log.Info("serving word lists from directory %s", cfg.WordsDir)
		fetcher = wordlist.NewDirFetcherFromPath(cfg.WordsDir)
	}
	loader := wordlist.NewLoader(fetcher, cfg.ManifestFile, cfg.ListsPath)

	var sink speech.Sink = speech.NewLogSink(log)
	if cfg.SpeechCommand != "" {
		sink = speech.NewCommandSink(cfg.SpeechCommand)
	}
	speechPool := worker.NewPool(cfg.SpeechWorkerCount, cfg.SpeechQueueSize)
	speechPool.Start(ctx)

	drill := services.NewDrillService(loader, hidden, settings, speech.NewAdapter(speechPool, sink), cfg.SessionIdle())
	go drill.Run(ctx, time.Minute)

	srv := &api.Server{
		Drill:       drill,
		Library:     services.NewLibraryService(loader),
		Preferences: services.NewPreferencesService(settings, hidden),
		Health:      stateRepo,
		Templates:   tmpl,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	cancel()
	log.Debug("stopping speech pool")
	speechPool.Stop()

	log.Info("===========================================")
	log.Info("PhonicsPlay Server Stopped")
	log.Info("===========================================")
}
