// Command rgs-stub runs the in-memory stand-in for the remote gaming-session
// service. Game frontends point their rgs_url launch parameter at it during
// development.
package main

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/openwager/rgs-client/internal/config"
	"github.com/openwager/rgs-client/internal/stubrgs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := newLogger(cfg)

	server := stubrgs.New(stubrgs.Config{
		JWTSecret:       cfg.JWTSecret,
		SessionTTL:      cfg.SessionTTL,
		StartingBalance: cfg.StartingBalance,
		DefaultCurrency: cfg.Currency,
		MaxBet:          cfg.MaxBet,
	}, log)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Info().Str("addr", cfg.Addr).Msg("stub RGS listening")
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if cfg.LogPretty {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
