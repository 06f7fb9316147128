package stubrgs

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Config holds the stub's tunables. Amounts are wire-scale.
type Config struct {
	JWTSecret       string
	StartingBalance int64
	DefaultCurrency string
	MaxBet          int64
	SessionTTL      time.Duration

	// Outcome overrides the round outcome generator; nil uses the built-in
	// paytable. Tests inject deterministic outcomes here.
	Outcome OutcomeFunc
}

// Server is the stub service. Construct with New and mount Router on an HTTP
// server.
type Server struct {
	cfg      Config
	sessions *SessionStore
	ledger   *Ledger
	feed     *EventFeed
	outcome  OutcomeFunc
	log      zerolog.Logger
}

// New creates a stub server.
func New(cfg Config, log zerolog.Logger) *Server {
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "USD"
	}
	outcome := cfg.Outcome
	if outcome == nil {
		outcome = defaultOutcome
	}
	return &Server{
		cfg:      cfg,
		sessions: NewSessionStore(cfg.JWTSecret, cfg.SessionTTL),
		ledger:   NewLedger(),
		feed:     NewEventFeed(log),
		outcome:  outcome,
		log:      log,
	}
}

// Router builds the HTTP router with the full wire surface.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.Use(s.recoveryMiddleware)
	r.Use(corsMiddleware)
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	r.HandleFunc("/session/start", s.handleSessionStart).Methods("POST")
	r.HandleFunc("/wallet/authenticate", s.handleAuthenticate).Methods("POST")
	r.HandleFunc("/wallet/balance", s.handleBalance).Methods("POST")
	r.HandleFunc("/wallet/play", s.handlePlay).Methods("POST")
	r.HandleFunc("/wallet/end-round", s.handleEndRound).Methods("POST")
	r.HandleFunc("/bet/event", s.handleEvent).Methods("POST")
	r.HandleFunc("/bet/action", s.handleAction).Methods("POST")
	r.HandleFunc("/game/search", s.handleSearch).Methods("POST")

	r.HandleFunc("/events/live", s.feed.Handle).Methods("GET")

	return r
}
