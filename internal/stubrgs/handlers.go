package stubrgs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/openwager/rgs-client/pkg/rgs"
)

// respond writes a response body with HTTP 200. Domain failures ride in-band
// inside the body's status field, matching the production service.
func respond(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": rgs.Status{StatusCode: rgs.StatusUnknownError, Message: "invalid request body"},
		})
		return false
	}
	return true
}

// statusFor maps ledger and session errors to wire status codes.
func statusFor(err error) rgs.Status {
	var code string
	switch {
	case errors.Is(err, ErrInvalidSession), errors.Is(err, ErrSessionNotFound):
		code = rgs.StatusInvalidSession
	case errors.Is(err, ErrInsufficientFunds):
		code = rgs.StatusInsufficientBalance
	case errors.Is(err, ErrRoundActive):
		code = rgs.StatusBetActive
	case errors.Is(err, ErrNoActiveRound):
		code = rgs.StatusBetNotFound
	case errors.Is(err, ErrLimitExceeded):
		code = rgs.StatusLimitsExceeded
	default:
		code = rgs.StatusUnknownError
	}
	return rgs.Status{StatusCode: code, Message: err.Error()}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Currency string `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}

	// Any non-empty launch token is accepted; the stub has no operator to
	// check it against.
	if req.Token == "" {
		respond(w, rgs.SessionStartResponse{
			Status: rgs.Status{StatusCode: rgs.StatusAuthFailed, Message: "missing launch token"},
		})
		return
	}

	sessionID, sid, err := s.sessions.Issue()
	if err != nil {
		respond(w, rgs.SessionStartResponse{
			Status: rgs.Status{StatusCode: rgs.StatusUnknownError, Message: err.Error()},
		})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}
	s.ledger.Create(sid, s.cfg.StartingBalance, currency)

	s.log.Info().Str("sid", sid).Str("currency", currency).Msg("session started")

	respond(w, rgs.SessionStartResponse{
		Status:    rgs.Status{StatusCode: rgs.StatusSuccess},
		SessionID: sessionID,
		Balance:   rgs.Balance{Amount: s.cfg.StartingBalance, Currency: currency},
	})
}

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionID"`
		Language  string `json:"language"`
	}
	if !decode(w, r, &req) {
		return
	}

	sid, err := s.sessions.Verify(req.SessionID)
	if err != nil {
		respond(w, rgs.AuthenticateResponse{Status: statusFor(err)})
		return
	}

	balance, currency, active, err := s.ledger.Snapshot(sid)
	if err != nil {
		respond(w, rgs.AuthenticateResponse{Status: statusFor(err)})
		return
	}

	config, _ := json.Marshal(map[string]interface{}{
		"maxBet":   s.cfg.MaxBet,
		"language": req.Language,
		"modes":    []string{"base", "bonus"},
	})

	respond(w, rgs.AuthenticateResponse{
		Status:  rgs.Status{StatusCode: rgs.StatusSuccess},
		Balance: rgs.Balance{Amount: balance, Currency: currency},
		Round:   active,
		Config:  config,
	})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionID"`
	}
	if !decode(w, r, &req) {
		return
	}

	sid, err := s.sessions.Verify(req.SessionID)
	if err != nil {
		respond(w, rgs.BalanceResponse{Status: statusFor(err)})
		return
	}

	balance, currency, _, err := s.ledger.Snapshot(sid)
	if err != nil {
		respond(w, rgs.BalanceResponse{Status: statusFor(err)})
		return
	}

	respond(w, rgs.BalanceResponse{
		Status:  rgs.Status{StatusCode: rgs.StatusSuccess},
		Balance: rgs.Balance{Amount: balance, Currency: currency},
	})
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionID"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Mode      string `json:"mode"`
	}
	if !decode(w, r, &req) {
		return
	}

	sid, err := s.sessions.Verify(req.SessionID)
	if err != nil {
		respond(w, rgs.PlayResponse{Status: statusFor(err)})
		return
	}

	round, balance, err := s.ledger.OpenRound(sid, req.Amount, s.cfg.MaxBet, req.Mode, s.outcome(req.Mode))
	if err != nil {
		respond(w, rgs.PlayResponse{Status: statusFor(err)})
		return
	}

	_, currency, _, _ := s.ledger.Snapshot(sid)

	s.log.Info().
		Str("sid", sid).
		Str("round", round.RoundID).
		Int64("bet", round.BetAmount).
		Float64("multiplier", round.PayoutMultiplier).
		Msg("round opened")

	respond(w, rgs.PlayResponse{
		Status:  rgs.Status{StatusCode: rgs.StatusSuccess},
		Balance: rgs.Balance{Amount: balance, Currency: currency},
		Round:   round,
	})
}

func (s *Server) handleEndRound(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionID"`
	}
	if !decode(w, r, &req) {
		return
	}

	sid, err := s.sessions.Verify(req.SessionID)
	if err != nil {
		respond(w, rgs.EndRoundResponse{Status: statusFor(err)})
		return
	}

	balance, round, err := s.ledger.CloseRound(sid)
	_, currency, _, _ := s.ledger.Snapshot(sid)
	if err != nil {
		resp := rgs.EndRoundResponse{Status: statusFor(err)}
		if errors.Is(err, ErrNoActiveRound) {
			// Closing with nothing open still reports the balance; callers
			// commonly treat ERR_BNF as benign.
			resp.Balance = rgs.Balance{Amount: balance, Currency: currency}
		}
		respond(w, resp)
		return
	}

	s.log.Info().
		Str("sid", sid).
		Str("round", round.RoundID).
		Int64("payout", round.PayoutAmount).
		Msg("round settled")

	respond(w, rgs.EndRoundResponse{
		Status:  rgs.Status{StatusCode: rgs.StatusSuccess},
		Balance: rgs.Balance{Amount: balance, Currency: currency},
	})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionID"`
		Event     string `json:"event"`
	}
	if !decode(w, r, &req) {
		return
	}

	sid, err := s.sessions.Verify(req.SessionID)
	if err != nil {
		respond(w, rgs.EventResponse{Status: statusFor(err)})
		return
	}

	round, err := s.ledger.ActiveRound(sid)
	if err != nil {
		respond(w, rgs.EventResponse{Status: statusFor(err)})
		return
	}

	if _, err := strconv.Atoi(req.Event); err != nil {
		respond(w, rgs.EventResponse{
			Status: rgs.Status{StatusCode: rgs.StatusUnknownError, Message: fmt.Sprintf("bad event index %q", req.Event)},
		})
		return
	}

	s.feed.Broadcast("event", map[string]interface{}{
		"roundID": round.RoundID,
		"mode":    round.Mode,
		"event":   req.Event,
	})

	respond(w, rgs.EventResponse{
		Status: rgs.Status{StatusCode: rgs.StatusSuccess},
		Event:  req.Event,
	})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionID"`
		Action    string `json:"action"`
	}
	if !decode(w, r, &req) {
		return
	}

	sid, err := s.sessions.Verify(req.SessionID)
	if err != nil {
		respond(w, rgs.ActionResponse{Status: statusFor(err)})
		return
	}

	round, err := s.ledger.ActiveRound(sid)
	if err != nil {
		respond(w, rgs.ActionResponse{Status: statusFor(err)})
		return
	}

	s.feed.Broadcast("action", map[string]interface{}{
		"roundID": round.RoundID,
		"action":  req.Action,
	})

	respond(w, rgs.ActionResponse{
		Status: rgs.Status{StatusCode: rgs.StatusSuccess},
		Round:  round,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode   string             `json:"mode"`
		Search rgs.SearchCriteria `json:"search"`
	}
	if !decode(w, r, &req) {
		return
	}

	rounds := s.ledger.SearchRounds(req.Mode, req.Search)

	respond(w, rgs.SearchResponse{
		Status: rgs.Status{StatusCode: rgs.StatusSuccess},
		Rounds: rounds,
	})
}
