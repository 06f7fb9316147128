package rgs

import (
	"encoding/json"
	"net/http"
)

// Domain status codes carried in-band under status.statusCode inside HTTP 200
// responses.
const (
	StatusSuccess             = "SUCCESS"
	StatusInvalidSecret       = "ERR_SCR" // invalid secret
	StatusInvalidOperator     = "ERR_OPT" // invalid operator id
	StatusInsufficientBalance = "ERR_IPB" // insufficient balance
	StatusInvalidSession      = "ERR_IS"  // invalid or expired session
	StatusAuthFailed          = "ERR_ATE" // authentication failed or expired
	StatusLimitsExceeded      = "ERR_GLE" // gambling limits exceeded
	StatusBetNotFound         = "ERR_BNF" // bet not found
	StatusBetActive           = "ERR_BE"  // bet already active
	StatusUnknownError        = "ERR_UE"  // unknown error, recoverable
	StatusUnknownNoRollback   = "ERR_GE"  // unknown error, no rollback
)

// Operation identifies one logical call against the service. The set is
// closed; each operation has exactly one endpoint and one request/response
// pair.
type Operation int

const (
	OpAuthenticate Operation = iota
	OpBalance
	OpPlay
	OpEndRound
	OpEvent
	OpAction
	OpSessionStart
	OpSearch
)

// String returns the operation's logical name.
func (op Operation) String() string {
	switch op {
	case OpAuthenticate:
		return "authenticate"
	case OpBalance:
		return "balance"
	case OpPlay:
		return "play"
	case OpEndRound:
		return "end-round"
	case OpEvent:
		return "event"
	case OpAction:
		return "action"
	case OpSessionStart:
		return "session-start"
	case OpSearch:
		return "search"
	default:
		return "unknown"
	}
}

// endpoint maps an operation to its wire method and path. session marks
// operations that carry a session ID and therefore require one to resolve.
type endpoint struct {
	method  string
	path    string
	session bool
}

// endpoints is the full operation table. Never mutated at runtime.
var endpoints = map[Operation]endpoint{
	OpAuthenticate: {http.MethodPost, "/wallet/authenticate", true},
	OpBalance:      {http.MethodPost, "/wallet/balance", true},
	OpPlay:         {http.MethodPost, "/wallet/play", true},
	OpEndRound:     {http.MethodPost, "/wallet/end-round", true},
	OpEvent:        {http.MethodPost, "/bet/event", true},
	OpAction:       {http.MethodPost, "/bet/action", true},
	OpSessionStart: {http.MethodPost, "/session/start", false},
	OpSearch:       {http.MethodPost, "/game/search", false},
}

// Status is the in-band outcome the service attaches to every response body.
// A non-SUCCESS code is a business outcome, not a client error; callers
// branch on it.
type Status struct {
	StatusCode string `json:"statusCode"`
	Message    string `json:"message,omitempty"`
}

// OK reports whether the status is SUCCESS.
func (s Status) OK() bool { return s.StatusCode == StatusSuccess }

// Balance is a player balance in wire-scale units.
type Balance struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Round is one unit of play as the service reports it. Amounts are in
// wire-scale units; State is an opaque game payload.
type Round struct {
	RoundID          string          `json:"roundID"`
	BetAmount        int64           `json:"betAmount"`
	PayoutAmount     int64           `json:"payoutAmount"`
	PayoutMultiplier float64         `json:"payoutMultiplier"`
	Active           bool            `json:"active"`
	Mode             string          `json:"mode"`
	State            json.RawMessage `json:"state,omitempty"`
}

// Wire request bodies. These are built by the client from resolved session
// parameters and caller arguments; callers never construct them directly.

type authenticateRequest struct {
	SessionID string `json:"sessionID"`
	Language  string `json:"language"`
}

type balanceRequest struct {
	SessionID string `json:"sessionID"`
}

type playRequest struct {
	SessionID string `json:"sessionID"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Mode      string `json:"mode"`
}

type endRoundRequest struct {
	SessionID string `json:"sessionID"`
}

type eventRequest struct {
	SessionID string `json:"sessionID"`
	Event     string `json:"event"`
}

type actionRequest struct {
	SessionID string `json:"sessionID"`
	Action    string `json:"action"`
}

type sessionStartRequest struct {
	Token    string `json:"token"`
	Currency string `json:"currency"`
}

type searchRequest struct {
	Mode   string         `json:"mode"`
	Search SearchCriteria `json:"search"`
}

// SearchCriteria narrows a historical-outcome search.
type SearchCriteria struct {
	// Kind selects the outcome class: "win" or "loss".
	Kind string `json:"kind"`
	// MinMultiplier, when positive, keeps only rounds whose payout
	// multiplier is at least this value.
	MinMultiplier float64 `json:"minMultiplier,omitempty"`
}

// AuthenticateResponse is the result of resuming a session.
type AuthenticateResponse struct {
	Status  Status          `json:"status"`
	Balance Balance         `json:"balance"`
	Round   *Round          `json:"round,omitempty"`
	Config  json.RawMessage `json:"config,omitempty"`
}

// BalanceResponse is the result of a balance query.
type BalanceResponse struct {
	Status  Status  `json:"status"`
	Balance Balance `json:"balance"`
}

// PlayResponse is the result of placing a bet.
type PlayResponse struct {
	Status  Status  `json:"status"`
	Balance Balance `json:"balance"`
	Round   *Round  `json:"round,omitempty"`
}

// EndRoundResponse is the result of closing the active round.
type EndRoundResponse struct {
	Status  Status  `json:"status"`
	Balance Balance `json:"balance"`
}

// EventResponse is the result of recording a progress event.
type EventResponse struct {
	Status Status `json:"status"`
	Event  string `json:"event,omitempty"`
}

// ActionResponse is the result of recording a round action.
type ActionResponse struct {
	Status Status `json:"status"`
	Round  *Round `json:"round,omitempty"`
}

// SessionStartResponse is the result of exchanging a launch token for a
// session.
type SessionStartResponse struct {
	Status    Status  `json:"status"`
	SessionID string  `json:"sessionID,omitempty"`
	Balance   Balance `json:"balance"`
}

// SearchResponse is the result of a historical-outcome search.
type SearchResponse struct {
	Status Status  `json:"status"`
	Rounds []Round `json:"rounds,omitempty"`
}
