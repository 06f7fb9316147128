// Package stubrgs implements an in-memory stand-in for the remote
// gaming-session service, used for local game development and integration
// tests. It speaks the same wire contract as the production service but keeps
// all state in memory and accepts any launch token.
package stubrgs

import (
	"errors"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/openwager/rgs-client/pkg/rgs"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrRoundActive       = errors.New("round already active")
	ErrNoActiveRound     = errors.New("no active round")
	ErrLimitExceeded     = errors.New("bet limit exceeded")
	ErrInvalidBet        = errors.New("invalid bet amount")
)

// PlayerState is the per-session wallet: balance, the active round if any,
// and settled history. Amounts are wire-scale.
type PlayerState struct {
	Balance  int64
	Currency string
	Active   *rgs.Round
	History  []rgs.Round
}

// Ledger tracks balances and rounds for every session. All methods are safe
// for concurrent use.
type Ledger struct {
	mu     sync.Mutex
	states map[string]*PlayerState
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{states: make(map[string]*PlayerState)}
}

// Create registers a new session with an opening balance.
func (l *Ledger) Create(sid string, balance int64, currency string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.states[sid] = &PlayerState{Balance: balance, Currency: currency}
}

// Snapshot returns the session's balance, currency, and a copy of its active
// round.
func (l *Ledger) Snapshot(sid string) (int64, string, *rgs.Round, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[sid]
	if !ok {
		return 0, "", nil, ErrSessionNotFound
	}

	var active *rgs.Round
	if state.Active != nil {
		copied := *state.Active
		active = &copied
	}
	return state.Balance, state.Currency, active, nil
}

// OpenRound debits the bet and opens a round with the outcome the multiplier
// describes. The payout stays pending until CloseRound settles it.
func (l *Ledger) OpenRound(sid string, bet, maxBet int64, mode string, multiplier float64) (*rgs.Round, int64, error) {
	if bet <= 0 {
		return nil, 0, ErrInvalidBet
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[sid]
	if !ok {
		return nil, 0, ErrSessionNotFound
	}
	if state.Active != nil {
		return nil, 0, ErrRoundActive
	}
	if maxBet > 0 && bet > maxBet {
		return nil, 0, ErrLimitExceeded
	}
	if bet > state.Balance {
		return nil, 0, ErrInsufficientFunds
	}

	state.Balance -= bet
	round := &rgs.Round{
		RoundID:          uuid.New().String(),
		BetAmount:        bet,
		PayoutAmount:     int64(math.Round(float64(bet) * multiplier)),
		PayoutMultiplier: multiplier,
		Active:           true,
		Mode:             mode,
	}
	state.Active = round

	copied := *round
	return &copied, state.Balance, nil
}

// CloseRound credits the pending payout, marks the round settled, and moves
// it to history.
func (l *Ledger) CloseRound(sid string) (int64, *rgs.Round, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[sid]
	if !ok {
		return 0, nil, ErrSessionNotFound
	}
	if state.Active == nil {
		return state.Balance, nil, ErrNoActiveRound
	}

	round := state.Active
	round.Active = false
	state.Balance += round.PayoutAmount
	state.History = append(state.History, *round)
	state.Active = nil

	copied := *round
	return state.Balance, &copied, nil
}

// ActiveRound returns a copy of the session's active round.
func (l *Ledger) ActiveRound(sid string) (*rgs.Round, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[sid]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if state.Active == nil {
		return nil, ErrNoActiveRound
	}
	copied := *state.Active
	return &copied, nil
}

// SearchRounds returns settled rounds for a mode matching the criteria,
// across all sessions.
func (l *Ledger) SearchRounds(mode string, criteria rgs.SearchCriteria) []rgs.Round {
	l.mu.Lock()
	defer l.mu.Unlock()

	var matches []rgs.Round
	for _, state := range l.states {
		for _, round := range state.History {
			if round.Mode != mode {
				continue
			}
			switch criteria.Kind {
			case "win":
				if round.PayoutAmount == 0 {
					continue
				}
			case "loss":
				if round.PayoutAmount != 0 {
					continue
				}
			}
			if criteria.MinMultiplier > 0 && round.PayoutMultiplier < criteria.MinMultiplier {
				continue
			}
			matches = append(matches, round)
		}
	}
	return matches
}
