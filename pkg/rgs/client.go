package rgs

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client is a typed client for the remote gaming-session service. It is
// stateless: every call resolves its own session parameters and builds its
// own request, so concurrent use from multiple goroutines is safe. Ordering
// between concurrent calls on the same session is the caller's business.
type Client struct {
	transport Transport
	ambient   Ambient
}

// ClientConfig holds the collaborators for a Client. Both fields are
// optional: a nil Transport falls back to an HTTPTransport with the given
// timeout, and a nil Ambient means every session parameter must be passed
// explicitly.
type ClientConfig struct {
	Transport Transport
	Ambient   Ambient
	Timeout   time.Duration
}

// NewClient creates a new service client.
func NewClient(cfg *ClientConfig) *Client {
	if cfg == nil {
		cfg = &ClientConfig{}
	}
	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(cfg.Timeout)
	}
	return &Client{
		transport: transport,
		ambient:   cfg.Ambient,
	}
}

// AuthenticateArgs are the arguments for Authenticate.
type AuthenticateArgs struct {
	Params
}

// Authenticate resumes the session identified by the resolved session ID and
// returns the player balance, any active round, and the game configuration.
func (c *Client) Authenticate(ctx context.Context, args AuthenticateArgs) (*AuthenticateResponse, error) {
	return dispatch[AuthenticateResponse](ctx, c, OpAuthenticate, args.Params,
		func(sc SessionContext) (interface{}, error) {
			return &authenticateRequest{
				SessionID: sc.SessionID,
				Language:  sc.Language,
			}, nil
		})
}

// BalanceArgs are the arguments for Balance.
type BalanceArgs struct {
	Params
}

// Balance returns the current player balance.
func (c *Client) Balance(ctx context.Context, args BalanceArgs) (*BalanceResponse, error) {
	return dispatch[BalanceResponse](ctx, c, OpBalance, args.Params,
		func(sc SessionContext) (interface{}, error) {
			return &balanceRequest{SessionID: sc.SessionID}, nil
		})
}

// PlayArgs are the arguments for Play. Amount is a decimal currency value;
// the client converts it to the wire scale.
type PlayArgs struct {
	Params
	Amount float64
	Mode   string
}

// Play places a bet and opens a round. The service reports insufficient
// funds, limit breaches and similar business outcomes in-band via the
// response status, not as errors.
func (c *Client) Play(ctx context.Context, args PlayArgs) (*PlayResponse, error) {
	return dispatch[PlayResponse](ctx, c, OpPlay, args.Params,
		func(sc SessionContext) (interface{}, error) {
			if args.Amount == 0 {
				return nil, &MissingArgumentError{Field: "amount"}
			}
			if args.Mode == "" {
				return nil, &MissingArgumentError{Field: "mode"}
			}
			amount, err := ToWireAmount(args.Amount)
			if err != nil {
				return nil, err
			}
			return &playRequest{
				SessionID: sc.SessionID,
				Amount:    amount,
				Currency:  sc.Currency,
				Mode:      args.Mode,
			}, nil
		})
}

// EndRoundArgs are the arguments for EndRound.
type EndRoundArgs struct {
	Params
}

// EndRound closes the active round and settles its payout. A status of
// ERR_BNF means no round was active, which callers often treat as benign.
func (c *Client) EndRound(ctx context.Context, args EndRoundArgs) (*EndRoundResponse, error) {
	return dispatch[EndRoundResponse](ctx, c, OpEndRound, args.Params,
		func(sc SessionContext) (interface{}, error) {
			return &endRoundRequest{SessionID: sc.SessionID}, nil
		})
}

// EventArgs are the arguments for Event. EventIndex is zero-based and must
// not be negative.
type EventArgs struct {
	Params
	EventIndex int
}

// Event records how far into the active round's result the player has
// progressed. The index is encoded as a string on the wire.
func (c *Client) Event(ctx context.Context, args EventArgs) (*EventResponse, error) {
	return dispatch[EventResponse](ctx, c, OpEvent, args.Params,
		func(sc SessionContext) (interface{}, error) {
			if args.EventIndex < 0 {
				return nil, &MissingArgumentError{Field: "eventIndex"}
			}
			return &eventRequest{
				SessionID: sc.SessionID,
				Event:     strconv.Itoa(args.EventIndex),
			}, nil
		})
}

// ActionArgs are the arguments for Action.
type ActionArgs struct {
	Params
	Action string
}

// Action records a free-form player action on the active round.
func (c *Client) Action(ctx context.Context, args ActionArgs) (*ActionResponse, error) {
	return dispatch[ActionResponse](ctx, c, OpAction, args.Params,
		func(sc SessionContext) (interface{}, error) {
			if args.Action == "" {
				return nil, &MissingArgumentError{Field: "action"}
			}
			return &actionRequest{
				SessionID: sc.SessionID,
				Action:    args.Action,
			}, nil
		})
}

// StartSessionArgs are the arguments for StartSession. Token is the opaque
// launch token issued by the operator.
type StartSessionArgs struct {
	Params
	Token string
}

// StartSession exchanges a launch token for a session ID. It is the one
// operation that runs without a session.
func (c *Client) StartSession(ctx context.Context, args StartSessionArgs) (*SessionStartResponse, error) {
	return dispatch[SessionStartResponse](ctx, c, OpSessionStart, args.Params,
		func(sc SessionContext) (interface{}, error) {
			if args.Token == "" {
				return nil, &MissingArgumentError{Field: "token"}
			}
			return &sessionStartRequest{
				Token:    args.Token,
				Currency: sc.Currency,
			}, nil
		})
}

// SearchArgs are the arguments for Search.
type SearchArgs struct {
	Params
	Mode     string
	Criteria SearchCriteria
}

// Search queries historical outcomes for a mode, filtered by the given
// criteria.
func (c *Client) Search(ctx context.Context, args SearchArgs) (*SearchResponse, error) {
	return dispatch[SearchResponse](ctx, c, OpSearch, args.Params,
		func(sc SessionContext) (interface{}, error) {
			if args.Mode == "" {
				return nil, &MissingArgumentError{Field: "mode"}
			}
			if args.Criteria.Kind == "" {
				return nil, &MissingArgumentError{Field: "search.kind"}
			}
			return &searchRequest{
				Mode:   args.Mode,
				Search: args.Criteria,
			}, nil
		})
}

// dispatch runs the shared sequence for one operation: look up the endpoint,
// resolve session parameters, build and validate the request body, send it,
// check the HTTP status, decode the typed response. In-band domain statuses
// pass through untouched.
func dispatch[T any](ctx context.Context, c *Client, op Operation, params Params, build func(SessionContext) (interface{}, error)) (*T, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, &UnknownOperationError{Op: op}
	}

	sc, err := resolveSession(params, c.ambient, ep.session)
	if err != nil {
		return nil, err
	}

	body, err := build(sc)
	if err != nil {
		return nil, err
	}

	raw, err := c.transport.Send(ctx, ep.method, baseURL(sc.ServiceHost)+ep.path, body)
	if err != nil {
		// Transport fault: propagated unchanged, never retried here.
		return nil, err
	}

	if raw.StatusCode != http.StatusOK {
		return nil, newStatusError(raw)
	}

	out := new(T)
	if err := raw.Decode(out); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", op, err)
	}
	return out, nil
}

// baseURL turns a service host into a base URL. Hosts are normally bare and
// get the https scheme; a scheme-qualified value is honored so local
// development targets work.
func baseURL(host string) string {
	if strings.Contains(host, "://") {
		return strings.TrimSuffix(host, "/")
	}
	return "https://" + host
}

// newStatusError builds the failure for a non-200 response. Decoding the
// error body is best-effort; an undecodable body yields empty code and
// message.
func newStatusError(raw *RawResponse) *StatusError {
	se := &StatusError{StatusCode: raw.StatusCode}
	var body struct {
		Status Status `json:"status"`
	}
	if err := raw.Decode(&body); err == nil {
		se.Code = body.Status.StatusCode
		se.Message = body.Status.Message
	}
	return se
}
