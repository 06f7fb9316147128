// Package rgs provides a typed client for the remote gaming-session service
// wallet API.
//
// The client covers the full operation set a game frontend needs: starting
// and resuming sessions, placing bets, querying balances, closing rounds,
// recording progress events, and searching historical outcomes. Callers work
// with typed arguments and responses instead of hand-built HTTP requests.
//
// # Session parameters
//
// Every operation needs a session ID and a service host, plus language and
// currency. They can be passed explicitly per call, or pulled from an
// ambient source such as the launch URL's query string:
//
//	u, _ := url.Parse(launchURL)
//	client := rgs.NewClient(&rgs.ClientConfig{
//	    Ambient: rgs.AmbientFromQuery(u.Query()),
//	})
//
//	// sessionID and rgs_url come from the launch parameters
//	resp, err := client.Authenticate(ctx, rgs.AuthenticateArgs{})
//
// Explicit parameters always win over ambient ones. Language defaults to
// "en" and currency to "USD"; a missing session ID or service host fails
// before any network call.
//
// # Amounts
//
// Bet amounts are decimal currency values; the client converts them to the
// service's fixed-point wire format (1.00 = 1000000):
//
//	resp, err := client.Play(ctx, rgs.PlayArgs{
//	    Amount: 1.00, // sent as 1000000
//	    Mode:   "base",
//	})
//
// # Outcomes
//
// Three kinds of failure surface as errors: local validation
// (*MissingConfigError, *MissingArgumentError, *InvalidAmountError),
// transport faults (returned unchanged from the underlying HTTP call), and
// non-200 responses (*StatusError). Business outcomes inside a 200 response
// are data, not errors; the caller branches on the in-band status:
//
//	resp, err := client.Play(ctx, args)
//	if err != nil {
//	    // transport or HTTP failure
//	}
//	switch resp.Status.StatusCode {
//	case rgs.StatusSuccess:
//	    // round is open
//	case rgs.StatusInsufficientBalance:
//	    // prompt for a deposit
//	}
package rgs
