package rgs

import "net/url"

// Ambient parameter keys, matching the names the service passes on the game
// launch URL.
const (
	KeySessionID   = "sessionID"
	KeyServiceHost = "rgs_url"
	KeyLanguage    = "language"
	KeyCurrency    = "currency"
)

// Defaults applied when neither the caller nor the ambient source supplies a
// value. Session ID and service host have no defaults and must be present.
const (
	DefaultLanguage = "en"
	DefaultCurrency = "USD"
)

// Ambient supplies launch-context parameters used to fill session fields the
// caller did not pass explicitly. It is typically backed by the query string
// of the URL the game was launched with.
type Ambient interface {
	// Get returns the value for key, or "" when the key is absent.
	Get(key string) string
}

// AmbientValues is a map-backed Ambient, mainly for tests and fixed setups.
type AmbientValues map[string]string

// Get implements Ambient.
func (v AmbientValues) Get(key string) string { return v[key] }

// AmbientFromQuery adapts a parsed query string to an Ambient source.
func AmbientFromQuery(q url.Values) Ambient { return queryAmbient{q} }

type queryAmbient struct {
	q url.Values
}

func (a queryAmbient) Get(key string) string { return a.q.Get(key) }

// SessionContext holds the four parameters resolved once per call. It is not
// retained between calls.
type SessionContext struct {
	SessionID   string
	ServiceHost string
	Language    string
	Currency    string
}

// Params carries explicit per-call session parameters. Empty fields fall back
// to the ambient source.
type Params struct {
	SessionID   string
	ServiceHost string
	Language    string
	Currency    string
}

// ResolveSession merges explicit parameters over the ambient source and
// applies defaults for language and currency. It fails with
// *MissingConfigError when the session ID or service host is absent from both
// sources. A nil ambient is treated as empty.
func ResolveSession(explicit Params, ambient Ambient) (SessionContext, error) {
	return resolveSession(explicit, ambient, true)
}

func resolveSession(explicit Params, ambient Ambient, needSession bool) (SessionContext, error) {
	lookup := func(explicitValue, key string) string {
		if explicitValue != "" {
			return explicitValue
		}
		if ambient == nil {
			return ""
		}
		return ambient.Get(key)
	}

	sc := SessionContext{
		SessionID:   lookup(explicit.SessionID, KeySessionID),
		ServiceHost: lookup(explicit.ServiceHost, KeyServiceHost),
		Language:    lookup(explicit.Language, KeyLanguage),
		Currency:    lookup(explicit.Currency, KeyCurrency),
	}

	if needSession && sc.SessionID == "" {
		return SessionContext{}, &MissingConfigError{Field: KeySessionID}
	}
	if sc.ServiceHost == "" {
		return SessionContext{}, &MissingConfigError{Field: KeyServiceHost}
	}
	if sc.Language == "" {
		sc.Language = DefaultLanguage
	}
	if sc.Currency == "" {
		sc.Currency = DefaultCurrency
	}

	return sc, nil
}
