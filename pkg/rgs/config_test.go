package rgs

import (
	"errors"
	"net/url"
	"testing"
)

func TestResolveSession_ExplicitWinsOverAmbient(t *testing.T) {
	ambient := AmbientValues{
		KeySessionID:   "B",
		KeyServiceHost: "h",
	}

	sc, err := ResolveSession(Params{SessionID: "A"}, ambient)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sc.SessionID != "A" {
		t.Errorf("Expected sessionID 'A', got '%s'", sc.SessionID)
	}
	if sc.ServiceHost != "h" {
		t.Errorf("Expected serviceHost 'h', got '%s'", sc.ServiceHost)
	}
}

func TestResolveSession_Defaults(t *testing.T) {
	ambient := AmbientValues{
		KeySessionID:   "s1",
		KeyServiceHost: "api.example.com",
	}

	sc, err := ResolveSession(Params{}, ambient)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sc.Language != "en" {
		t.Errorf("Expected default language 'en', got '%s'", sc.Language)
	}
	if sc.Currency != "USD" {
		t.Errorf("Expected default currency 'USD', got '%s'", sc.Currency)
	}
}

func TestResolveSession_MissingSessionID(t *testing.T) {
	_, err := ResolveSession(Params{ServiceHost: "h"}, nil)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var missingErr *MissingConfigError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Expected MissingConfigError, got %T", err)
	}
	if missingErr.Field != KeySessionID {
		t.Errorf("Expected field '%s', got '%s'", KeySessionID, missingErr.Field)
	}
}

func TestResolveSession_MissingServiceHost(t *testing.T) {
	_, err := ResolveSession(Params{SessionID: "s1"}, AmbientValues{})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var missingErr *MissingConfigError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Expected MissingConfigError, got %T", err)
	}
	if missingErr.Field != KeyServiceHost {
		t.Errorf("Expected field '%s', got '%s'", KeyServiceHost, missingErr.Field)
	}
}

func TestResolveSession_AmbientFillsAllFields(t *testing.T) {
	ambient := AmbientValues{
		KeySessionID:   "s1",
		KeyServiceHost: "api.example.com",
		KeyLanguage:    "de",
		KeyCurrency:    "EUR",
	}

	sc, err := ResolveSession(Params{}, ambient)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := SessionContext{
		SessionID:   "s1",
		ServiceHost: "api.example.com",
		Language:    "de",
		Currency:    "EUR",
	}
	if sc != want {
		t.Errorf("Resolved %+v, want %+v", sc, want)
	}
}

func TestAmbientFromQuery(t *testing.T) {
	u, err := url.Parse("https://games.example.com/launch?sessionID=s1&rgs_url=api.example.com&language=fr")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sc, err := ResolveSession(Params{}, AmbientFromQuery(u.Query()))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sc.SessionID != "s1" {
		t.Errorf("Expected sessionID 's1', got '%s'", sc.SessionID)
	}
	if sc.ServiceHost != "api.example.com" {
		t.Errorf("Expected serviceHost 'api.example.com', got '%s'", sc.ServiceHost)
	}
	if sc.Language != "fr" {
		t.Errorf("Expected language 'fr', got '%s'", sc.Language)
	}
	if sc.Currency != "USD" {
		t.Errorf("Expected defaulted currency 'USD', got '%s'", sc.Currency)
	}
}
