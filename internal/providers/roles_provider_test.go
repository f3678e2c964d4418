package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPRolesProvider_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/members/1234" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("Missing API key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name": "[331] Bandit", "roles": ["331", "BLUFOR"]}`))
	}))
	defer server.Close()

	provider := NewHTTPRolesProvider(server.URL, "test-key")
	info, err := provider.Lookup(context.Background(), "1234")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if info.DisplayName != "[331] Bandit" {
		t.Errorf("Unexpected display name: %s", info.DisplayName)
	}
	if len(info.Roles) != 2 || info.Roles[1] != "BLUFOR" {
		t.Errorf("Unexpected roles: %v", info.Roles)
	}
}

func TestHTTPRolesProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewHTTPRolesProvider(server.URL, "test-key")
	if _, err := provider.Lookup(context.Background(), "missing"); err == nil {
		t.Fatal("Expected error for 404 response")
	}
}
