package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SupremeBender/ajac-website/internal/config"
	"github.com/SupremeBender/ajac-website/internal/logging"
	"github.com/SupremeBender/ajac-website/internal/providers"
)

// rolesd is the companion service that fronts the Discord REST API for the
// ops site. It exposes guild membership lookups so the main server never
// holds a bot token or talks to Discord directly.

type memberServer struct {
	discord *providers.DiscordProvider
	apiKey  string

	mu          sync.Mutex
	roleNames   map[string]string
	rolesLoaded time.Time
}

const roleTableTTL = 5 * time.Minute

func (s *memberServer) roleTable(r *http.Request) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roleNames != nil && time.Since(s.rolesLoaded) < roleTableTTL {
		return s.roleNames, nil
	}

	names, err := s.discord.RoleNames(r.Context())
	if err != nil {
		// Serve the stale table if we have one.
		if s.roleNames != nil {
			logging.Warn("Role table refresh failed, serving cached copy", "error", err.Error())
			return s.roleNames, nil
		}
		return nil, err
	}
	s.roleNames = names
	s.rolesLoaded = time.Now()
	return names, nil
}

func (s *memberServer) handleMember(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-API-Key") != s.apiKey {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := chi.URLParam(r, "user_id")
	member, err := s.discord.Member(r.Context(), userID)
	if err != nil {
		logging.Warn("Member lookup failed", "user_id", userID, "error", err.Error())
		http.Error(w, "member lookup failed", http.StatusBadGateway)
		return
	}

	names, err := s.roleTable(r)
	if err != nil {
		logging.Error("Role table load failed", "error", err.Error())
		http.Error(w, "role table unavailable", http.StatusBadGateway)
		return
	}

	info := providers.MemberInfo{
		DisplayName: member.DisplayName(),
		Roles:       make([]string, 0, len(member.RoleIDs)),
	}
	for _, id := range member.RoleIDs {
		if name, ok := names[id]; ok {
			info.Roles = append(info.Roles, name)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&info); err != nil {
		logging.Error("Failed to encode member info", "error", err.Error())
	}
}

func main() {
	config.Load()

	if err := logging.Init(config.AppEnv()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	token := os.Getenv("DISCORD_BOT_TOKEN")
	guildID := os.Getenv("DISCORD_GUILD_ID")
	if token == "" || guildID == "" {
		logging.Fatal("DISCORD_BOT_TOKEN and DISCORD_GUILD_ID are required")
	}

	srv := &memberServer{
		discord: providers.NewDiscordProvider(token, guildID),
		apiKey:  config.Get("ROLESD_API_KEY", ""),
	}
	if srv.apiKey == "" {
		logging.Fatal("ROLESD_API_KEY is required")
	}

	r := chi.NewRouter()
	r.Get("/api/v1/members/{user_id}", srv.handleMember)
	r.Get("/healthCheck", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	addr := ":" + config.Get("ROLESD_PORT", "8091")
	logging.Info("rolesd starting", "addr", addr, "guild_id", guildID)
	if err := http.ListenAndServe(addr, r); err != nil {
		logging.Fatal("rolesd stopped", "error", err.Error())
	}
}
