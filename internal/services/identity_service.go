package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/logging"
	"github.com/SupremeBender/ajac-website/internal/metrics"
	"github.com/SupremeBender/ajac-website/internal/providers"
)

// tags like "[331]" or "(AWACS)" are squadron decorations, not names
var nameDecorations = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)

// IdentityService resolves Discord users to a cleaned display name and role
// set, degrading to the last known roles when the lookup is slow or failing.
type IdentityService struct {
	provider providers.RolesProvider
	store    *common.RolesStore
	metrics  *metrics.MetricsRegistry
}

func NewIdentityService(provider providers.RolesProvider, store *common.RolesStore, m *metrics.MetricsRegistry) *IdentityService {
	return &IdentityService{provider: provider, store: store, metrics: m}
}

// Resolve looks the user up with a hard deadline. On failure it returns the
// last known role set (or none) rather than blocking the caller's request.
func (s *IdentityService) Resolve(ctx context.Context, userID string) (string, []string) {
	lookupCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	info, err := s.provider.Lookup(lookupCtx, userID)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RolesLookupFallbacks.Inc()
		}
		logging.Warn("Roles lookup failed, using last known roles", "user_id", userID, "error", err)

		if s.store != nil {
			if roles, ok := s.store.LastKnown(ctx, userID); ok {
				return "", roles
			}
		}
		return "", nil
	}

	if s.store != nil {
		if err := s.store.Save(ctx, userID, info.Roles); err != nil {
			logging.Warn("Failed to cache roles", "user_id", userID, "error", err)
		}
	}
	return CleanDisplayName(info.DisplayName), info.Roles
}

// CleanDisplayName strips squadron decorations from a Discord nickname and
// uppercases what remains: "[331] Bandit (AWACS)" becomes "BANDIT".
func CleanDisplayName(name string) string {
	cleaned := nameDecorations.ReplaceAllString(name, "")
	return strings.ToUpper(strings.TrimSpace(cleaned))
}
