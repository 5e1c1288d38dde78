// Package prefs persists the visitor's chosen display language, the only
// piece of state that survives across sessions.
package prefs

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/alrooliya/workshop-booking/internal/locale"
)

// Store keeps one locale preference per visitor in redis.
type Store struct {
	redis    *redis.Client
	fallback locale.Locale
}

// NewStore creates a preference store. fallback is used when no preference
// is saved and the caller has no environment hint.
func NewStore(redisClient *redis.Client, fallback locale.Locale) *Store {
	return &Store{redis: redisClient, fallback: fallback}
}

func (s *Store) key(visitorID string) string {
	return fmt.Sprintf("prefs:locale:%s", visitorID)
}

// Get returns the saved locale for the visitor. A missing key, an
// unreadable value, or an unreachable store all silently fall back to the
// locale derived from acceptLanguage, then to the configured default.
func (s *Store) Get(ctx context.Context, visitorID, acceptLanguage string) locale.Locale {
	if s.redis != nil && visitorID != "" {
		saved, err := s.redis.Get(ctx, s.key(visitorID)).Result()
		if err == nil && locale.Supported(saved) {
			return locale.Parse(saved)
		}
	}
	if acceptLanguage != "" {
		return locale.FromAcceptLanguage(acceptLanguage)
	}
	return s.fallback
}

// Set saves the visitor's explicit language choice.
func (s *Store) Set(ctx context.Context, visitorID string, l locale.Locale) error {
	if s.redis == nil {
		return fmt.Errorf("prefs: store not configured")
	}
	if visitorID == "" {
		return fmt.Errorf("prefs: visitor id required")
	}
	if !locale.Supported(string(l)) {
		return fmt.Errorf("prefs: unsupported locale %q", l)
	}
	if err := s.redis.Set(ctx, s.key(visitorID), string(l), 0).Err(); err != nil {
		return fmt.Errorf("prefs: save locale: %w", err)
	}
	return nil
}
