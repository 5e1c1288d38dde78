package prefs

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/alrooliya/workshop-booking/internal/locale"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, locale.English), mr
}

func TestSetAndGet(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "visitor-1", locale.Arabic); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := s.Get(ctx, "visitor-1", ""); got != locale.Arabic {
		t.Fatalf("expected saved Arabic preference, got %s", got)
	}
}

func TestGetFallsBackToAcceptLanguage(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if got := s.Get(ctx, "unknown-visitor", "ar-OM,ar;q=0.9"); got != locale.Arabic {
		t.Fatalf("expected Accept-Language fallback to Arabic, got %s", got)
	}
	if got := s.Get(ctx, "unknown-visitor", ""); got != locale.English {
		t.Fatalf("expected configured default, got %s", got)
	}
}

func TestGetIgnoresCorruptValue(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set("prefs:locale:visitor-2", "klingon")
	if got := s.Get(ctx, "visitor-2", "en"); got != locale.English {
		t.Fatalf("expected fallback for corrupt value, got %s", got)
	}
}

func TestGetSurvivesUnreachableStore(t *testing.T) {
	s, mr := newTestStore(t)
	mr.Close()

	// Loss of the store must silently fall back, never error.
	if got := s.Get(context.Background(), "visitor-3", "ar"); got != locale.Arabic {
		t.Fatalf("expected Accept-Language fallback when redis is down, got %s", got)
	}
}

func TestSetValidation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "", locale.English); err == nil {
		t.Error("expected error for empty visitor id")
	}
	if err := s.Set(ctx, "visitor-4", locale.Locale("fr")); err == nil {
		t.Error("expected error for unsupported locale")
	}
}
