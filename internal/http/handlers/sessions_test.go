package handlers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alrooliya/workshop-booking/internal/booking"
	"github.com/alrooliya/workshop-booking/internal/catalog"
	"github.com/alrooliya/workshop-booking/internal/hours"
	"github.com/alrooliya/workshop-booking/internal/http/handlers"
	"github.com/alrooliya/workshop-booking/pkg/logging"
)

func newRegistry(idle time.Duration) *handlers.SessionRegistry {
	cat := catalog.Default()
	schedule := hours.DefaultSchedule(muscat())
	factory := func() *booking.Controller {
		return booking.NewController(cat, schedule, booking.Rules{CountryCode: "968", LocalNumberLength: 8})
	}
	return handlers.NewSessionRegistry(factory, idle, logging.New("error"))
}

func TestSessionRegistryCreateAndGet(t *testing.T) {
	reg := newRegistry(time.Hour)

	id, ctrl := reg.Create()
	require.NotEmpty(t, id)
	require.NotNil(t, ctrl)
	assert.Equal(t, booking.StepCategorySelection, ctrl.Step())

	got, ok := reg.Get(id)
	require.True(t, ok)
	assert.Same(t, ctrl, got)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestSessionRegistrySweepIdle(t *testing.T) {
	reg := newRegistry(30 * time.Minute)

	reg.Create()
	reg.Create()
	require.Equal(t, 2, reg.Len())

	// Nothing is idle yet.
	assert.Equal(t, 0, reg.SweepIdle(time.Now()))
	assert.Equal(t, 2, reg.Len())

	removed := reg.SweepIdle(time.Now().Add(time.Hour))
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, reg.Len())
}

func TestSessionRegistryZeroTimeoutNeverSweeps(t *testing.T) {
	reg := newRegistry(0)
	reg.Create()

	assert.Equal(t, 0, reg.SweepIdle(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, reg.Len())
}

func TestSessionRegistryDelete(t *testing.T) {
	reg := newRegistry(time.Hour)
	id, _ := reg.Create()

	reg.Delete(id)
	_, ok := reg.Get(id)
	assert.False(t, ok)
}
