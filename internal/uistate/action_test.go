package uistate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/razoraze123/flux/internal/uistate"
)

func TestActions_TriggerWithoutRegistration(t *testing.T) {
	a := uistate.NewActions()

	assert.False(t, a.HasAction())
	a.Trigger() // no-op
}

func TestActions_TriggerInvokesCurrent(t *testing.T) {
	a := uistate.NewActions()

	calls := 0
	release := a.Register(func() { calls++ })

	assert.True(t, a.HasAction())

	a.Trigger()
	a.Trigger()
	assert.Equal(t, 2, calls)

	release()
	assert.False(t, a.HasAction())

	a.Trigger()
	assert.Equal(t, 2, calls)
}

func TestActions_ReleaseRestoresPrevious(t *testing.T) {
	a := uistate.NewActions()

	var fired []string

	releaseA := a.Register(func() { fired = append(fired, "a") })
	releaseB := a.Register(func() { fired = append(fired, "b") })

	a.Trigger()
	assert.Equal(t, []string{"b"}, fired)

	// Screen B goes away; A's registration is intact underneath.
	releaseB()

	a.Trigger()
	assert.Equal(t, []string{"b", "a"}, fired)

	releaseA()
	assert.False(t, a.HasAction())
}

func TestActions_ReleaseRemovesOnlyOwnEntry(t *testing.T) {
	a := uistate.NewActions()

	var fired []string

	releaseA := a.Register(func() { fired = append(fired, "a") })
	_ = a.Register(func() { fired = append(fired, "b") })

	// A releases out of order; B stays current.
	releaseA()

	a.Trigger()
	assert.Equal(t, []string{"b"}, fired)
}

func TestActions_ReleaseTwiceIsHarmless(t *testing.T) {
	a := uistate.NewActions()

	release := a.Register(func() {})
	release()
	release()

	assert.False(t, a.HasAction())
}
