package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledReturnsInputUnchanged(t *testing.T) {
	Init(false)

	require.False(t, Enabled())
	require.Equal(t, "plain", Success("plain"))
	require.Equal(t, "plain", Warning("plain"))
	require.Equal(t, "plain", Error("plain"))
	require.Equal(t, "plain", Info("plain"))
	require.Equal(t, "plain", Header("plain"))
	require.Equal(t, "plain", Muted("plain"))
}

func TestNoColorEnvWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	Init(true)
	require.False(t, Enabled())
	require.Equal(t, "text", Error("text"))
}

func TestEnabledAddsANSICodes(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("LASIF_NO_COLOR", "")

	Init(true)
	t.Cleanup(func() { Init(false) })

	require.True(t, Enabled())
	styled := Error("boom")
	require.Contains(t, styled, "boom")
	require.NotEqual(t, "boom", styled)
}

func TestNopStyler(t *testing.T) {
	var s NopStyler
	require.False(t, s.Enabled())
	require.Equal(t, "x", s.Error("x"))
	require.Equal(t, "x", s.Header("x"))
}
