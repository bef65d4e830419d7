package us

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localflavor/internal/validation"
)

func TestNormalizeState(t *testing.T) {
	for _, input := range []string{"CA", "ca", "calf", "calif", "california", " California ", "CALIF"} {
		got, err := NormalizeState(input)
		require.NoError(t, err, input)
		assert.Equal(t, "CA", got)
	}

	got, err := NormalizeState("N Dak")
	require.NoError(t, err)
	assert.Equal(t, "ND", got)
}

func TestNormalizeStateRejectsUnknown(t *testing.T) {
	for _, input := range []string{"a", "XX", "AX", "calif.", "new", "n.dak"} {
		_, err := NormalizeState(input)
		kind, ok := validation.KindOf(err)
		require.True(t, ok, input)
		assert.Equal(t, validation.KindInvalid, kind, input)
	}
}

func TestNormalizeStateIsTotalOverAliases(t *testing.T) {
	for alias, code := range StateAliases() {
		for _, variant := range []string{alias, strings.ToUpper(alias), " " + alias + "  "} {
			got, err := NormalizeState(variant)
			require.NoError(t, err, variant)
			assert.Equal(t, code, got, variant)
		}
	}
}

func TestStatesResolveByCodeAndName(t *testing.T) {
	for _, s := range States() {
		got, err := NormalizeState(s.Code)
		require.NoError(t, err, s.Code)
		assert.Equal(t, s.Code, got)

		got, err = NormalizeState(s.Name)
		require.NoError(t, err, s.Name)
		assert.Equal(t, s.Code, got)
	}
}

func TestStateFieldBlankPolicy(t *testing.T) {
	for _, raw := range []any{nil, ""} {
		_, err := State.Clean(raw, validation.Options{})
		kind, _ := validation.KindOf(err)
		assert.Equal(t, validation.KindEmpty, kind)

		out, err := State.Clean(raw, validation.Options{AllowBlank: true})
		require.NoError(t, err)
		assert.Equal(t, "", out)
	}
}
