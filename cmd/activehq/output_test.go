package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitJSONPlain(t *testing.T) {
	out := captureStdout(t, func() error {
		return emitJSON(map[string]any{"name": "Ironworks Fitness"}, outputOptions{JSON: true})
	})
	require.Contains(t, out, `"name": "Ironworks Fitness"`)
}

func TestEmitJSONWithQuery(t *testing.T) {
	payload := map[string]any{
		"items": []map[string]any{
			{"name": "Monthly", "price": 1500},
			{"name": "Quarterly", "price": 4000},
		},
	}

	out := captureStdout(t, func() error {
		return emitJSON(payload, outputOptions{Query: "items[].name"})
	})
	require.Contains(t, out, "Monthly")
	require.Contains(t, out, "Quarterly")
	require.NotContains(t, out, "1500")
}

func TestEmitJSONRejectsBadQuery(t *testing.T) {
	err := emitJSON(map[string]any{}, outputOptions{Query: "items[unbalanced"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--query")
}

func TestOutputOptionsWantsJSON(t *testing.T) {
	require.False(t, outputOptions{}.wantsJSON())
	require.True(t, outputOptions{JSON: true}.wantsJSON())
	require.True(t, outputOptions{Query: "items[0]"}.wantsJSON())
	require.False(t, outputOptions{Query: "   "}.wantsJSON())
}
