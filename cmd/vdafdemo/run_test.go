package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunBatchCount(t *testing.T) {
	cfg, err := LoadConfig("testdata/count.yaml")
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	result, err := RunBatch(log, cfg)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, uint64(2), result[0].Uint64())
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
