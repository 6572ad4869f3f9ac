package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/saferoutex/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const goodDataset = `{
	"segments": [
		{"id": "a-b", "start": [0, 0], "end": [0.008993, 0],
		 "crime": 0.0, "lighting": 1.0, "crowd": 1.0},
		{"id": "b-c", "start": [0.008993, 0], "end": [0.017986, 0],
		 "crime": 1.0, "lighting": 0.0, "crowd": 0.0}
	]
}`

func TestLoadValidDataset(t *testing.T) {
	store := NewSegmentStore(zap.NewNop())
	loader := NewLoader(store, zap.NewNop())

	n, err := loader.Load([]byte(goodDataset))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint64(1), store.Version())

	// zero scores must survive the required check
	s, ok := store.Get("a-b")
	require.True(t, ok)
	assert.Equal(t, 0.0, s.GetCrime())
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "invalid json", raw: `{"segments": [`},
		{name: "no segments", raw: `{"segments": []}`},
		{
			name: "missing crime score",
			raw: `{"segments": [{"id": "x", "start": [0, 0], "end": [1, 1],
				"lighting": 0.5, "crowd": 0.5}]}`,
		},
		{
			name: "truncated endpoint",
			raw: `{"segments": [{"id": "x", "start": [0], "end": [1, 1],
				"crime": 0.5, "lighting": 0.5, "crowd": 0.5}]}`,
		},
		{
			name: "score above 1",
			raw: `{"segments": [{"id": "x", "start": [0, 0], "end": [1, 1],
				"crime": 1.2, "lighting": 0.5, "crowd": 0.5}]}`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			store := NewSegmentStore(zap.NewNop())
			loader := NewLoader(store, zap.NewNop())

			_, err := loader.Load([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(util.ErrorCode(err), util.ErrDataset))
			assert.Equal(t, uint64(0), store.Version())
		})
	}
}

func TestLoadFailureKeepsPreviousDataset(t *testing.T) {
	store := NewSegmentStore(zap.NewNop())
	loader := NewLoader(store, zap.NewNop())

	_, err := loader.Load([]byte(goodDataset))
	require.NoError(t, err)

	_, err = loader.Load([]byte(`{"segments": []}`))
	require.Error(t, err)

	assert.Equal(t, uint64(1), store.Version())
	assert.Equal(t, 2, store.NumberOfSegments())
}

func TestLoadFile(t *testing.T) {
	store := NewSegmentStore(zap.NewNop())
	loader := NewLoader(store, zap.NewNop())

	path := filepath.Join(t.TempDir(), "risk_data.json")
	require.NoError(t, os.WriteFile(path, []byte(goodDataset), 0644))

	n, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(util.ErrorCode(err), util.ErrDataset))
}
