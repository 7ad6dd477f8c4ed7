package handid

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducesValidIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := New()
		require.NoError(t, err)
		require.NoError(t, Validate(id))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestIDsSortByTime(t *testing.T) {
	t.Parallel()

	first := MustNew()
	time.Sleep(2 * time.Millisecond)
	second := MustNew()
	assert.Less(t, first, second)
}

func TestEncodeKnownValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00000000000000000000000000", Encode(uuid.UUID{}))

	var full uuid.UUID
	for i := range full {
		full[i] = 0xff
	}
	assert.Equal(t, "7zzzzzzzzzzzzzzzzzzzzzzzzz", Encode(full))

	var one uuid.UUID
	one[15] = 1
	assert.Equal(t, "00000000000000000000000001", Encode(one))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: "01h5n0et5q6mt3v7ms1234abcd"},
		{name: "too short", id: "01h5n0et5q6mt3v7ms123", wantErr: true},
		{name: "too long", id: "01h5n0et5q6mt3v7ms1234abcdef", wantErr: true},
		{name: "first char too high", id: "81h5n0et5q6mt3v7ms1234abcd", wantErr: true},
		{name: "excluded letter", id: "01h5n0et5q6mt3v7ms1234abci", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.id)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
