package countdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTargetMinute(t *testing.T) {
	for _, m := range []int{0, 1, 30, 59} {
		got, err := NewTargetMinute(m)
		require.NoError(t, err)
		assert.Equal(t, m, got.Int())
	}
	for _, m := range []int{-1, 60, 1000} {
		_, err := NewTargetMinute(m)
		assert.ErrorIs(t, err, ErrInvalidTargetMinute, "minute %d", m)
	}
}

func TestParseTargetMinute(t *testing.T) {
	tests := []struct {
		in      string
		want    TargetMinute
		wantErr bool
	}{
		{"30", 30, false},
		{" 05 ", 5, false},
		{"0", 0, false},
		{"59", 59, false},
		{"60", 0, true},
		{"-1", 0, true},
		{"", 0, true},
		{"half", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTargetMinute(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTargetMinute)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetMinute_Shift(t *testing.T) {
	assert.Equal(t, TargetMinute(31), TargetMinute(30).Shift(1))
	assert.Equal(t, TargetMinute(0), TargetMinute(59).Shift(1))
	assert.Equal(t, TargetMinute(59), TargetMinute(0).Shift(-1))
	assert.Equal(t, TargetMinute(10), TargetMinute(10).Shift(120))
}

func TestTargetMinute_String(t *testing.T) {
	assert.Equal(t, ":05", TargetMinute(5).String())
	assert.Equal(t, ":30", TargetMinute(30).String())
}
