package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		kind Kind
		in   string
		want Status
	}{
		{KindCourt, "pending", Pending},
		{KindCourt, " Confirmed ", Confirmed},
		{KindTable, "DaDat", Pending},
		{KindTable, "daxacnhan", Confirmed},
		{KindTable, "DaHuy", Canceled},
		{KindTable, "QuaHan", Expired},
		{KindTable, "expired", Expired},
	}

	for _, tt := range tests {
		got, err := Parse(tt.kind, tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := Parse(KindTable, "received")
	assert.ErrorIs(t, err, ErrUnknownStatus, "tables have no received state")

	_, err = Parse(KindCourt, "DaDat")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = Parse(Kind("room"), "pending")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "DaXacNhan", Label(KindTable, Confirmed))
	assert.Equal(t, "confirmed", Label(KindCourt, Confirmed))
	assert.Equal(t, "received", Label(KindTable, Received))
}

func TestTransition(t *testing.T) {
	t.Run("success: forward transitions", func(t *testing.T) {
		assert.NoError(t, Transition(KindCourt, Pending, Confirmed))
		assert.NoError(t, Transition(KindCourt, Confirmed, Received))
		assert.NoError(t, Transition(KindTable, Pending, Expired))
		assert.NoError(t, Transition(KindTable, Confirmed, Expired))
		assert.NoError(t, Transition(KindTable, Pending, Canceled))
	})

	t.Run("error: cancel after pending", func(t *testing.T) {
		assert.ErrorIs(t, Transition(KindCourt, Confirmed, Canceled), ErrNotCancelable)
		assert.ErrorIs(t, Transition(KindTable, Expired, Canceled), ErrNotCancelable)
	})

	t.Run("error: backwards or undefined", func(t *testing.T) {
		assert.ErrorIs(t, Transition(KindCourt, Confirmed, Pending), ErrInvalidTransition)
		assert.ErrorIs(t, Transition(KindCourt, Confirmed, Expired), ErrInvalidTransition)
		assert.ErrorIs(t, Transition(KindTable, Confirmed, Received), ErrInvalidTransition)
		assert.ErrorIs(t, Transition(KindCourt, Pending, Pending), ErrInvalidTransition)
	})
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("TABLE")
	require.NoError(t, err)
	assert.Equal(t, KindTable, k)

	_, err = ParseKind("")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestActive(t *testing.T) {
	assert.True(t, Active(Pending))
	assert.True(t, Active(Received))
	assert.False(t, Active(Canceled))
	assert.False(t, Active(Expired))
}
