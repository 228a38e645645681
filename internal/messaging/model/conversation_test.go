package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	a := uuid.MustParse("2b4a94cf-7c8e-4fd1-9f39-111111111111")
	b := uuid.MustParse("9e1d2c3b-0a5f-4e6d-8c7b-222222222222")

	tests := []struct {
		name   string
		first  uuid.UUID
		second uuid.UUID
	}{
		{name: "already ordered", first: a, second: b},
		{name: "reversed", first: b, second: a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high := CanonicalPair(tt.first, tt.second)
			assert.Equal(t, a, low)
			assert.Equal(t, b, high)
		})
	}
}

func TestCanonicalPair_Symmetry(t *testing.T) {
	for i := 0; i < 50; i++ {
		x, y := uuid.New(), uuid.New()
		lowXY, highXY := CanonicalPair(x, y)
		lowYX, highYX := CanonicalPair(y, x)
		assert.Equal(t, lowXY, lowYX)
		assert.Equal(t, highXY, highYX)
		assert.Less(t, lowXY.String(), highXY.String())
	}
}

func TestConversation_OtherParticipant(t *testing.T) {
	low, high := CanonicalPair(uuid.New(), uuid.New())
	conv := &Conversation{LowID: low, HighID: high}

	assert.Equal(t, high, conv.OtherParticipant(low))
	assert.Equal(t, low, conv.OtherParticipant(high))
}

func TestConversation_HasParticipant(t *testing.T) {
	low, high := CanonicalPair(uuid.New(), uuid.New())
	conv := &Conversation{LowID: low, HighID: high}

	assert.True(t, conv.HasParticipant(low))
	assert.True(t, conv.HasParticipant(high))
	assert.False(t, conv.HasParticipant(uuid.New()))
}
