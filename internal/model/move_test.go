package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordboard/internal/model"
)

func TestParseDirection(t *testing.T) {
	d, err := model.ParseDirection("across")
	require.NoError(t, err)
	assert.Equal(t, 1, d.Step())

	d, err = model.ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, model.Width, d.Step())

	_, err = model.ParseDirection("diagonal")
	assert.ErrorIs(t, err, model.ErrInvalidResponseShape)
}

func TestPositionIndexRoundTrip(t *testing.T) {
	pos := model.Position{Row: 7, Col: 9}
	assert.Equal(t, 114, pos.Index())
	assert.Equal(t, pos, model.PositionOf(114))
	assert.False(t, model.Position{Row: 15, Col: 0}.InBounds())
	assert.False(t, model.Position{Row: 0, Col: -1}.InBounds())
}

func TestBestMoveFits(t *testing.T) {
	tests := []struct {
		name string
		move model.BestMove
		fits bool
	}{
		{"across from left edge", model.BestMove{Word: "CAT", Direction: model.DirectionAcross, LastLetter: model.Position{Row: 0, Col: 2}}, true},
		{"across wraps row", model.BestMove{Word: "CAT", Direction: model.DirectionAcross, LastLetter: model.Position{Row: 1, Col: 1}}, false},
		{"down from top edge", model.BestMove{Word: "GO", Direction: model.DirectionDown, LastLetter: model.Position{Row: 1, Col: 0}}, true},
		{"down off top", model.BestMove{Word: "GOT", Direction: model.DirectionDown, LastLetter: model.Position{Row: 1, Col: 0}}, false},
		{"anchor off board", model.BestMove{Word: "A", Direction: model.DirectionDown, LastLetter: model.Position{Row: 15, Col: 0}}, false},
		{"empty word", model.BestMove{Word: "", Direction: model.DirectionDown, LastLetter: model.Position{Row: 3, Col: 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, tt.move.Fits())
		})
	}
}
