package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordboard/internal/model"
)

func TestDecodeValidResponse(t *testing.T) {
	move, err := Decode([]byte(`{"word":"go","score":4,"direction":"down","last_letter_index":[3,0]}`))
	require.NoError(t, err)

	assert.Equal(t, "GO", move.Word)
	assert.Equal(t, 4, move.Score)
	assert.Equal(t, model.DirectionDown, move.Direction)
	assert.Equal(t, model.Position{Row: 3, Col: 0}, move.LastLetter)
}

func TestDecodeAcceptsWildcardAndZeroScore(t *testing.T) {
	move, err := Decode([]byte(`{"word":"?","score":0,"direction":"across","last_letter_index":[14,14]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, move.Score)
}

func TestDecodeRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"word":`},
		{"not an object", `[1,2]`},
		{"missing word", `{"score":4,"direction":"down","last_letter_index":[3,0]}`},
		{"empty word", `{"word":"","score":4,"direction":"down","last_letter_index":[3,0]}`},
		{"digit in word", `{"word":"G0","score":4,"direction":"down","last_letter_index":[3,0]}`},
		{"missing score", `{"word":"GO","direction":"down","last_letter_index":[3,0]}`},
		{"negative score", `{"word":"GO","score":-1,"direction":"down","last_letter_index":[3,0]}`},
		{"fractional score", `{"word":"GO","score":4.5,"direction":"down","last_letter_index":[3,0]}`},
		{"quoted score", `{"word":"GO","score":"24","direction":"down","last_letter_index":[3,0]}`},
		{"null score", `{"word":"GO","score":null,"direction":"down","last_letter_index":[3,0]}`},
		{"boolean score", `{"word":"GO","score":true,"direction":"down","last_letter_index":[3,0]}`},
		{"unknown direction", `{"word":"GO","score":4,"direction":"diagonal","last_letter_index":[3,0]}`},
		{"missing direction", `{"word":"GO","score":4,"last_letter_index":[3,0]}`},
		{"short index", `{"word":"GO","score":4,"direction":"down","last_letter_index":[3]}`},
		{"missing index", `{"word":"GO","score":4,"direction":"down"}`},
		{"index off board", `{"word":"GO","score":4,"direction":"down","last_letter_index":[15,0]}`},
		{"negative index", `{"word":"GO","score":4,"direction":"down","last_letter_index":[3,-1]}`},
		{"word runs off top", `{"word":"GOAT","score":4,"direction":"down","last_letter_index":[2,0]}`},
		{"word runs off left", `{"word":"GOAT","score":4,"direction":"across","last_letter_index":[5,2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body))
			assert.ErrorIs(t, err, model.ErrSolverUnavailable)
			assert.ErrorIs(t, err, model.ErrInvalidResponseShape)
		})
	}
}
