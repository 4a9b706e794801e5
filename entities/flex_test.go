package entities_test

import (
	"encoding/json"
	"testing"

	"Recipe-Publisher/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntDecoding(t *testing.T) {
	cases := map[string]entities.FlexInt{
		`15`:              15,
		`7.5`:             8,
		`"20"`:            20,
		`"45 minutes"`:    45,
		`"1.5 hours"`:     2,
		`"about an hour"`: 0,
		`null`:            0,
		`true`:            0,
		`{"min": 5}`:      0,
	}
	for input, want := range cases {
		var got entities.FlexInt
		require.NoError(t, json.Unmarshal([]byte(input), &got), input)
		assert.Equal(t, want, got, input)
	}
}

func TestFlexFloatDecoding(t *testing.T) {
	var n entities.Nutrition
	require.NoError(t, json.Unmarshal([]byte(`{"calories": "350 kcal", "protein": 12.5, "carbs": "40g", "fat": "n/a"}`), &n))

	assert.Equal(t, entities.FlexFloat(350), n.Calories)
	assert.Equal(t, entities.FlexFloat(12.5), n.Protein)
	assert.Equal(t, entities.FlexFloat(40), n.Carbs)
	assert.Zero(t, n.Fat)
}
