package derivation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/services/derivation"
)

// fixedRoller rolls every die as value
type fixedRoller struct {
	value int
	err   error
	calls [][2]int
}

func (r *fixedRoller) Roll(_ int) (int, error) { return r.value, r.err }

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	r.calls = append(r.calls, [2]int{count, size})
	if r.err != nil {
		return nil, r.err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, nil
}

func TestRollHitPoints(t *testing.T) {
	testCases := []struct {
		name     string
		formula  string
		value    int
		expected int
		dice     [2]int
	}{
		{name: "plain", formula: "2d6", value: 3, expected: 6, dice: [2]int{2, 6}},
		{name: "flat bonus", formula: "17d12 + 85", value: 6, expected: 187, dice: [2]int{17, 12}},
		{name: "negative bonus", formula: "1d4 - 1", value: 4, expected: 3, dice: [2]int{1, 4}},
		{name: "floored at one", formula: "1d4 - 3", value: 1, expected: 1, dice: [2]int{1, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			roller := &fixedRoller{value: tc.value}
			hp, err := derivation.RollHitPoints(roller, tc.formula)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, hp)
			assert.Equal(t, [][2]int{tc.dice}, roller.calls)
		})
	}
}

func TestRollHitPoints_Errors(t *testing.T) {
	_, err := derivation.RollHitPoints(&fixedRoller{value: 1}, "a lot")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = derivation.RollHitPoints(&fixedRoller{value: 1}, "0d6")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = derivation.RollHitPoints(&fixedRoller{err: errors.New("no entropy")}, "2d6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entropy")
}

func TestRollHitPoints_DefaultRoller(t *testing.T) {
	hp, err := derivation.RollHitPoints(nil, "3d6 + 2")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, hp, 5)
	assert.LessOrEqual(t, hp, 20)
}
