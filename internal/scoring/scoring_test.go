package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func answers(vals ...*int) []*int { return vals }

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		answers   []*int
		key       []int
		negative  bool
		correct   int
		incorrect int
		percent   float64
	}{
		{
			name:    "all correct",
			answers: answers(intPtr(0), intPtr(1), intPtr(2), intPtr(3)),
			key:     []int{0, 1, 2, 3},
			correct: 4, incorrect: 0, percent: 100.0,
		},
		{
			name:    "all unanswered",
			answers: answers(nil, nil, nil, nil),
			key:     []int{0, 1, 2, 3},
			correct: 0, incorrect: 0, percent: 0.0,
		},
		{
			name:     "all unanswered with negative marking",
			answers:  answers(nil, nil, nil, nil),
			key:      []int{0, 1, 2, 3},
			negative: true,
			correct:  0, incorrect: 0, percent: 0.0,
		},
		{
			name:    "three correct one skipped",
			answers: answers(intPtr(0), intPtr(1), intPtr(2), nil),
			key:     []int{0, 1, 2, 3},
			correct: 3, incorrect: 0, percent: 75.0,
		},
		{
			name:     "negative marking fractional percentage",
			answers:  answers(intPtr(1), intPtr(0), intPtr(2), intPtr(1)),
			key:      []int{0, 1, 2, 3},
			negative: true,
			// raw = 1 - 3*0.25 = 0.25 -> 6.25% rounds to 6.3
			correct: 1, incorrect: 3, percent: 6.3,
		},
		{
			name:     "raw score clamped at zero",
			answers:  answers(intPtr(1), intPtr(0), intPtr(0), intPtr(1)),
			key:      []int{0, 1, 2, 3},
			negative: true,
			correct:  0, incorrect: 4, percent: 0.0,
		},
		{
			name:    "short answer slice scores tail as skipped",
			answers: answers(intPtr(0)),
			key:     []int{0, 1, 2, 3},
			correct: 1, incorrect: 0, percent: 25.0,
		},
		{
			name:    "extra answers beyond key are ignored",
			answers: answers(intPtr(0), intPtr(1), intPtr(3), intPtr(3), intPtr(0)),
			key:     []int{0, 1, 2, 3},
			correct: 3, incorrect: 1, percent: 75.0,
		},
		{
			name:    "empty key yields zero percentage",
			answers: answers(),
			key:     []int{},
			correct: 0, incorrect: 0, percent: 0.0,
		},
		{
			name:    "nil answers slice",
			answers: nil,
			key:     []int{0, 1},
			correct: 0, incorrect: 0, percent: 0.0,
		},
		{
			name:     "negative marking does not round up across wrong answers",
			answers:  answers(intPtr(0), intPtr(1), intPtr(0), intPtr(0), intPtr(0), intPtr(0)),
			key:      []int{0, 1, 2, 3, 1, 2},
			negative: true,
			// raw = 2 - 4*0.25 = 1 -> 16.666... rounds to 16.7
			correct: 2, incorrect: 4, percent: 16.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.answers, tt.key, tt.negative)
			assert.Equal(t, tt.correct, got.CorrectCount)
			assert.Equal(t, tt.incorrect, got.IncorrectCount)
			assert.Equal(t, len(tt.key), got.TotalQuestions)
			assert.InDelta(t, tt.percent, got.Percentage, 1e-9)
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	ans := answers(intPtr(2), nil, intPtr(1))
	key := []int{2, 0, 3}
	first := Score(ans, key, true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(ans, key, true))
	}
}
