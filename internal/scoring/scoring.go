// Package scoring computes attempt scores from a student's answers and a
// test's answer key. It is pure: no store access, no logging, deterministic
// for identical inputs.
package scoring

import "math"

// NegativePenalty is the fraction deducted per incorrect answer when
// negative marking is enabled.
const NegativePenalty = 0.25

type Result struct {
	Percentage     float64 `json:"percentage"`
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
	TotalQuestions int     `json:"total_questions"`
}

// Score grades answers against key index-wise. A nil entry means unanswered
// and counts neither correct nor incorrect. A short answers slice scores the
// missing tail as unanswered; entries beyond len(key) are ignored, so a
// length mismatch never rejects a submission.
//
// Raw score is the correct count, minus NegativePenalty per incorrect answer
// when negative is set, floored at 0. Percentage is raw/len(key)*100 rounded
// to one decimal (half away from zero). A zero-question key yields 0.0 by
// convention rather than dividing by zero.
func Score(answers []*int, key []int, negative bool) Result {
	res := Result{TotalQuestions: len(key)}
	for i, want := range key {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == want {
			res.CorrectCount++
		} else {
			res.IncorrectCount++
		}
	}

	if res.TotalQuestions == 0 {
		return res
	}

	raw := float64(res.CorrectCount)
	if negative {
		raw -= NegativePenalty * float64(res.IncorrectCount)
		if raw < 0 {
			raw = 0
		}
	}
	res.Percentage = round1(raw / float64(res.TotalQuestions) * 100)
	return res
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
