// Package scoring holds the pure pass/fail policies applied to bias scores.
// Nothing here performs I/O.
package scoring

import "math"

// DefaultReward is the number of points granted for a passing rewrite.
const DefaultReward = 10

// Decision is the outcome of applying a Policy to one submission.
type Decision struct {
	Delta         float64
	Passed        bool
	PointsAwarded int
}

// Policy decides whether a rewrite passes. Scores and threshold are on the
// 0-100 scale. Implementations must be total: non-finite inputs never pass.
type Policy interface {
	Name() string
	Decide(originalScore, rewriteScore, threshold float64) Decision
}

// Absolute passes a rewrite whose own score is at or below the threshold.
// Delta is reported but plays no part in the decision.
type Absolute struct {
	Reward int
}

func (Absolute) Name() string { return "absolute" }

func (p Absolute) Decide(originalScore, rewriteScore, threshold float64) Decision {
	d := Decision{Delta: delta(originalScore, rewriteScore)}
	if !finite(originalScore, rewriteScore, threshold) {
		return d
	}
	if rewriteScore <= threshold {
		d.Passed = true
		d.PointsAwarded = p.Reward
	}
	return d
}

// Relative passes a rewrite that lowers the score by at least threshold
// points. It exists as a named alternative and is only used when configured.
type Relative struct {
	Reward int
}

func (Relative) Name() string { return "relative" }

func (p Relative) Decide(originalScore, rewriteScore, threshold float64) Decision {
	d := Decision{Delta: delta(originalScore, rewriteScore)}
	if !finite(originalScore, rewriteScore, threshold) {
		return d
	}
	if d.Delta >= threshold {
		d.Passed = true
		d.PointsAwarded = p.Reward
	}
	return d
}

// ByName returns the policy registered under name, or false.
func ByName(name string, reward int) (Policy, bool) {
	switch name {
	case Absolute{}.Name():
		return Absolute{Reward: reward}, true
	case Relative{}.Name():
		return Relative{Reward: reward}, true
	}
	return nil, false
}

// delta is original - rewrite rounded to 2 decimals; 0 when not computable,
// so the value always survives JSON encoding.
func delta(originalScore, rewriteScore float64) float64 {
	d := Round(originalScore-rewriteScore, 2)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return d
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
