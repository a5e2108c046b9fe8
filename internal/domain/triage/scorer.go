package triage

import "math"

// highRiskThreshold is the score above which a case is flagged HIGH when the
// classifier asserts nothing itself. A score of exactly 60 stays NORMAL.
const highRiskThreshold = 60

// RiskScore derives the bounded risk score from ranked predictions: the top
// probability (0-100 percentage scale) amplified by 10 and clamped to
// [0,100]. The amplification saturates at a 10% top probability; that is the
// established scoring behavior and is kept as-is for compatibility with
// historical cases. Empty predictions score 0.
func RiskScore(preds []Prediction) int {
	if len(preds) == 0 {
		return 0
	}
	score := int(math.Round(preds[0].Probability * 10))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ResolvePriority picks the priority tier. A classifier-asserted priority
// wins outright; otherwise a set danger flag forces HIGH; otherwise the
// derived score decides.
func ResolvePriority(hint string, danger *bool, riskScore int) Priority {
	if hint != "" {
		return Priority(hint)
	}
	if danger != nil && *danger {
		return PriorityHigh
	}
	if riskScore > highRiskThreshold {
		return PriorityHigh
	}
	return PriorityNormal
}
