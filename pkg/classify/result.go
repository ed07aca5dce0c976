package classify

import "encoding/json"

// Result is the outcome of one classification. It is assembled fresh per
// Classify call and never reused.
type Result struct {
	RiskLevel        RiskLevel  `json:"risk_level"`
	Reasoning        []string   `json:"reasoning"`
	RelevantArticles []string   `json:"relevant_articles"`
	DecisionPath     []string   `json:"decision_path"`
	Confidence       Confidence `json:"confidence"`
	Recommendations  []string   `json:"recommendations"`
}

// relevantArticles maps each risk level to the provisions cited in the
// report. Static; determined solely by the risk level.
var relevantArticles = map[RiskLevel][]string{
	RiskProhibited:   {"Article 5 - Prohibited Practices"},
	RiskHigh:         {"Article 6 & Annex III", "Articles 8-15 - Requirements"},
	RiskTransparency: {"Article 50 - Transparency"},
	RiskLow:          {"Article 69 - Codes of Conduct (voluntary)"},
	RiskException:    {"Article 2 - Scope exceptions"},
}

// generalHighRiskRecommendations is the compliance baseline appended for
// every high-risk category.
var generalHighRiskRecommendations = []string{
	"Implement risk management system (Article 9)",
	"Ensure high-quality training data (Article 10)",
	"Maintain technical documentation (Article 11)",
	"Enable logging and traceability (Article 12)",
	"Implement human oversight (Article 14)",
	"Ensure accuracy and robustness (Article 15)",
	"Undergo conformity assessment (Article 43)",
	"Register in EU database (Article 71)",
}

// specificHighRiskRecommendations holds category-specific additions layered
// on top of the general baseline.
var specificHighRiskRecommendations = map[string][]string{
	"safety":         {"Conduct vehicle safety testing", "Implement fail-safe mechanisms"},
	"biometric":      {"Strict biometric data access controls", "GDPR compliance"},
	"employment":     {"Human-in-the-loop for decisions", "Bias testing"},
	"border_control": {"Data protection for sensitive data", "Appeal mechanisms"},
}

func addHighRiskRecommendations(eval *evaluation, category string) {
	eval.recommendations = append(eval.recommendations, generalHighRiskRecommendations...)
	eval.recommendations = append(eval.recommendations, specificHighRiskRecommendations[category]...)
}

// newResult assembles the final result from the per-call accumulator.
// Confidence is derived from the reasoning accumulated by the stages,
// before the no-risk placeholder is substituted.
func newResult(level RiskLevel, eval *evaluation) *Result {
	confidence := ConfidenceLow
	switch {
	case len(eval.reasoning) >= 3:
		confidence = ConfidenceHigh
	case len(eval.reasoning) >= 2:
		confidence = ConfidenceMedium
	}

	reasoning := eval.reasoning
	if len(reasoning) == 0 {
		reasoning = []string{"No specific risks identified"}
	}

	recommendations := eval.recommendations
	if len(recommendations) == 0 {
		recommendations = []string{"Monitor regulatory developments"}
	}

	return &Result{
		RiskLevel:        level,
		Reasoning:        reasoning,
		RelevantArticles: relevantArticles[level],
		DecisionPath:     eval.decisionPath,
		Confidence:       confidence,
		Recommendations:  recommendations,
	}
}

// ToJSON serializes the result as indented JSON.
func (r *Result) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
