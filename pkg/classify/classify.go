// Package classify implements the EU AI Act risk classification rule chain.
//
// Classification runs five stages in fixed order with short-circuit
// termination: scope exceptions (Article 2), prohibited practices
// (Article 5), high-risk systems (Article 6 and Annex III), transparency
// requirements (Article 50), and finally the low-risk default. The first
// stage whose predicate holds determines the risk level.
package classify

import (
	"strings"

	"github.com/coolbeans/aiact/pkg/profile"
)

// RiskLevel is the classification outcome under the EU AI Act.
type RiskLevel string

const (
	RiskProhibited   RiskLevel = "Prohibited"
	RiskHigh         RiskLevel = "High-Risk"
	RiskLow          RiskLevel = "Low-Risk"
	RiskTransparency RiskLevel = "Additional Transparency Requirements"
	// RiskGPAI is defined by the Act but not produced by the current rule
	// chain. Reserved for general-purpose AI model obligations.
	RiskGPAI      RiskLevel = "GPAI Requirements"
	RiskException RiskLevel = "Exception"
)

// Confidence labels how strongly the accumulated reasoning supports the
// outcome.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Decision path labels, one per rule-chain stage actually tested.
const (
	stageExceptions   = "Article 2: Scope exceptions"
	stageProhibited   = "Article 5: Prohibited AI practices"
	stageHighRisk     = "Article 6 & Annex III: High-risk systems"
	stageTransparency = "Article 50: Transparency requirements"
)

// Engine evaluates the rule chain. It holds no mutable state: every
// Classify call owns a fresh accumulator, so a single Engine is safe to
// reuse across unrelated requests.
type Engine struct{}

// NewEngine returns a classification engine.
func NewEngine() *Engine {
	return &Engine{}
}

// evaluation accumulates reasoning, decision path, and recommendations for
// one Classify call. Constructed fresh per call; never stored on the Engine.
type evaluation struct {
	reasoning       []string
	decisionPath    []string
	recommendations []string
}

// Classify runs the profile through the rule chain and returns the result.
// The same profile always yields the same result; neither the profile nor
// the engine is mutated.
func (e *Engine) Classify(p *profile.Profile) *Result {
	eval := &evaluation{}
	description := strings.ToLower(p.Description)

	switch {
	case checkExceptions(description, eval):
		return newResult(RiskException, eval)
	case checkProhibited(p, description, eval):
		return newResult(RiskProhibited, eval)
	case checkHighRisk(p, eval):
		return newResult(RiskHigh, eval)
	case checkTransparency(description, eval):
		return newResult(RiskTransparency, eval)
	}
	return newResult(RiskLow, eval)
}

// checkExceptions tests the Article 2 scope exceptions.
func checkExceptions(description string, eval *evaluation) bool {
	eval.decisionPath = append(eval.decisionPath, stageExceptions)

	if strings.Contains(description, "research") && strings.Contains(description, "scientific") {
		eval.reasoning = append(eval.reasoning, "May qualify for scientific research exception (Article 2.6)")
		return true
	}

	if containsAny(description, "military", "defence", "defense") {
		eval.reasoning = append(eval.reasoning, "Military/defence exception applies (Article 2.3)")
		return true
	}

	return false
}

// checkProhibited tests the Article 5 prohibited practices in order; the
// first matching practice terminates the stage.
func checkProhibited(p *profile.Profile, description string, eval *evaluation) bool {
	eval.decisionPath = append(eval.decisionPath, stageProhibited)

	if containsAny(description, "manipulate", "subliminal", "exploit vulnerabilities") {
		eval.reasoning = append(eval.reasoning, "PROHIBITED: Subliminal manipulation (Article 5.1a)")
		return true
	}

	if strings.Contains(description, "social scor") {
		eval.reasoning = append(eval.reasoning, "PROHIBITED: Social scoring system (Article 5.1c)")
		return true
	}

	if p.BiometricsInvolved && p.BiometricsPurpose == "identification" &&
		containsAny(description, "real-time", "live") &&
		strings.Contains(strings.ToLower(p.DeploymentContext), "public") {
		eval.reasoning = append(eval.reasoning, "PROHIBITED: Real-time remote biometric identification (Article 5.1h)")
		return true
	}

	if p.BiometricsPurpose == "emotion recognition" &&
		(p.HasContext("Workplace") || p.HasContext("Educational assessment")) {
		eval.reasoning = append(eval.reasoning, "PROHIBITED: Emotion recognition in workplace/education (Article 5.1f)")
		return true
	}

	return false
}

// checkHighRisk tests the Annex III categories in a fixed priority order.
// Only the first matching category records reasoning and recommendations,
// even when the profile satisfies several.
func checkHighRisk(p *profile.Profile, eval *evaluation) bool {
	eval.decisionPath = append(eval.decisionPath, stageHighRisk)

	if p.BiometricsInvolved && (p.BiometricsPurpose == "identification" || p.BiometricsPurpose == "categorisation") {
		eval.reasoning = append(eval.reasoning, "HIGH-RISK: Biometric identification system (Annex III.1)")
		addHighRiskRecommendations(eval, "biometric")
		return true
	}

	if p.HasContext("Critical infrastructure") {
		eval.reasoning = append(eval.reasoning, "HIGH-RISK: Critical infrastructure system (Annex III.2)")
		addHighRiskRecommendations(eval, "infrastructure")
		return true
	}

	if p.HasContext("Safety-critical environment") || p.HasContext("Vehicle operation") {
		eval.reasoning = append(eval.reasoning,
			"HIGH-RISK: Safety component in vehicle operation (Annex III.2)",
			"System operates in safety-critical context")
		addHighRiskRecommendations(eval, "safety")
		return true
	}

	if p.HasContext("Educational assessment") {
		eval.reasoning = append(eval.reasoning, "HIGH-RISK: Educational assessment system (Annex III.3)")
		addHighRiskRecommendations(eval, "education")
		return true
	}

	if p.HasContext("Employment decision") {
		eval.reasoning = append(eval.reasoning, "HIGH-RISK: Employment decision system (Annex III.4)")
		addHighRiskRecommendations(eval, "employment")
		return true
	}

	if p.HasContext("Essential services access") || p.HasContext("Financial decision") {
		eval.reasoning = append(eval.reasoning, "HIGH-RISK: Essential services/creditworthiness (Annex III.5)")
		addHighRiskRecommendations(eval, "essential_services")
		return true
	}

	if p.HasContext("Law enforcement") {
		eval.reasoning = append(eval.reasoning, "HIGH-RISK: Law enforcement application (Annex III.6)")
		addHighRiskRecommendations(eval, "law_enforcement")
		return true
	}

	if p.HasContext("Border control") {
		eval.reasoning = append(eval.reasoning, "HIGH-RISK: Border control system (Annex III.7)")
		addHighRiskRecommendations(eval, "border_control")
		return true
	}

	if p.HasContext("Justice administration") {
		eval.reasoning = append(eval.reasoning, "HIGH-RISK: Administration of justice (Annex III.8)")
		addHighRiskRecommendations(eval, "justice")
		return true
	}

	return false
}

// checkTransparency tests the Article 50 transparency triggers.
func checkTransparency(description string, eval *evaluation) bool {
	eval.decisionPath = append(eval.decisionPath, stageTransparency)

	if containsAny(description, "chat", "conversational", "assistant", "interact") {
		eval.reasoning = append(eval.reasoning, "TRANSPARENCY: Interactive AI system (Article 50.1)")
		eval.recommendations = append(eval.recommendations, "Disclose AI interaction to users")
		return true
	}

	if strings.Contains(description, "generat") {
		eval.reasoning = append(eval.reasoning, "TRANSPARENCY: Generative AI system (Article 50.2)")
		eval.recommendations = append(eval.recommendations, "Label AI-generated content")
		return true
	}

	return false
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
