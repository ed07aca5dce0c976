// Package profile builds structured AI system profiles from free-text
// descriptions and optional supplementary research text.
package profile

import (
	"encoding/json"
	"strings"

	"github.com/coolbeans/aiact/pkg/taxonomy"
)

// BiometricPurposeNone is recorded when no biometric purpose applies.
const BiometricPurposeNone = "none"

// Profile is the structured description of an AI system used for
// classification. It is built once per request and not mutated afterwards.
type Profile struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Description string `json:"description"`

	// Sector holds the best-matching sector label, or "General".
	Sector string `json:"sector"`

	// PrimaryPurpose is a short natural-language purpose statement
	// extracted from the corpus.
	PrimaryPurpose string `json:"primary_purpose"`

	UserBase string `json:"user_base"`

	BiometricsInvolved bool `json:"biometrics_involved"`

	// BiometricsPurpose is one of identification, emotion recognition,
	// categorisation, authentication, or none. It stays "none" unless
	// BiometricsInvolved is true.
	BiometricsPurpose string `json:"biometrics_purpose"`

	DecisionMakingRole string `json:"decision_making_role"`

	// HighRiskContexts lists every matching Annex III context, in taxonomy
	// order. May be empty.
	HighRiskContexts []string `json:"high_risk_context"`

	// DataProcessed lists every matching data category, in taxonomy order.
	// May be empty.
	DataProcessed []string `json:"data_processed"`

	DeploymentContext string `json:"deployment_context"`

	// AdditionalInfo is the concatenated supplementary research text, if
	// any was gathered.
	AdditionalInfo string `json:"additional_info,omitempty"`

	// SearchSources lists the unique source URLs the supplementary text
	// was gathered from, in retrieval order.
	SearchSources []string `json:"search_sources,omitempty"`
}

// Build constructs a Profile from a system description and optional
// supplementary text. The corpus scanned by the taxonomies is the
// description followed by the supplement; matching never fails, so missing
// or degenerate input degrades to taxonomy defaults.
func Build(name, company, description, supplement string, sources []string) *Profile {
	corpus := description + supplement
	lowered := strings.ToLower(corpus)

	p := &Profile{
		Name:               name,
		Company:            company,
		Description:        description,
		Sector:             taxonomy.Sectors.MatchBest(lowered),
		PrimaryPurpose:     ExtractPurpose(corpus, name),
		UserBase:           taxonomy.UserBases.MatchFirst(lowered),
		BiometricsPurpose:  BiometricPurposeNone,
		DecisionMakingRole: taxonomy.DecisionRoles.MatchFirst(lowered),
		HighRiskContexts:   taxonomy.RiskContexts.MatchAll(lowered),
		DataProcessed:      taxonomy.DataTypes.MatchAll(lowered),
		DeploymentContext:  taxonomy.DeploymentContexts.MatchFirst(lowered),
		AdditionalInfo:     supplement,
		SearchSources:      sources,
	}

	// The purpose scan runs only once a biometric modality is established,
	// but it scans the whole corpus rather than the span that matched the
	// modality. A corpus mentioning "fingerprint" in one sentence and
	// "identify" in another is labeled purpose "identification".
	if category := taxonomy.BiometricCategories.MatchFirst(lowered); category != "" {
		p.BiometricsInvolved = true
		if purpose := taxonomy.BiometricPurposes.MatchFirst(lowered); purpose != "" {
			p.BiometricsPurpose = purpose
		}
	}

	return p
}

// HasContext reports whether the profile's high-risk contexts include the
// given label.
func (p *Profile) HasContext(label string) bool {
	for _, ctx := range p.HighRiskContexts {
		if ctx == label {
			return true
		}
	}
	return false
}

// ToJSON serializes the profile as indented JSON.
func (p *Profile) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
