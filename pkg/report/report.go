// Package report renders classification outcomes for terminals, files, and
// JSON consumers. Reports are read-only views: they never mutate the
// profile or result they wrap.
package report

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/coolbeans/aiact/pkg/classify"
	"github.com/coolbeans/aiact/pkg/profile"
)

// maxDisplayedRecommendations caps how many recommendations the text report
// lists before summarizing the remainder.
const maxDisplayedRecommendations = 5

// Report pairs a profile with its classification result under a unique ID.
type Report struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Profile     *profile.Profile `json:"profile"`
	Result      *classify.Result `json:"result"`
}

// Builder mints reports with monotonic ULIDs. One builder serves concurrent
// callers, so the entropy source is wrapped in a locked reader.
type Builder struct {
	entropy *ulid.LockedMonotonicReader
}

// NewBuilder creates a report builder.
func NewBuilder() *Builder {
	return &Builder{entropy: &ulid.LockedMonotonicReader{
		MonotonicReader: ulid.Monotonic(rand.Reader, 0),
	}}
}

// Build wraps a profile and result in a new report.
func (b *Builder) Build(p *profile.Profile, result *classify.Result) *Report {
	return &Report{
		ID:          ulid.MustNew(ulid.Now(), b.entropy).String(),
		GeneratedAt: time.Now().UTC(),
		Profile:     p,
		Result:      result,
	}
}

// ToJSON serializes the report as indented JSON.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// String renders the full terminal report: profile section, classification
// banner, reasoning, provisions, and top recommendations.
func (r *Report) String() string {
	var sb strings.Builder

	rule := strings.Repeat("=", 100)
	thinRule := strings.Repeat("-", 100)

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("EU AI ACT CLASSIFICATION REPORT\n")
	sb.WriteString(rule + "\n")

	sb.WriteString("\nSYSTEM PROFILE\n")
	sb.WriteString(thinRule + "\n")
	sb.WriteString(fmt.Sprintf("  Name: %s\n", r.Profile.Name))
	sb.WriteString(fmt.Sprintf("  Company: %s\n", r.Profile.Company))
	sb.WriteString(fmt.Sprintf("  Sector: %s\n", r.Profile.Sector))
	sb.WriteString(fmt.Sprintf("  Deployment: %s\n", r.Profile.DeploymentContext))
	sb.WriteString(fmt.Sprintf("  User Base: %s\n", r.Profile.UserBase))
	sb.WriteString(fmt.Sprintf("  Decision Role: %s\n", r.Profile.DecisionMakingRole))

	if r.Profile.BiometricsInvolved {
		sb.WriteString(fmt.Sprintf("\n  Biometrics: Yes (%s)\n", r.Profile.BiometricsPurpose))
	}

	if len(r.Profile.HighRiskContexts) > 0 {
		sb.WriteString("\n  High-Risk Contexts:\n")
		for _, ctx := range r.Profile.HighRiskContexts {
			sb.WriteString(fmt.Sprintf("     - %s\n", ctx))
		}
	}

	if len(r.Profile.SearchSources) > 0 {
		sb.WriteString(fmt.Sprintf("\n  Sources: %d web sources consulted\n", len(r.Profile.SearchSources)))
	}

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString(fmt.Sprintf("CLASSIFICATION: %s\n", r.Result.RiskLevel))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", r.Result.Confidence))
	sb.WriteString(rule + "\n")

	sb.WriteString("\nREASONING:\n")
	for i, reason := range r.Result.Reasoning {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, reason))
	}

	sb.WriteString("\nRELEVANT PROVISIONS:\n")
	for _, article := range r.Result.RelevantArticles {
		sb.WriteString(fmt.Sprintf("  - %s\n", article))
	}

	if len(r.Result.Recommendations) > 0 {
		sb.WriteString("\nCOMPLIANCE RECOMMENDATIONS:\n")
		for i, rec := range r.Result.Recommendations {
			if i >= maxDisplayedRecommendations {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Result.Recommendations)-maxDisplayedRecommendations))
				break
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
		}
	}

	sb.WriteString("\n" + rule + "\n")

	return sb.String()
}

// FormatTable renders a compact aligned summary of the classification.
func (r *Report) FormatTable() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-14s | %s\n", "Field", "Value"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-14s | %s\n", "Report", r.ID))
	sb.WriteString(fmt.Sprintf("%-14s | %s\n", "System", r.Profile.Name))
	sb.WriteString(fmt.Sprintf("%-14s | %s\n", "Company", r.Profile.Company))
	sb.WriteString(fmt.Sprintf("%-14s | %s\n", "Sector", r.Profile.Sector))
	sb.WriteString(fmt.Sprintf("%-14s | %s\n", "Risk Level", string(r.Result.RiskLevel)))
	sb.WriteString(fmt.Sprintf("%-14s | %s\n", "Confidence", string(r.Result.Confidence)))
	sb.WriteString(fmt.Sprintf("%-14s | %d\n", "Reasons", len(r.Result.Reasoning)))
	sb.WriteString(fmt.Sprintf("%-14s | %d\n", "Steps", len(r.Result.DecisionPath)))

	return sb.String()
}
