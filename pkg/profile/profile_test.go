package profile

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildDefaults(t *testing.T) {
	p := Build("Sketcher", "Acme", "Draws doodles.", "", nil)

	if p.Sector != "General" {
		t.Errorf("Sector = %q, want General", p.Sector)
	}
	if p.UserBase != "General public" {
		t.Errorf("UserBase = %q, want General public", p.UserBase)
	}
	if p.DeploymentContext != "General commercial use" {
		t.Errorf("DeploymentContext = %q, want General commercial use", p.DeploymentContext)
	}
	if p.DecisionMakingRole != "Informational" {
		t.Errorf("DecisionMakingRole = %q, want Informational", p.DecisionMakingRole)
	}
	if p.BiometricsInvolved {
		t.Error("BiometricsInvolved should be false")
	}
	if p.BiometricsPurpose != BiometricPurposeNone {
		t.Errorf("BiometricsPurpose = %q, want none", p.BiometricsPurpose)
	}
	if len(p.HighRiskContexts) != 0 {
		t.Errorf("HighRiskContexts should be empty, got %v", p.HighRiskContexts)
	}
}

func TestBuildAutomotiveAssistant(t *testing.T) {
	description := "An AI assistant that helps drivers navigate while driving the vehicle. " +
		"It provides personalized answers about navigation and points of interest."

	p := Build("MBUX Virtual Assistant", "Mercedes-Benz", description, "", nil)

	if p.Sector != "Automotive" {
		t.Errorf("Sector = %q, want Automotive", p.Sector)
	}
	if !p.HasContext("Vehicle operation") {
		t.Errorf("expected Vehicle operation in contexts, got %v", p.HighRiskContexts)
	}
	if p.UserBase != "Vehicle drivers and passengers" {
		t.Errorf("UserBase = %q", p.UserBase)
	}
	if p.DeploymentContext != "In-vehicle system" {
		t.Errorf("DeploymentContext = %q", p.DeploymentContext)
	}
}

func TestBuildAccumulatesContexts(t *testing.T) {
	// Vehicle and medical keywords both present: accumulation keeps both,
	// unlike the classifier's single-category short circuit.
	p := Build("Shuttle", "Acme", "A driver aid for hospital shuttles supporting diagnosis logistics.", "", nil)

	want := []string{"Vehicle operation", "Medical decision"}
	if !reflect.DeepEqual(p.HighRiskContexts, want) {
		t.Errorf("HighRiskContexts = %v, want %v", p.HighRiskContexts, want)
	}
}

func TestBuildBiometricPurposeUnscoped(t *testing.T) {
	// The purpose scan is not tied to the modality that matched: a
	// fingerprint mention plus an unrelated "identify" yields purpose
	// identification.
	p := Build("Gate", "Acme", "Scans fingerprint patterns. Staff identify shipments separately.", "", nil)

	if !p.BiometricsInvolved {
		t.Fatal("expected biometrics involvement")
	}
	if p.BiometricsPurpose != "identification" {
		t.Errorf("BiometricsPurpose = %q, want identification", p.BiometricsPurpose)
	}
}

func TestBuildBiometricWithoutPurpose(t *testing.T) {
	p := Build("Gate", "Acme", "Unlocks the door with a fingerprint.", "", nil)

	if !p.BiometricsInvolved {
		t.Fatal("expected biometrics involvement")
	}
	if p.BiometricsPurpose != BiometricPurposeNone {
		t.Errorf("BiometricsPurpose = %q, want none", p.BiometricsPurpose)
	}
}

func TestBuildUsesSupplementInCorpus(t *testing.T) {
	p := Build("Helper", "Acme", "A generic productivity tool for planning.", " Reviews say it is used by hospital patients.", nil)

	if p.Sector != "Healthcare" {
		t.Errorf("Sector = %q, want Healthcare from supplement", p.Sector)
	}
	if p.AdditionalInfo == "" {
		t.Error("AdditionalInfo should carry the supplement")
	}
}

func TestBuildRecordsSources(t *testing.T) {
	sources := []string{"https://example.com/a", "https://example.com/b"}
	p := Build("X", "Y", "Some system description.", "", sources)

	if !reflect.DeepEqual(p.SearchSources, sources) {
		t.Errorf("SearchSources = %v", p.SearchSources)
	}
}

func TestExtractPurposePrefersNameSentence(t *testing.T) {
	corpus := "Weather today is cloudy. Atlas helps planners schedule city maintenance. Another fact."
	got := ExtractPurpose(corpus, "Atlas")
	if got != "Atlas helps planners schedule city maintenance" {
		t.Errorf("ExtractPurpose = %q", got)
	}
}

func TestExtractPurposeVerbMatch(t *testing.T) {
	corpus := "Bad. The platform provides route forecasts for dispatchers. Tail."
	got := ExtractPurpose(corpus, "NoSuchName")
	if got != "The platform provides route forecasts for dispatchers" {
		t.Errorf("ExtractPurpose = %q", got)
	}
}

func TestExtractPurposeLengthBounds(t *testing.T) {
	// Name sentence too short for the preferred rule; falls back to the
	// first sentence over 30 characters, truncated to 150.
	long := strings.Repeat("x", 180)
	corpus := "Zed is small. " + long + ". end"
	got := ExtractPurpose(corpus, "Zed")
	if len(got) != 150 {
		t.Errorf("expected 150-char truncation, got %d chars", len(got))
	}
	if !strings.HasPrefix(got, "xxx") {
		t.Errorf("unexpected purpose %q", got)
	}
}

func TestExtractPurposeTruncatesOnRuneBoundary(t *testing.T) {
	// The truncation point lands inside a two-byte rune; the cut must back
	// up to the rune start instead of producing invalid UTF-8.
	corpus := "n" + strings.Repeat("ü", 90)
	got := ExtractPurpose(corpus, "nameless")
	if !utf8.ValidString(got) {
		t.Fatalf("purpose is not valid UTF-8: %q", got)
	}
	if len(got) != 149 {
		t.Errorf("len = %d, want 149", len(got))
	}
}

func TestExtractPurposeFallsBackToCorpusPrefix(t *testing.T) {
	corpus := "tiny. bits. here"
	got := ExtractPurpose(corpus, "nameless")
	if got != corpus {
		t.Errorf("ExtractPurpose = %q, want full short corpus", got)
	}
}
