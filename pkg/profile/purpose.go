package profile

import (
	"strings"
	"unicode/utf8"
)

// Verbs that mark a sentence as describing what the system does.
var purposeVerbs = []string{"uses", "enables", "provides", "helps"}

const (
	purposeMinLen      = 20
	purposeMaxLen      = 200
	fallbackMinLen     = 30
	purposeTruncateLen = 150
)

// ExtractPurpose pulls a short purpose statement out of the corpus. It
// prefers the first sentence that mentions the system name or uses one of a
// small set of descriptive verbs and whose trimmed length is between 20 and
// 200 characters exclusive. Failing that, the first sentence longer than 30
// characters is truncated to 150; failing that, the first 150 characters of
// the corpus stand in.
func ExtractPurpose(corpus, name string) string {
	sentences := strings.Split(corpus, ".")
	loweredName := strings.ToLower(name)

	for _, sentence := range sentences {
		lowered := strings.ToLower(sentence)
		if !strings.Contains(lowered, loweredName) && !containsAnyVerb(lowered) {
			continue
		}
		cleaned := strings.TrimSpace(sentence)
		if len(cleaned) > purposeMinLen && len(cleaned) < purposeMaxLen {
			return cleaned
		}
	}

	for _, sentence := range sentences {
		cleaned := strings.TrimSpace(sentence)
		if len(cleaned) > fallbackMinLen {
			return truncate(cleaned, purposeTruncateLen)
		}
	}

	return truncate(corpus, purposeTruncateLen)
}

func containsAnyVerb(lowered string) bool {
	for _, verb := range purposeVerbs {
		if strings.Contains(lowered, verb) {
			return true
		}
	}
	return false
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
