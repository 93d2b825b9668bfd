// Package classifier derives a domain label and a technology list from free
// text using the lexicon's substring tables. It has no state and performs no
// I/O, so identical input always yields identical output.
package classifier

import (
	"strings"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/lexicon"
)

// MaxTechnologies caps the detected technology list.
const MaxTechnologies = 6

// CombinedText builds the lowercase "<name> <snippets> <page>" string every
// detector runs against.
func CombinedText(name string, hits []analyzer.SearchHit, page string) string {
	snippets := make([]string, 0, len(hits))
	for _, hit := range hits {
		snippets = append(snippets, hit.Snippet)
	}
	return strings.ToLower(name + " " + strings.Join(snippets, " ") + " " + page)
}

// Classify returns the domain and technologies detected in combined.
func Classify(combined string) (analyzer.Domain, []analyzer.Technology) {
	return DetectDomain(combined), DetectTechnologies(combined)
}

// DetectDomain returns the first domain whose keywords occur in text.
func DetectDomain(text string) analyzer.Domain {
	for _, rule := range lexicon.DomainRules() {
		if containsAny(text, rule.Keywords) {
			return rule.Domain
		}
	}
	return analyzer.DomainGeneral
}

// DetectTechnologies scans the technology table in order and keeps at most
// MaxTechnologies matches. An empty result is replaced by the default set.
func DetectTechnologies(text string) []analyzer.Technology {
	detected := make([]analyzer.Technology, 0, MaxTechnologies)
	for _, rule := range lexicon.TechnologyRules() {
		if len(detected) == MaxTechnologies {
			break
		}
		if containsAny(text, rule.Keywords) {
			detected = append(detected, rule.Technology)
		}
	}
	if len(detected) == 0 {
		return lexicon.DefaultTechnologies()
	}
	return detected
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
