// Package detector decides when a plain fetch should be re-rendered in a
// headless browser.
package detector

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/extract"
)

// DefaultThreshold is the body size below which script-heavy pages are
// treated as client-rendered shells.
const DefaultThreshold = 2048

// Heuristic flags single-page-app shells and near-empty documents.
type Heuristic struct {
	BodyLengthThreshold int
}

// NewHeuristic creates a detector; a non-positive threshold uses the default.
func NewHeuristic(threshold int) *Heuristic {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Heuristic{BodyLengthThreshold: threshold}
}

var spaMarkers = [][]byte{
	[]byte(`id="__next"`),
	[]byte(`id="__nuxt"`),
	[]byte(`id="root"`),
	[]byte(`id="app"`),
	[]byte("data-reactroot"),
	[]byte("ng-version"),
}

// minVisibleWords is the amount of visible text that makes a page worth
// keeping even when it carries SPA markers.
const minVisibleWords = 40

// ShouldPromote reports whether resp looks like it needs JavaScript to show
// its content. Only 200 responses are considered.
func (h *Heuristic) ShouldPromote(resp analyzer.FetchResponse) bool {
	if resp.StatusCode != http.StatusOK || resp.UsedHeadless {
		return false
	}
	body := resp.Body
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}
	if len(body) < h.BodyLengthThreshold && scriptDensityHigh(body) {
		return true
	}
	for _, marker := range spaMarkers {
		if bytes.Contains(body, marker) {
			return visibleWords(body) < minVisibleWords
		}
	}
	return false
}

func visibleWords(body []byte) int {
	text, err := extract.StripText(bytes.NewReader(body))
	if err != nil {
		return 0
	}
	return len(strings.Fields(text))
}

// scriptDensityHigh reports whether script elements cover at least a
// quarter of the document.
func scriptDensityHigh(body []byte) bool {
	lower := strings.ToLower(string(body))
	total := len(lower)
	if total == 0 {
		return false
	}

	const (
		openTag  = "<script"
		closeTag = "</script>"
	)
	covered := 0
	pos := 0
	for {
		idx := strings.Index(lower[pos:], openTag)
		if idx == -1 {
			break
		}
		start := pos + idx
		end := total
		if tagEnd := strings.IndexByte(lower[start:], '>'); tagEnd != -1 {
			contentStart := start + tagEnd + 1
			if closeIdx := strings.Index(lower[contentStart:], closeTag); closeIdx != -1 {
				end = contentStart + closeIdx + len(closeTag)
			}
		}
		covered += end - start
		pos = end
	}
	return covered*100/total >= 25
}
