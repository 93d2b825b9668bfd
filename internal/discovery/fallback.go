package discovery

import (
	"strings"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
)

// SyntheticSnippet is the snippet of the hit built when nothing else matches.
const SyntheticSnippet = "Hackathon information"

type fallbackEntry struct {
	key string
	hit analyzer.SearchHit
}

// Keys are matched as unanchored substrings of the lowercased name, in order.
var fallbackTable = []fallbackEntry{
	{"mlh", analyzer.SearchHit{
		Title: "Major League Hacking", Link: "https://mlh.io", Snippet: "Official MLH hackathon platform",
	}},
	{"google cloud", analyzer.SearchHit{
		Title: "Google Cloud Hackathon", Link: "https://cloud.google.com", Snippet: "Google Cloud developer challenges",
	}},
	{"nasa", analyzer.SearchHit{
		Title: "NASA Space Apps", Link: "https://www.spaceappschallenge.org", Snippet: "NASA Space Apps Challenge",
	}},
	{"hackmit", analyzer.SearchHit{
		Title: "HackMIT", Link: "https://hackmit.org", Snippet: "MIT annual hackathon",
	}},
	{"treehacks", analyzer.SearchHit{
		Title: "TreeHacks", Link: "https://www.treehacks.com", Snippet: "Stanford hackathon",
	}},
	{"ethglobal", analyzer.SearchHit{
		Title: "ETHGlobal", Link: "https://ethglobal.com", Snippet: "Ethereum hackathon series",
	}},
}

// Fallback resolves name against the static table, or synthesises a hit.
func Fallback(name string) Outcome {
	lower := strings.ToLower(name)
	for _, entry := range fallbackTable {
		if strings.Contains(lower, entry.key) {
			return Outcome{Source: SourceFallback, Hits: []analyzer.SearchHit{entry.hit}}
		}
	}
	return Outcome{
		Source: SourceSynthetic,
		Hits:   []analyzer.SearchHit{{Title: name, Link: "", Snippet: SyntheticSnippet}},
	}
}
