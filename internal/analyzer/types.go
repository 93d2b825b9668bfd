package analyzer

import (
	"net/http"
	"time"
)

// AnalyzedAtLayout formats Report.AnalyzedAt.
const AnalyzedAtLayout = "2006-01-02 15:04:05"

// SearchHit is one candidate source page returned by discovery.
type SearchHit struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Domain is the coarse topical classification of a hackathon.
type Domain string

// Supported domain labels. DomainGeneral is used when nothing matches.
const (
	DomainAIML           Domain = "AI/ML"
	DomainBlockchain     Domain = "Blockchain"
	DomainCloud          Domain = "Cloud"
	DomainMobile         Domain = "Mobile"
	DomainWebDevelopment Domain = "Web Development"
	DomainIoT            Domain = "IoT"
	DomainSpaceTech      Domain = "Space Tech"
	DomainSocialImpact   Domain = "Social Impact"
	DomainGeneral        Domain = "General Technology"
)

// Difficulty is the learning-curve tier attached to a technology.
type Difficulty string

// Difficulty tiers.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Technology is a tool detected in the combined text.
type Technology struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
}

// Timeline holds the deadline placeholders and the estimated event stage.
type Timeline struct {
	RegistrationDeadline string `json:"registration_deadline"`
	SubmissionDeadline   string `json:"submission_deadline"`
	CurrentStage         string `json:"current_stage"`
}

// ReferenceProject points participants at example code.
type ReferenceProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GitHubURL   string `json:"github_url"`
	Relevance   string `json:"relevance"`
}

// ToolGuide is the quick-start entry generated for one technology.
type ToolGuide struct {
	ToolName         string   `json:"tool_name"`
	QuickStart       string   `json:"quick_start"`
	KeyResources     []string `json:"key_resources"`
	HackathonContext string   `json:"hackathon_context"`
}

// Report is the briefing returned for a single hackathon name.
// SourceURL is nil only when discovery produced no hits.
type Report struct {
	HackathonName     string             `json:"hackathon_name"`
	SourceURL         *string            `json:"source_url"`
	AnalyzedAt        string             `json:"analyzed_at"`
	Summary           string             `json:"summary"`
	Technologies      []Technology       `json:"technologies"`
	Timeline          Timeline           `json:"timeline"`
	Requirements      []string           `json:"requirements"`
	ReferenceProjects []ReferenceProject `json:"reference_projects"`
	ToolGuides        []ToolGuide        `json:"tool_guides"`
	Tips              []string           `json:"tips"`
}

// FetchRequest captures everything needed to fetch a URL.
type FetchRequest struct {
	URL     string
	Headers http.Header
}

// FetchResponse is the result returned by a Fetcher implementation.
type FetchResponse struct {
	URL          string
	StatusCode   int
	Headers      http.Header
	Body         []byte
	Duration     time.Duration
	UsedHeadless bool
}

// Success reports whether the response carries a 2xx status.
func (r FetchResponse) Success() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
