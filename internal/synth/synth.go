// Package synth renders the narrative parts of a report from the lexicon's
// templates. Every function is pure.
package synth

import (
	"strings"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/lexicon"
)

// Fields holds every report field the synthesizer owns.
type Fields struct {
	Summary           string
	Timeline          analyzer.Timeline
	Requirements      []string
	ReferenceProjects []analyzer.ReferenceProject
	ToolGuides        []analyzer.ToolGuide
	Tips              []string
}

// Synthesize produces the report fields for one analysis.
func Synthesize(name string, domain analyzer.Domain, techs []analyzer.Technology, combined string) Fields {
	return Fields{
		Summary:           Summary(name, domain),
		Timeline:          EstimateTimeline(combined),
		Requirements:      Requirements(domain),
		ReferenceProjects: ReferenceProjects(techs),
		ToolGuides:        ToolGuides(techs),
		Tips:              Tips(domain),
	}
}

// Summary renders the domain narrative for name.
func Summary(name string, domain analyzer.Domain) string {
	return strings.ReplaceAll(lexicon.SummaryTemplate(domain), lexicon.NamePlaceholder, name)
}

// EstimateTimeline fills the deadline placeholders and applies the first
// matching stage rule.
func EstimateTimeline(combined string) analyzer.Timeline {
	timeline := analyzer.Timeline{
		RegistrationDeadline: lexicon.DefaultDeadline,
		SubmissionDeadline:   lexicon.DefaultDeadline,
		CurrentStage:         lexicon.DefaultStage,
	}
	for _, rule := range lexicon.StageRules() {
		if containsAny(combined, rule.Keywords) {
			timeline.CurrentStage = rule.Stage
			break
		}
	}
	return timeline
}

// Requirements lists the universal requirements followed by the domain ones.
func Requirements(domain analyzer.Domain) []string {
	return concatCapped(lexicon.UniversalRequirements(), lexicon.DomainRequirements(domain), lexicon.MaxRequirements)
}

// Tips lists the leading universal tips followed by the domain ones.
func Tips(domain analyzer.Domain) []string {
	universal := lexicon.UniversalTips()[:lexicon.UniversalTipCount]
	return concatCapped(universal, lexicon.DomainTips(domain), lexicon.MaxTips)
}

// ReferenceProjects returns the two curated projects and one derived from the
// top technology.
func ReferenceProjects(techs []analyzer.Technology) []analyzer.ReferenceProject {
	tool := lexicon.FallbackTechnologyName
	if len(techs) > 0 {
		tool = techs[0].Name
	}
	r := strings.NewReplacer(
		lexicon.ToolPlaceholder, tool,
		lexicon.SlugPlaceholder, topicSlug(tool),
	)
	tmpl := lexicon.TechnologyProjectTemplate
	projects := lexicon.CuratedProjects()
	return append(projects, analyzer.ReferenceProject{
		Title:       r.Replace(tmpl.Title),
		Description: r.Replace(tmpl.Description),
		GitHubURL:   r.Replace(tmpl.GitHubURL),
		Relevance:   r.Replace(tmpl.Relevance),
	})
}

// ToolGuides renders a guide for each of the first three technologies.
func ToolGuides(techs []analyzer.Technology) []analyzer.ToolGuide {
	if len(techs) > lexicon.MaxToolGuides {
		techs = techs[:lexicon.MaxToolGuides]
	}
	guides := make([]analyzer.ToolGuide, 0, len(techs))
	for _, tech := range techs {
		r := strings.NewReplacer(lexicon.ToolPlaceholder, tech.Name)
		resources := make([]string, 0, len(lexicon.ResourceTemplates()))
		for _, tmpl := range lexicon.ResourceTemplates() {
			resources = append(resources, r.Replace(tmpl))
		}
		guides = append(guides, analyzer.ToolGuide{
			ToolName:         tech.Name,
			QuickStart:       r.Replace(lexicon.QuickStartTemplate),
			KeyResources:     resources,
			HackathonContext: r.Replace(lexicon.HackathonContextTemplate),
		})
	}
	return guides
}

func topicSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// concatCapped appends tail to head in a new slice and truncates to limit.
func concatCapped(head, tail []string, limit int) []string {
	out := make([]string, 0, len(head)+len(tail))
	out = append(out, head...)
	out = append(out, tail...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
