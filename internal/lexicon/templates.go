package lexicon

import "github.com/JakeFAU/hackathon-analyzer/internal/analyzer"

// Placeholders substituted by the synthesizer.
const (
	NamePlaceholder = "{name}"
	ToolPlaceholder = "{tool}"
	SlugPlaceholder = "{slug}"
)

var summaries = map[analyzer.Domain]string{
	analyzer.DomainAIML: "{name} is a cutting-edge hackathon focused on artificial intelligence and machine learning " +
		"innovations. Participants will build intelligent applications using modern ML frameworks and data science " +
		"tools. This event challenges developers to create AI-powered solutions that solve real-world problems.",
	analyzer.DomainBlockchain: "{name} brings together blockchain enthusiasts to build decentralized applications and " +
		"Web3 solutions. Teams will explore smart contracts, DeFi protocols, and innovative crypto applications. " +
		"This hackathon focuses on building the future of decentralized technology.",
	analyzer.DomainCloud: "{name} challenges participants to build cloud-native applications using modern cloud " +
		"platforms. Developers will leverage serverless architectures, containerization, and cloud services to " +
		"create scalable solutions. This event focuses on infrastructure innovation and cloud-first development.",
	analyzer.DomainSpaceTech: "{name} invites innovators to solve challenges in space technology and exploration. " +
		"Teams will work with real NASA data and space-related APIs to build applications that advance our " +
		"understanding of the universe. This hackathon combines technology with the wonder of space.",
	analyzer.DomainSocialImpact: "{name} focuses on using technology to create positive social change. Participants " +
		"will build solutions addressing education, healthcare, sustainability, and community challenges. This " +
		"event empowers developers to make a meaningful impact through innovation.",
}

const genericSummary = "{name} is an exciting hackathon bringing together innovative developers to build creative " +
	"technology solutions. Participants will collaborate in teams to create impactful projects within a limited " +
	"timeframe. This event celebrates creativity, technical skill, and problem-solving."

// SummaryTemplate returns the narrative template for domain, or the generic one.
func SummaryTemplate(domain analyzer.Domain) string {
	if tmpl, ok := summaries[domain]; ok {
		return tmpl
	}
	return genericSummary
}

// Timeline defaults.
const (
	DefaultDeadline = "Check official website"
	DefaultStage    = "Registration Open"
)

// StageRule assigns Stage when any keyword occurs in the combined text.
type StageRule struct {
	Stage    string
	Keywords []string
}

var stageRules = []StageRule{
	{"Event Concluded", []string{"ended", "concluded", "finished", "past"}},
	{"Upcoming - Registration Opens Soon", []string{"upcoming", "soon", "announced"}},
	{"Hacking in Progress", []string{"submission", "building", "hacking"}},
}

// StageRules returns the stage table in priority order. Callers must not modify it.
func StageRules() []StageRule {
	return stageRules
}

// MaxRequirements caps the requirement checklist.
const MaxRequirements = 5

var universalRequirements = []string{
	"Form a team of 2-4 members (or participate solo if allowed)",
	"Have a GitHub account for code sharing and version control",
	"Bring your laptop with development environment set up",
}

var domainRequirements = map[analyzer.Domain][]string{
	analyzer.DomainAIML: {
		"Basic knowledge of Python and machine learning concepts",
		"Familiarity with ML frameworks like TensorFlow or PyTorch",
	},
	analyzer.DomainBlockchain: {
		"Understanding of blockchain fundamentals and smart contracts",
		"Wallet setup for testing (MetaMask recommended)",
	},
	analyzer.DomainCloud: {
		"Basic cloud platform knowledge (AWS/Azure/GCP)",
		"Understanding of containerization concepts",
	},
	analyzer.DomainMobile: {
		"Mobile development experience (iOS or Android)",
		"Device/emulator for testing",
	},
	analyzer.DomainWebDevelopment: {
		"Knowledge of HTML, CSS, and JavaScript",
		"Familiarity with modern frameworks",
	},
}

var genericRequirements = []string{"Enthusiasm to learn and build something amazing!"}

// UniversalRequirements returns the requirements every report starts with.
func UniversalRequirements() []string {
	return universalRequirements
}

// DomainRequirements returns the domain-specific requirements, or the generic line.
func DomainRequirements(domain analyzer.Domain) []string {
	if reqs, ok := domainRequirements[domain]; ok {
		return reqs
	}
	return genericRequirements
}

// FallbackTechnologyName is used for the technology-specific reference project
// when no technology is available.
const FallbackTechnologyName = "JavaScript"

var curatedProjects = []analyzer.ReferenceProject{
	{
		Title:       "Awesome Hackathon Projects",
		Description: "Curated list of impressive hackathon projects with source code and demos",
		GitHubURL:   "https://github.com/topics/hackathon",
		Relevance:   "Browse winning projects from previous hackathons for inspiration and implementation ideas",
	},
	{
		Title:       "Quick Starter Templates",
		Description: "Ready-to-use templates for rapid hackathon development",
		GitHubURL:   "https://github.com/topics/hackathon-starter",
		Relevance:   "Bootstrap your project quickly with pre-configured starter templates",
	},
}

// TechnologyProjectTemplate is rendered with the top technology name and its topic slug.
var TechnologyProjectTemplate = analyzer.ReferenceProject{
	Title:       "{tool} Example Projects",
	Description: "Real-world projects showcasing {tool} best practices",
	GitHubURL:   "https://github.com/topics/{slug}",
	Relevance:   "Learn from production-quality code examples and patterns",
}

// CuratedProjects returns a fresh copy of the domain-agnostic reference projects.
func CuratedProjects() []analyzer.ReferenceProject {
	out := make([]analyzer.ReferenceProject, len(curatedProjects))
	copy(out, curatedProjects)
	return out
}

// MaxToolGuides caps the number of technologies that get a guide.
const MaxToolGuides = 3

// Tool guide templates.
const (
	QuickStartTemplate = "Get started with {tool} by installing the required dependencies and following the " +
		"official quick-start guide. Set up your development environment and create a simple 'Hello World' " +
		"project to verify everything works."
	HackathonContextTemplate = "For the hackathon, focus on using {tool} to build your core features quickly. " +
		"Prioritize functionality over perfection, and leverage existing libraries and frameworks to save time."
)

var resourceTemplates = []string{
	"Official {tool} Documentation",
	"{tool} Tutorial for Beginners",
	"Community forums and Stack Overflow for troubleshooting",
}

// ResourceTemplates returns the key-resource labels in display order.
func ResourceTemplates() []string {
	return resourceTemplates
}

// Tip limits: the first UniversalTipCount universal tips are always used and
// the whole list is capped at MaxTips.
const (
	UniversalTipCount = 5
	MaxTips           = 7
)

var universalTips = []string{
	"Start with the simplest viable product (MVP) - you can always add features later",
	"Spend the first hour planning your architecture and dividing tasks among team members",
	"Use version control (Git) from the start to avoid conflicts and enable collaboration",
	"Test your demo thoroughly before presentation time - practice makes perfect",
	"Focus on solving one problem really well rather than many problems poorly",
	"Keep your presentation simple and focused on the problem, solution, and impact",
	"Don't forget to document your code - future you (and judges) will appreciate it",
}

var domainTips = map[analyzer.Domain][]string{
	analyzer.DomainAIML: {
		"Use pre-trained models to save time - don't train from scratch unless necessary",
		"Have a simple demo dataset ready to showcase your model's capabilities",
	},
	analyzer.DomainBlockchain: {
		"Start with testnets to avoid real money transactions during development",
		"Use established patterns and audited contracts as starting points",
	},
	analyzer.DomainCloud: {
		"Leverage free tier credits from cloud providers for the hackathon",
		"Use Infrastructure-as-Code to make deployment repeatable",
	},
}

// UniversalTips returns all seven universal tips.
func UniversalTips() []string {
	return universalTips
}

// DomainTips returns the tips for domain; nil when the domain has none.
func DomainTips(domain analyzer.Domain) []string {
	return domainTips[domain]
}
