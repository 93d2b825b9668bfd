package lexicon

import "github.com/JakeFAU/hackathon-analyzer/internal/analyzer"

// TechnologyRule maps a technology entry to the substrings that detect it.
type TechnologyRule struct {
	Technology analyzer.Technology
	Keywords   []string
}

var technologyRules = []TechnologyRule{
	{
		analyzer.Technology{
			Name:        "React",
			Description: "Popular JavaScript library for building user interfaces with component-based architecture",
			Difficulty:  analyzer.DifficultyIntermediate,
		},
		[]string{"react", "reactjs"},
	},
	{
		analyzer.Technology{
			Name:        "Node.js",
			Description: "JavaScript runtime for building scalable server-side applications",
			Difficulty:  analyzer.DifficultyIntermediate,
		},
		[]string{"node", "nodejs", "express"},
	},
	{
		analyzer.Technology{
			Name:        "Python",
			Description: "Versatile programming language perfect for rapid prototyping and data processing",
			Difficulty:  analyzer.DifficultyBeginner,
		},
		[]string{"python", "django", "flask"},
	},
	{
		analyzer.Technology{
			Name:        "TensorFlow",
			Description: "Machine learning framework for building and training neural networks",
			Difficulty:  analyzer.DifficultyAdvanced,
		},
		[]string{"tensorflow", "tf"},
	},
	{
		analyzer.Technology{
			Name:        "Docker",
			Description: "Containerization platform for consistent deployment across environments",
			Difficulty:  analyzer.DifficultyIntermediate,
		},
		[]string{"docker", "container"},
	},
	{
		analyzer.Technology{
			Name:        "MongoDB",
			Description: "NoSQL database perfect for flexible, scalable data storage",
			Difficulty:  analyzer.DifficultyBeginner,
		},
		[]string{"mongodb", "mongo"},
	},
	{
		analyzer.Technology{
			Name:        "PostgreSQL",
			Description: "Powerful relational database with advanced features",
			Difficulty:  analyzer.DifficultyIntermediate,
		},
		[]string{"postgres", "postgresql", "sql"},
	},
	{
		analyzer.Technology{
			Name:        "AWS",
			Description: "Cloud platform offering compute, storage, and ML services",
			Difficulty:  analyzer.DifficultyIntermediate,
		},
		[]string{"aws", "amazon web"},
	},
	{
		analyzer.Technology{
			Name:        "Firebase",
			Description: "Backend-as-a-service platform for quick app development",
			Difficulty:  analyzer.DifficultyBeginner,
		},
		[]string{"firebase"},
	},
	{
		analyzer.Technology{
			Name:        "Git",
			Description: "Version control system essential for team collaboration",
			Difficulty:  analyzer.DifficultyBeginner,
		},
		[]string{"git", "github"},
	},
}

var defaultTechnologies = []analyzer.Technology{
	{
		Name:        "JavaScript",
		Description: "Essential programming language for web development",
		Difficulty:  analyzer.DifficultyBeginner,
	},
	{
		Name:        "HTML/CSS",
		Description: "Foundational technologies for creating web interfaces",
		Difficulty:  analyzer.DifficultyBeginner,
	},
	{
		Name:        "Git",
		Description: "Version control for team collaboration",
		Difficulty:  analyzer.DifficultyBeginner,
	},
}

// TechnologyRules returns the technology table in scan order. Callers must not modify it.
func TechnologyRules() []TechnologyRule {
	return technologyRules
}

// DefaultTechnologies returns a fresh copy of the set used when nothing is detected.
func DefaultTechnologies() []analyzer.Technology {
	out := make([]analyzer.Technology, len(defaultTechnologies))
	copy(out, defaultTechnologies)
	return out
}
