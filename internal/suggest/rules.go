// Package suggest generates categorized project suggestions from a résumé
// record and a scholar record. The matching policy is data, not code: each
// generator walks a fixed table of {predicate, template} rules in
// declaration order, so every rule can be tested on its own and identical
// inputs always produce an identical catalog.
package suggest

import "github.com/jonathan/project-advisor/internal/types"

// Category headings, in emission order.
const (
	CategoryTechnical         = "Technical Skills Projects"
	CategoryResearch          = "Research Projects"
	CategoryInterdisciplinary = "Interdisciplinary Projects"
	CategoryCareer            = "Career Development"
)

// Per-category caps on emitted projects. Career has no cap.
const (
	maxTechnicalProjects         = 4
	maxResearchProjects          = 3
	maxInterdisciplinaryProjects = 2
)

// projectTemplate is a fixed project definition. skillFilter is applied to
// the candidate's skill list by exact, case-sensitive membership. The
// entries are display-cased while the extractor emits lowercase vocabulary
// terms, so the filter rarely keeps anything. That mismatch is inherited
// behavior, kept until the owners confirm intended semantics.
type projectTemplate struct {
	title       string
	description string
	difficulty  string
	duration    string
	skillFilter []string
	// areaFilter selects researchAreas from the interest list by
	// lowercase substring; nil means the template carries no
	// researchAreas field.
	areaFilter []string
}

// skillRule fires when any trigger equals one of the candidate's skills,
// compared lowercase.
type skillRule struct {
	triggers  []string
	templates []projectTemplate
}

// interestRule fires when any trigger occurs as a substring of one of the
// candidate's research interests, compared lowercase.
type interestRule struct {
	triggers  []string
	templates []projectTemplate
}

// comboRule fires only on the conjunction of a skill match and an interest
// match.
type comboRule struct {
	skillTriggers    []string
	interestTriggers []string
	template         projectTemplate
}

// technicalRules group the skill vocabulary into web, data-science, mobile
// and cloud/devops interest areas.
var technicalRules = []skillRule{
	{
		triggers: []string{"javascript", "react", "node.js", "html", "css"},
		templates: []projectTemplate{
			{
				title:       "Full-Stack Portfolio Website",
				description: "Build a responsive portfolio website showcasing your projects and skills with modern web technologies.",
				difficulty:  types.DifficultyIntermediate,
				duration:    "2-3 weeks",
				skillFilter: []string{"JavaScript", "React", "Node.js", "HTML", "CSS"},
			},
			{
				title:       "Real-time Chat Application",
				description: "Create a real-time messaging app with user authentication, rooms, and message history.",
				difficulty:  types.DifficultyAdvanced,
				duration:    "3-4 weeks",
				skillFilter: []string{"JavaScript", "React", "Node.js", "Socket.io"},
			},
		},
	},
	{
		triggers: []string{"python", "machine learning", "data analysis", "tensorflow", "pytorch"},
		templates: []projectTemplate{
			{
				title:       "Predictive Analytics Dashboard",
				description: "Build a dashboard that analyzes trends and makes predictions from real-world datasets.",
				difficulty:  types.DifficultyIntermediate,
				duration:    "2-3 weeks",
				skillFilter: []string{"Python", "Machine Learning", "Data Analysis"},
			},
			{
				title:       "Computer Vision Image Classifier",
				description: "Develop an image classification system using deep learning for a specific domain.",
				difficulty:  types.DifficultyAdvanced,
				duration:    "3-4 weeks",
				skillFilter: []string{"Python", "TensorFlow", "PyTorch", "Machine Learning"},
			},
		},
	},
	{
		triggers: []string{"react native", "flutter", "swift", "kotlin"},
		templates: []projectTemplate{
			{
				title:       "Cross-Platform Mobile App",
				description: "Create a mobile application that solves a real-world problem with native features.",
				difficulty:  types.DifficultyIntermediate,
				duration:    "3-4 weeks",
				skillFilter: []string{"React Native", "Flutter", "Swift", "Kotlin"},
			},
		},
	},
	{
		triggers: []string{"docker", "kubernetes", "aws", "azure"},
		templates: []projectTemplate{
			{
				title:       "Microservices Architecture",
				description: "Design and implement a scalable microservices system with containerization and orchestration.",
				difficulty:  types.DifficultyAdvanced,
				duration:    "4-5 weeks",
				skillFilter: []string{"Docker", "Kubernetes", "AWS", "Azure"},
			},
		},
	},
}

// researchRules group research interests into AI/ML, computer vision, NLP
// and data/analytics areas. Note the AI/ML trigger list includes "deep
// learning" while its areaFilters do not; inherited behavior.
var researchRules = []interestRule{
	{
		triggers: []string{"machine learning", "artificial intelligence", "deep learning"},
		templates: []projectTemplate{
			{
				title:       "Novel ML Algorithm Implementation",
				description: "Implement and evaluate a cutting-edge machine learning algorithm from recent research papers.",
				difficulty:  types.DifficultyAdvanced,
				duration:    "4-6 weeks",
				skillFilter: []string{"Python", "TensorFlow", "PyTorch", "Machine Learning"},
				areaFilter:  []string{"machine learning", "artificial intelligence"},
			},
			{
				title:       "Comparative Study of AI Models",
				description: "Conduct a comprehensive comparison of different AI models for a specific application domain.",
				difficulty:  types.DifficultyIntermediate,
				duration:    "3-4 weeks",
				skillFilter: []string{"Python", "Data Analysis", "Machine Learning"},
				areaFilter:  []string{"artificial intelligence"},
			},
		},
	},
	{
		triggers: []string{"computer vision", "image processing"},
		templates: []projectTemplate{
			{
				title:       "Advanced Computer Vision Pipeline",
				description: "Develop a complete computer vision system for object detection and tracking in real-time.",
				difficulty:  types.DifficultyAdvanced,
				duration:    "5-6 weeks",
				skillFilter: []string{"Python", "OpenCV", "TensorFlow", "PyTorch"},
				areaFilter:  []string{"computer vision"},
			},
		},
	},
	{
		triggers: []string{"natural language", "nlp", "text"},
		templates: []projectTemplate{
			{
				title:       "Advanced NLP Research Tool",
				description: "Build a sophisticated natural language processing tool for text analysis and generation.",
				difficulty:  types.DifficultyAdvanced,
				duration:    "4-5 weeks",
				skillFilter: []string{"Python", "NLTK", "spaCy", "Transformers"},
				areaFilter:  []string{"natural language", "nlp"},
			},
		},
	},
	{
		triggers: []string{"data", "analytics", "statistics"},
		templates: []projectTemplate{
			{
				title:       "Large-Scale Data Analysis Study",
				description: "Conduct a comprehensive analysis of large datasets to uncover insights and patterns.",
				difficulty:  types.DifficultyIntermediate,
				duration:    "3-4 weeks",
				skillFilter: []string{"Python", "R", "SQL", "Data Analysis"},
				areaFilter:  []string{"data"},
			},
		},
	},
}

// interdisciplinaryRules each require both a technical and a research
// signal.
var interdisciplinaryRules = []comboRule{
	{
		skillTriggers:    []string{"javascript", "react", "python"},
		interestTriggers: []string{"data", "research"},
		template: projectTemplate{
			title:       "Research Data Visualization Platform",
			description: "Create an interactive web platform for visualizing and exploring research datasets.",
			difficulty:  types.DifficultyIntermediate,
			duration:    "3-4 weeks",
			skillFilter: []string{"JavaScript", "React", "Python", "D3.js"},
			areaFilter:  []string{"data"},
		},
	},
	{
		skillTriggers:    []string{"machine learning", "python"},
		interestTriggers: []string{"biology", "medicine", "health"},
		template: projectTemplate{
			title:       "AI-Powered Healthcare Solution",
			description: "Develop a machine learning system for healthcare applications like diagnosis or treatment prediction.",
			difficulty:  types.DifficultyAdvanced,
			duration:    "5-6 weeks",
			skillFilter: []string{"Python", "Machine Learning", "TensorFlow"},
			areaFilter:  []string{"biology", "medicine"},
		},
	},
	{
		skillTriggers:    []string{"javascript", "react", "node.js"},
		interestTriggers: []string{"education", "learning"},
		template: projectTemplate{
			title:       "Educational Technology Platform",
			description: "Build an interactive learning platform that incorporates your research insights into education.",
			difficulty:  types.DifficultyIntermediate,
			duration:    "4-5 weeks",
			skillFilter: []string{"JavaScript", "React", "Node.js"},
			areaFilter:  []string{"education"},
		},
	},
}
