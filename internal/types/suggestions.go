package types

// Difficulty levels for suggested projects.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Project is a single suggested project. Skills is the subset of the
// candidate's skills relevant to the project; ResearchAreas is present only
// for research-flavored suggestions.
type Project struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Difficulty    string   `json:"difficulty"`
	Duration      string   `json:"duration"`
	Skills        []string `json:"skills"`
	ResearchAreas []string `json:"researchAreas,omitempty"`
}

// Category groups suggested projects under a named heading.
type Category struct {
	Category string    `json:"category"`
	Projects []Project `json:"projects"`
}

// SuggestionCatalog is the ordered list of suggestion categories produced
// for one (résumé, scholar) pair.
type SuggestionCatalog []Category
