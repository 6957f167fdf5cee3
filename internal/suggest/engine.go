package suggest

import (
	"strings"

	"github.com/jonathan/project-advisor/internal/types"
)

// Generate builds the suggestion catalog for one (résumé, scholar) pair.
// It is pure and deterministic: no randomness, no external calls, and the
// category order is fixed (Technical, Research, Interdisciplinary, Career).
// Categories that yield no projects are omitted, except Career, which
// always emits at least the portfolio template.
func Generate(resume types.ResumeRecord, scholar types.ScholarRecord) types.SuggestionCatalog {
	catalog := types.SuggestionCatalog{}

	if len(resume.Skills) > 0 {
		if projects := technicalProjects(resume.Skills); len(projects) > 0 {
			catalog = append(catalog, types.Category{Category: CategoryTechnical, Projects: projects})
		}
	}

	if len(scholar.ResearchInterests) > 0 {
		if projects := researchProjects(scholar.ResearchInterests, resume.Skills); len(projects) > 0 {
			catalog = append(catalog, types.Category{Category: CategoryResearch, Projects: projects})
		}
	}

	if projects := interdisciplinaryProjects(resume.Skills, scholar.ResearchInterests); len(projects) > 0 {
		catalog = append(catalog, types.Category{Category: CategoryInterdisciplinary, Projects: projects})
	}

	catalog = append(catalog, types.Category{Category: CategoryCareer, Projects: careerProjects(resume, scholar)})

	return catalog
}

// technicalProjects walks the technical rule table in order and collects
// templates from every matching skill group, capped at four projects.
func technicalProjects(skills []string) []types.Project {
	projects := []types.Project{}
	for _, rule := range technicalRules {
		if !anySkillMatches(skills, rule.triggers) {
			continue
		}
		for _, tmpl := range rule.templates {
			projects = append(projects, tmpl.materialize(skills, nil))
		}
	}
	return capProjects(projects, maxTechnicalProjects)
}

// researchProjects walks the research rule table against the interest list,
// capped at three projects.
func researchProjects(interests, skills []string) []types.Project {
	projects := []types.Project{}
	for _, rule := range researchRules {
		if !anyInterestMatches(interests, rule.triggers) {
			continue
		}
		for _, tmpl := range rule.templates {
			projects = append(projects, tmpl.materialize(skills, interests))
		}
	}
	return capProjects(projects, maxResearchProjects)
}

// interdisciplinaryProjects requires each rule's skill and interest
// predicates to both hold, capped at two projects.
func interdisciplinaryProjects(skills, interests []string) []types.Project {
	projects := []types.Project{}
	for _, rule := range interdisciplinaryRules {
		if !anySkillMatches(skills, rule.skillTriggers) {
			continue
		}
		if !anyInterestMatches(interests, rule.interestTriggers) {
			continue
		}
		projects = append(projects, rule.template.materialize(skills, interests))
	}
	return capProjects(projects, maxInterdisciplinaryProjects)
}

// careerProjects always emits the portfolio template, then conditionally
// the open-source and publication-tool templates. No cap.
func careerProjects(resume types.ResumeRecord, scholar types.ScholarRecord) []types.Project {
	projects := []types.Project{
		{
			Title:         "Professional Portfolio Enhancement",
			Description:   "Create a comprehensive digital portfolio showcasing your technical skills and research work.",
			Difficulty:    types.DifficultyBeginner,
			Duration:      "1-2 weeks",
			Skills:        []string{"HTML", "CSS", "JavaScript"},
			ResearchAreas: []string{},
		},
	}

	if len(resume.Skills) > 0 {
		projects = append(projects, types.Project{
			Title:         "Open Source Contribution Project",
			Description:   "Contribute to open source projects related to your skills and research interests.",
			Difficulty:    types.DifficultyIntermediate,
			Duration:      "2-3 weeks",
			Skills:        firstN(resume.Skills, 3),
			ResearchAreas: firstN(scholar.ResearchInterests, 2),
		})
	}

	if len(scholar.Publications) > 0 {
		projects = append(projects, types.Project{
			Title:         "Research Publication Management Tool",
			Description:   "Build a tool to help researchers manage, organize, and analyze their publications and citations.",
			Difficulty:    types.DifficultyIntermediate,
			Duration:      "3-4 weeks",
			Skills:        []string{"JavaScript", "React", "Node.js", "Database"},
			ResearchAreas: []string{"Academic Research", "Data Management"},
		})
	}

	return projects
}

// materialize turns a template into a Project, filtering the candidate's
// skills and interests down to the template's lists.
func (t projectTemplate) materialize(skills, interests []string) types.Project {
	project := types.Project{
		Title:       t.title,
		Description: t.description,
		Difficulty:  t.difficulty,
		Duration:    t.duration,
		Skills:      filterSkills(skills, t.skillFilter),
	}
	if t.areaFilter != nil {
		project.ResearchAreas = filterInterests(interests, t.areaFilter)
	}
	return project
}

// anySkillMatches reports whether any skill, lowercased, equals one of the
// trigger terms.
func anySkillMatches(skills, triggers []string) bool {
	for _, skill := range skills {
		lowered := strings.ToLower(skill)
		for _, trigger := range triggers {
			if lowered == trigger {
				return true
			}
		}
	}
	return false
}

// anyInterestMatches reports whether any interest, lowercased, contains one
// of the trigger substrings.
func anyInterestMatches(interests, triggers []string) bool {
	for _, interest := range interests {
		lowered := strings.ToLower(interest)
		for _, trigger := range triggers {
			if strings.Contains(lowered, trigger) {
				return true
			}
		}
	}
	return false
}

// filterSkills keeps skills appearing verbatim in the allow-list. The
// comparison is exact and case-sensitive, matching the template lists'
// display casing.
func filterSkills(skills, allowList []string) []string {
	kept := []string{}
	for _, skill := range skills {
		for _, allowed := range allowList {
			if skill == allowed {
				kept = append(kept, skill)
				break
			}
		}
	}
	return kept
}

// filterInterests keeps interests, original casing intact, whose lowercase
// form contains any of the given substrings.
func filterInterests(interests, substrings []string) []string {
	kept := []string{}
	for _, interest := range interests {
		lowered := strings.ToLower(interest)
		for _, sub := range substrings {
			if strings.Contains(lowered, sub) {
				kept = append(kept, interest)
				break
			}
		}
	}
	return kept
}

func capProjects(projects []types.Project, limit int) []types.Project {
	if len(projects) > limit {
		return projects[:limit]
	}
	return projects
}

func firstN(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
