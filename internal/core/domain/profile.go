package domain

import (
	"strings"
	"time"
)

// ProfileID is the fixed key of the singleton profile record.
const ProfileID = "current_user"

// PersonalInfo holds contact details shown at the top of a resume.
// Name and email are conventionally required by the UI but not enforced.
type PersonalInfo struct {
	Name      string `json:"name" toml:"name"`
	Email     string `json:"email" toml:"email"`
	Phone     string `json:"phone" toml:"phone"`
	LinkedIn  string `json:"linkedin" toml:"linkedin"`
	Location  string `json:"location" toml:"location"`
	Portfolio string `json:"portfolio,omitempty" toml:"portfolio,omitempty"`
	Website   string `json:"website,omitempty" toml:"website,omitempty"`
	GitHub    string `json:"github,omitempty" toml:"github,omitempty"`
}

// Experience is a single role in the career history.
// ID is an opaque token for list identity, not a relational key.
type Experience struct {
	ID        string   `json:"id" toml:"id,omitempty"`
	Company   string   `json:"company" toml:"company"`
	Role      string   `json:"role" toml:"role"`
	StartDate string   `json:"startDate" toml:"start_date"`
	EndDate   string   `json:"endDate" toml:"end_date"`
	Bullets   []string `json:"bullets" toml:"bullets"`
}

// Project is a portfolio entry with its technology tags.
type Project struct {
	ID           string   `json:"id" toml:"id,omitempty"`
	Name         string   `json:"name" toml:"name"`
	Description  string   `json:"description" toml:"description"`
	URL          string   `json:"url,omitempty" toml:"url,omitempty"`
	Technologies []string `json:"technologies" toml:"technologies"`
	Highlights   []string `json:"highlights" toml:"highlights"`
}

// Education is a degree or certificate.
type Education struct {
	ID     string `json:"id" toml:"id,omitempty"`
	School string `json:"school" toml:"school"`
	Degree string `json:"degree" toml:"degree"`
	Year   string `json:"year" toml:"year"`
}

// Profile is the user's master career history.
// Exactly one exists per installation, keyed by ProfileID.
type Profile struct {
	ID           string       `json:"id" toml:"-"`
	PersonalInfo PersonalInfo `json:"personalInfo" toml:"personal_info"`
	Summary      string       `json:"summary" toml:"summary"`
	Experience   []Experience `json:"experience" toml:"experience"`
	Projects     []Project    `json:"projects" toml:"projects"`
	Skills       []string     `json:"skills" toml:"skills"`
	Education    []Education  `json:"education" toml:"education"`
	UpdatedAt    time.Time    `json:"updatedAt" toml:"-"`
}

// NewProfile returns an empty profile with the singleton key.
func NewProfile() Profile {
	return Profile{
		ID:         ProfileID,
		Experience: []Experience{},
		Projects:   []Project{},
		Skills:     []string{},
		Education:  []Education{},
	}
}

// HasExperience reports whether at least one experience entry exists.
// Both pipeline operations are disabled without one.
func (p *Profile) HasExperience() bool {
	return p != nil && len(p.Experience) > 0
}

// HasSkill reports whether skill is already present.
// Comparison ignores case and surrounding whitespace.
func (p *Profile) HasSkill(skill string) bool {
	return containsFold(p.Skills, skill)
}

// AddSkill appends a skill if it is non-empty and not already present.
// Returns false when nothing was added.
func (p *Profile) AddSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" || p.HasSkill(skill) {
		return false
	}
	p.Skills = append(p.Skills, skill)
	return true
}

// RemoveSkill removes a skill. Returns false if it was not present.
func (p *Profile) RemoveSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	for i, s := range p.Skills {
		if strings.EqualFold(s, skill) {
			p.Skills = append(p.Skills[:i], p.Skills[i+1:]...)
			return true
		}
	}
	return false
}

// DedupeSkills removes duplicate and blank skills, keeping first occurrences.
func (p *Profile) DedupeSkills() {
	p.Skills = dedupeFold(p.Skills)
	for i := range p.Projects {
		p.Projects[i].Technologies = dedupeFold(p.Projects[i].Technologies)
	}
}

func containsFold(list []string, value string) bool {
	value = strings.TrimSpace(value)
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), value) {
			return true
		}
	}
	return false
}

func dedupeFold(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" || containsFold(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
