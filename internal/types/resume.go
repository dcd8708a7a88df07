package types

// Resume is the caller-supplied source document. The engine treats it as a
// read-only value; it is never persisted or mutated.
type Resume struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`

	// CustomSections carries non-standard top-level content. Some ATS
	// parsers mishandle these, which the compatibility simulation penalizes.
	CustomSections map[string]any `json:"custom_sections,omitempty"`
}

// PersonalInfo holds contact and identity fields
type PersonalInfo struct {
	FullName string `json:"full_name"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Experience represents one work history entry
type Experience struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

// Education represents one education entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Skill represents one skill entry
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    string `json:"level,omitempty"`
}

// Project represents one project entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Certification represents one certification entry
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Language represents one spoken-language entry
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// HasSectionData reports whether the resume carries substantive content for
// the given semantic section type. Used to decide which template sections
// render and which required sections are satisfied.
func (r *Resume) HasSectionData(st SectionType) bool {
	switch st {
	case SectionPersonalInfo:
		return r.PersonalInfo.FullName != ""
	case SectionSummary:
		return r.Summary != ""
	case SectionExperience:
		return len(r.Experience) > 0
	case SectionEducation:
		return len(r.Education) > 0
	case SectionSkills:
		return len(r.Skills) > 0
	case SectionProjects:
		return len(r.Projects) > 0
	case SectionCertifications:
		return len(r.Certifications) > 0
	case SectionLanguages:
		return len(r.Languages) > 0
	default:
		return false
	}
}
