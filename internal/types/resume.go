// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// Skill proficiency levels.
const (
	LevelBeginner     = "初级"
	LevelIntermediate = "中级"
	LevelAdvanced     = "高级"
	LevelExpert       = "专家"
)

// Language proficiency levels. Beginner through advanced are shared with
// skill levels; native replaces expert.
const (
	ProficiencyNative = "母语"
)

// Section module identifiers. ModuleOrder entries reference these; a record's
// module order covers exactly this set.
const (
	ModuleWorkExperience = "workExperience"
	ModuleEducation      = "education"
	ModuleSkills         = "skills"
	ModuleProjects       = "projects"
	ModuleCertifications = "certifications"
	ModuleLanguages      = "languages"
)

// PersonalInfo holds the contact header of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub   string `json:"github,omitempty" validate:"omitempty,url"`
	Summary  string `json:"summary" validate:"required,min=10"`
}

// WorkExperience represents a single work history entry.
// When Current is true the end date is ignored and renders as the
// fixed "present" label.
type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Location     string   `json:"location" validate:"required"`
	Description  string   `json:"description" validate:"required,min=10"`
	Achievements []string `json:"achievements"`
}

// Education represents a single education entry.
type Education struct {
	ID        string   `json:"id"`
	School    string   `json:"school" validate:"required"`
	Degree    string   `json:"degree" validate:"required"`
	Major     string   `json:"major" validate:"required"`
	StartDate string   `json:"startDate" validate:"required"`
	EndDate   string   `json:"endDate,omitempty"`
	Current   bool     `json:"current"`
	GPA       string   `json:"gpa,omitempty"`
	Honors    []string `json:"honors"`
}

// Skill represents one named skill category with its proficiency level.
type Skill struct {
	ID       string   `json:"id"`
	Category string   `json:"category" validate:"required"`
	Skills   []string `json:"skills" validate:"dive,required"`
	Level    string   `json:"level" validate:"required,oneof=初级 中级 高级 专家"`
}

// Project represents a single project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required,min=10"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
	GitHub       string   `json:"github,omitempty" validate:"omitempty,url"`
	Achievements []string `json:"achievements"`
}

// Certification represents a certificate or credential.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Issuer       string `json:"issuer" validate:"required"`
	Date         string `json:"date" validate:"required"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty" validate:"omitempty,url"`
}

// Language represents spoken-language proficiency.
type Language struct {
	ID          string `json:"id"`
	Language    string `json:"language" validate:"required"`
	Proficiency string `json:"proficiency" validate:"required,oneof=初级 中级 高级 母语"`
}

// ModuleOrder is one entry of the user-controlled section layout.
// The slice order determines rendering order; a disabled module is
// fully omitted regardless of its underlying content.
type ModuleOrder struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Resume is the root aggregate: all resume content plus the module layout.
// Treated as immutable by the rendering pipeline; new versions replace
// records rather than mutating them in place.
type Resume struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo" validate:"required"`
	WorkExperience []WorkExperience `json:"workExperience" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Skills         []Skill          `json:"skills" validate:"dive"`
	Projects       []Project        `json:"projects" validate:"dive"`
	Certifications []Certification  `json:"certifications" validate:"dive"`
	Languages      []Language       `json:"languages" validate:"dive"`
	ModuleOrder    []ModuleOrder    `json:"moduleOrder"`
}

// GenerateID returns a fresh unique identifier for resume entries and versions.
func GenerateID() string {
	return uuid.NewString()
}

// DefaultModuleOrder returns the canonical module layout: all six sections
// enabled, in the standard order.
func DefaultModuleOrder() []ModuleOrder {
	return []ModuleOrder{
		{ID: ModuleWorkExperience, Name: "工作经历", Enabled: true},
		{ID: ModuleEducation, Name: "教育背景", Enabled: true},
		{ID: ModuleSkills, Name: "技能", Enabled: true},
		{ID: ModuleProjects, Name: "项目经历", Enabled: true},
		{ID: ModuleCertifications, Name: "证书", Enabled: true},
		{ID: ModuleLanguages, Name: "语言能力", Enabled: true},
	}
}

// NewResume creates an empty resume with the default module order.
func NewResume() *Resume {
	return &Resume{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
		ModuleOrder:    DefaultModuleOrder(),
	}
}

// NewWorkExperience creates an empty work experience entry with a fresh ID.
func NewWorkExperience() WorkExperience {
	return WorkExperience{ID: GenerateID(), Achievements: []string{}}
}

// NewEducation creates an empty education entry with a fresh ID.
func NewEducation() Education {
	return Education{ID: GenerateID(), Honors: []string{}}
}

// NewSkill creates an empty skill category with a fresh ID and the
// intermediate default level.
func NewSkill() Skill {
	return Skill{ID: GenerateID(), Skills: []string{}, Level: LevelIntermediate}
}

// NewProject creates an empty project entry with a fresh ID.
func NewProject() Project {
	return Project{ID: GenerateID(), Technologies: []string{}, Achievements: []string{}}
}

// NewCertification creates an empty certification entry with a fresh ID.
func NewCertification() Certification {
	return Certification{ID: GenerateID()}
}

// NewLanguage creates an empty language entry with a fresh ID and the
// intermediate default proficiency.
func NewLanguage() Language {
	return Language{ID: GenerateID(), Proficiency: LevelIntermediate}
}
