//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ResumeVersion wraps a full resume snapshot under a user-chosen name.
// Versions are immutable; duplicating one produces a new ID and fresh
// timestamps over a copied record.
type ResumeVersion struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	Data        *Resume `json:"data" validate:"required"`
}

// NewVersion snapshots a resume under the given name.
func NewVersion(name string, data *Resume, description string) *ResumeVersion {
	now := time.Now().UTC().Format(time.RFC3339)
	return &ResumeVersion{
		ID:          GenerateID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Data:        data.Clone(),
	}
}

// Duplicate copies a version into a new snapshot with its own ID and
// timestamps. The underlying record is deep-copied so edits to one
// version never leak into another.
func (v *ResumeVersion) Duplicate(name string) *ResumeVersion {
	return NewVersion(name, v.Data, v.Description)
}

// Clone returns a deep copy of the resume.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}
	out := *r
	out.WorkExperience = append([]WorkExperience(nil), r.WorkExperience...)
	for i := range out.WorkExperience {
		out.WorkExperience[i].Achievements = append([]string(nil), r.WorkExperience[i].Achievements...)
	}
	out.Education = append([]Education(nil), r.Education...)
	for i := range out.Education {
		out.Education[i].Honors = append([]string(nil), r.Education[i].Honors...)
	}
	out.Skills = append([]Skill(nil), r.Skills...)
	for i := range out.Skills {
		out.Skills[i].Skills = append([]string(nil), r.Skills[i].Skills...)
	}
	out.Projects = append([]Project(nil), r.Projects...)
	for i := range out.Projects {
		out.Projects[i].Technologies = append([]string(nil), r.Projects[i].Technologies...)
		out.Projects[i].Achievements = append([]string(nil), r.Projects[i].Achievements...)
	}
	out.Certifications = append([]Certification(nil), r.Certifications...)
	out.Languages = append([]Language(nil), r.Languages...)
	out.ModuleOrder = append([]ModuleOrder(nil), r.ModuleOrder...)
	return &out
}
