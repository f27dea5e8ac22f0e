package resume

import (
	"time"

	"github.com/google/uuid"
)

// WorkExperience dates are free text and never parsed. When Current is
// true the stored EndDate is kept but renderers ignore it.
type WorkExperience struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Current          bool     `json:"current"`
	Responsibilities []string `json:"responsibilities"`
}

type EducationEntry struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationYear string `json:"graduationYear"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Resume is the aggregate root. It is a pure value: invalidity is not
// representable here, required-field checks live in the editor.
type Resume struct {
	ID      uuid.UUID `json:"id,omitempty"`
	OwnerID uuid.UUID `json:"-"`

	FullName       string `json:"fullName"`
	TargetJobTitle string `json:"targetJobTitle"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Link           string `json:"link"`
	Summary        string `json:"summary"`

	Skills         []string             `json:"skills"`
	Experience     []WorkExperience     `json:"workExperience"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`

	AdditionalInfo string `json:"additionalInfo"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// New returns an empty resume with non-nil list fields.
func New() Resume {
	return Resume{
		Skills:         []string{},
		Experience:     []WorkExperience{},
		Education:      []EducationEntry{},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
	}
}

func (r Resume) IsPersisted() bool {
	return r.ID != uuid.Nil
}

// Clone deep-copies the aggregate so editor operations never alias list
// entries across values.
func (r Resume) Clone() Resume {
	out := r

	out.Skills = append([]string(nil), r.Skills...)

	out.Experience = make([]WorkExperience, len(r.Experience))
	for i, e := range r.Experience {
		e.Responsibilities = append([]string(nil), e.Responsibilities...)
		out.Experience[i] = e
	}

	out.Education = append([]EducationEntry(nil), r.Education...)

	out.Projects = make([]ProjectEntry, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}

	out.Certifications = append([]CertificationEntry(nil), r.Certifications...)

	return out
}
