// Package editor implements incremental, field-level construction of a
// resume. Every operation takes a resume value and returns a new one;
// callers never observe shared list entries between the input and the
// output.
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"resume-builder/internal/domain/resume"
)

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// Collection names match the JSON field names of the aggregate.
const (
	CollectionSkills         = "skills"
	CollectionExperience     = "workExperience"
	CollectionEducation      = "education"
	CollectionProjects       = "projects"
	CollectionCertifications = "certifications"
)

// SetField replaces one profile scalar.
func SetField(r resume.Resume, field, value string) (resume.Resume, error) {
	out := r.Clone()
	switch field {
	case "fullName":
		out.FullName = value
	case "targetJobTitle":
		out.TargetJobTitle = value
	case "email":
		out.Email = value
	case "phone":
		out.Phone = value
	case "link":
		out.Link = value
	case "summary":
		out.Summary = value
	case "additionalInfo":
		out.AdditionalInfo = value
	default:
		return r, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return out, nil
}

// AppendEntry appends a default-initialized entry to the named collection.
func AppendEntry(r resume.Resume, collection string) (resume.Resume, error) {
	out := r.Clone()
	switch collection {
	case CollectionSkills:
		out.Skills = append(out.Skills, "")
	case CollectionExperience:
		out.Experience = append(out.Experience, resume.WorkExperience{Responsibilities: []string{}})
	case CollectionEducation:
		out.Education = append(out.Education, resume.EducationEntry{})
	case CollectionProjects:
		out.Projects = append(out.Projects, resume.ProjectEntry{Technologies: []string{}})
	case CollectionCertifications:
		out.Certifications = append(out.Certifications, resume.CertificationEntry{})
	default:
		return r, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return out, nil
}

// UpdateEntry replaces one field of one entry, addressed by
// (collection, index, field). Indices come from the current render, so
// an out-of-range index is a caller bug and is reported as an error
// rather than a panic because it crosses the HTTP boundary.
func UpdateEntry(r resume.Resume, collection string, index int, field, value string) (resume.Resume, error) {
	out := r.Clone()
	switch collection {
	case CollectionSkills:
		if index < 0 || index >= len(out.Skills) {
			return r, indexErr(collection, index)
		}
		out.Skills[index] = value

	case CollectionExperience:
		if index < 0 || index >= len(out.Experience) {
			return r, indexErr(collection, index)
		}
		e := &out.Experience[index]
		switch field {
		case "company":
			e.Company = value
		case "role":
			e.Role = value
		case "startDate":
			e.StartDate = value
		case "endDate":
			e.EndDate = value
		case "current":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return r, fmt.Errorf("%w: current=%q", ErrUnknownField, value)
			}
			e.Current = b
		default:
			return r, fieldErr(collection, field)
		}

	case CollectionEducation:
		if index < 0 || index >= len(out.Education) {
			return r, indexErr(collection, index)
		}
		e := &out.Education[index]
		switch field {
		case "school":
			e.School = value
		case "degree":
			e.Degree = value
		case "field":
			e.Field = value
		case "graduationYear":
			e.GraduationYear = value
		default:
			return r, fieldErr(collection, field)
		}

	case CollectionProjects:
		if index < 0 || index >= len(out.Projects) {
			return r, indexErr(collection, index)
		}
		p := &out.Projects[index]
		switch field {
		case "name":
			p.Name = value
		case "description":
			p.Description = value
		case "link":
			p.Link = value
		case "technologies":
			p.Technologies = splitTechnologies(value)
		default:
			return r, fieldErr(collection, field)
		}

	case CollectionCertifications:
		if index < 0 || index >= len(out.Certifications) {
			return r, indexErr(collection, index)
		}
		c := &out.Certifications[index]
		switch field {
		case "name":
			c.Name = value
		case "issuer":
			c.Issuer = value
		case "year":
			c.Year = value
		default:
			return r, fieldErr(collection, field)
		}

	default:
		return r, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return out, nil
}

// RemoveEntry removes the entry at index, shifting later entries down.
func RemoveEntry(r resume.Resume, collection string, index int) (resume.Resume, error) {
	out := r.Clone()
	switch collection {
	case CollectionSkills:
		if index < 0 || index >= len(out.Skills) {
			return r, indexErr(collection, index)
		}
		out.Skills = append(out.Skills[:index], out.Skills[index+1:]...)
	case CollectionExperience:
		if index < 0 || index >= len(out.Experience) {
			return r, indexErr(collection, index)
		}
		out.Experience = append(out.Experience[:index], out.Experience[index+1:]...)
	case CollectionEducation:
		if index < 0 || index >= len(out.Education) {
			return r, indexErr(collection, index)
		}
		out.Education = append(out.Education[:index], out.Education[index+1:]...)
	case CollectionProjects:
		if index < 0 || index >= len(out.Projects) {
			return r, indexErr(collection, index)
		}
		out.Projects = append(out.Projects[:index], out.Projects[index+1:]...)
	case CollectionCertifications:
		if index < 0 || index >= len(out.Certifications) {
			return r, indexErr(collection, index)
		}
		out.Certifications = append(out.Certifications[:index], out.Certifications[index+1:]...)
	default:
		return r, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return out, nil
}

// AppendResponsibility adds an empty responsibility line to the
// experience entry at expIdx.
func AppendResponsibility(r resume.Resume, expIdx int) (resume.Resume, error) {
	out := r.Clone()
	if expIdx < 0 || expIdx >= len(out.Experience) {
		return r, indexErr(CollectionExperience, expIdx)
	}
	out.Experience[expIdx].Responsibilities = append(out.Experience[expIdx].Responsibilities, "")
	return out, nil
}

func UpdateResponsibility(r resume.Resume, expIdx, respIdx int, value string) (resume.Resume, error) {
	out := r.Clone()
	if expIdx < 0 || expIdx >= len(out.Experience) {
		return r, indexErr(CollectionExperience, expIdx)
	}
	resp := out.Experience[expIdx].Responsibilities
	if respIdx < 0 || respIdx >= len(resp) {
		return r, indexErr("responsibilities", respIdx)
	}
	resp[respIdx] = value
	return out, nil
}

func RemoveResponsibility(r resume.Resume, expIdx, respIdx int) (resume.Resume, error) {
	out := r.Clone()
	if expIdx < 0 || expIdx >= len(out.Experience) {
		return r, indexErr(CollectionExperience, expIdx)
	}
	resp := out.Experience[expIdx].Responsibilities
	if respIdx < 0 || respIdx >= len(resp) {
		return r, indexErr("responsibilities", respIdx)
	}
	out.Experience[expIdx].Responsibilities = append(resp[:respIdx], resp[respIdx+1:]...)
	return out, nil
}

func splitTechnologies(value string) []string {
	parts := strings.Split(value, ",")
	techs := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}

func indexErr(collection string, index int) error {
	return fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, collection, index)
}

func fieldErr(collection, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownField, collection, field)
}
