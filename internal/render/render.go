package render

import (
	"strings"

	"resume-builder/internal/domain/resume"
)

const (
	sectionSummary        = "Professional Summary"
	sectionSkills         = "Skills"
	sectionExperience     = "Work Experience"
	sectionEducation      = "Education"
	sectionProjects       = "Projects"
	sectionCertifications = "Certifications"
	sectionAdditional     = "Additional Information"
)

// Render is a pure function from (resume, template) to a document tree.
// A section is emitted only when its backing data is non-empty.
func Render(r resume.Resume, template TemplateID) Document {
	doc := Document{
		Template: template,
		Header:   renderHeader(r),
	}

	if strings.TrimSpace(r.Summary) != "" {
		doc.Sections = append(doc.Sections, Section{
			Title:      sectionSummary,
			Paragraphs: []string{r.Summary},
		})
	}

	if len(r.Skills) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Title:  sectionSkills,
			Inline: append([]string(nil), r.Skills...),
		})
	}

	if len(r.Experience) > 0 {
		sec := Section{Title: sectionExperience}
		for _, exp := range r.Experience {
			sec.Items = append(sec.Items, Item{
				Heading:    exp.Role,
				Subheading: exp.Company,
				Meta:       dateLine(exp),
				Bullets:    nonEmpty(exp.Responsibilities),
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(r.Education) > 0 {
		sec := Section{Title: sectionEducation}
		for _, edu := range r.Education {
			item := Item{Heading: edu.Degree, Subheading: edu.School}
			if edu.Field != "" {
				item.Lines = append(item.Lines, edu.Field)
			}
			if edu.GraduationYear != "" {
				item.Lines = append(item.Lines, "Graduation Year: "+edu.GraduationYear)
			}
			sec.Items = append(sec.Items, item)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(r.Projects) > 0 {
		sec := Section{Title: sectionProjects}
		for _, p := range r.Projects {
			item := Item{Heading: p.Name}
			if p.Description != "" {
				item.Lines = append(item.Lines, p.Description)
			}
			sec.Items = append(sec.Items, item)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(r.Certifications) > 0 {
		sec := Section{Title: sectionCertifications}
		for _, c := range r.Certifications {
			sec.Paragraphs = append(sec.Paragraphs, c.Name+" — "+c.Issuer)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if strings.TrimSpace(r.AdditionalInfo) != "" {
		doc.Sections = append(doc.Sections, Section{
			Title:      sectionAdditional,
			Paragraphs: []string{r.AdditionalInfo},
		})
	}

	return doc
}

func renderHeader(r resume.Resume) Header {
	h := Header{
		Name:  r.FullName,
		Title: r.TargetJobTitle,
	}
	if h.Name == "" {
		h.Name = "Your Name"
	}
	if h.Title == "" {
		h.Title = "Target Job Title"
	}
	for _, c := range []string{r.Email, r.Phone, r.Link} {
		if c != "" {
			h.Contact = append(h.Contact, c)
		}
	}
	return h
}

// dateLine renders "{start} – {end}"; a current position always ends in
// "Present" no matter what end date is stored.
func dateLine(exp resume.WorkExperience) string {
	end := exp.EndDate
	if exp.Current {
		end = "Present"
	}
	return exp.StartDate + " – " + end
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
