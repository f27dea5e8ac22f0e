package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain/resume"
)

func TestListColumnsRoundTrip(t *testing.T) {
	in := resume.New()
	in.Skills = []string{"Go", "PostgreSQL"}
	in.Experience = []resume.WorkExperience{
		{
			Company:          "Analytical Engines Ltd",
			Role:             "Engineer",
			StartDate:        "2019-01",
			Current:          true,
			Responsibilities: []string{"Built pipelines"},
		},
	}
	in.Education = []resume.EducationEntry{
		{School: "University of London", Degree: "BSc", Field: "Mathematics", GraduationYear: "2018"},
	}
	in.Projects = []resume.ProjectEntry{
		{Name: "Engine", Description: "Compute engine", Technologies: []string{"Go"}, Link: "https://example.com"},
	}
	in.Certifications = []resume.CertificationEntry{
		{Name: "Cert", Issuer: "Board", Year: "2020"},
	}

	lists, err := marshalLists(in)
	require.NoError(t, err)

	var out resume.Resume
	require.NoError(t, unmarshalLists(lists, &out))

	assert.Equal(t, in.Skills, out.Skills)
	assert.Equal(t, in.Experience, out.Experience)
	assert.Equal(t, in.Education, out.Education)
	assert.Equal(t, in.Projects, out.Projects)
	assert.Equal(t, in.Certifications, out.Certifications)
}

func TestUnmarshalListsDefaultsToEmptySlices(t *testing.T) {
	var out resume.Resume
	require.NoError(t, unmarshalLists(jsonLists{}, &out))

	assert.NotNil(t, out.Skills)
	assert.NotNil(t, out.Experience)
	assert.NotNil(t, out.Education)
	assert.NotNil(t, out.Projects)
	assert.NotNil(t, out.Certifications)
}
