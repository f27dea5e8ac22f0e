package seeder

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resume-builder/internal/database"
	"resume-builder/internal/domain/resume"
	"resume-builder/internal/domain/user"
	"resume-builder/internal/infrastructure/persistence/postgres"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

// DemoAccount seeds a sign-in-ready account with one sample resume so a
// fresh development database has something to show. It is a no-op when
// the account already exists.
type DemoAccount struct{}

func (DemoAccount) Name() string { return "demo_account" }

func (DemoAccount) Run(ctx context.Context, db database.DB) error {
	users := postgres.NewUserRepository(db)

	exists, err := users.ExistsByEmail(ctx, demoEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        demoEmail,
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, u); err != nil {
		return err
	}

	r := sampleResume()
	r.ID = uuid.New()
	r.OwnerID = u.ID
	if _, err := postgres.NewResumeRepository(db).Create(ctx, r); err != nil {
		return err
	}
	return nil
}

func sampleResume() resume.Resume {
	r := resume.New()
	r.FullName = "Ada Lovelace"
	r.TargetJobTitle = "Software Engineer"
	r.Email = demoEmail
	r.Phone = "+1 555 0100"
	r.Link = "https://example.com/ada"
	r.Summary = "Engineer with a focus on analytical computing."
	r.Skills = []string{"Python", "Go", "PostgreSQL"}
	r.Experience = []resume.WorkExperience{
		{
			Company:          "Analytical Engines Ltd",
			Role:             "Engineer",
			StartDate:        "2019-01",
			Current:          true,
			Responsibilities: []string{"Designed computation pipelines", "Documented the instruction set"},
		},
	}
	r.Education = []resume.EducationEntry{
		{School: "University of London", Degree: "BSc", Field: "Mathematics", GraduationYear: "2018"},
	}
	return r
}
