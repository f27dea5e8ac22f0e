package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"resume-builder/internal/database"
	"resume-builder/internal/domain/resume"
)

// ResumeRepository stores the aggregate with the ordered list fields as
// JSONB columns, preserving entry order exactly as submitted.
type ResumeRepository struct {
	db database.DB
}

func NewResumeRepository(db database.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

const resumeColumns = `id, user_id, full_name, target_job_title, email, phone, link,
	professional_summary, skills, work_experience, education, projects,
	certifications, additional_info, created_at, updated_at`

func (r *ResumeRepository) Create(ctx context.Context, in resume.Resume) (resume.Resume, error) {
	lists, err := marshalLists(in)
	if err != nil {
		return resume.Resume{}, err
	}

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO resumes (id, user_id, full_name, target_job_title, email, phone, link,
			professional_summary, skills, work_experience, education, projects,
			certifications, additional_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+resumeColumns,
		in.ID, in.OwnerID, in.FullName, in.TargetJobTitle, in.Email, in.Phone, in.Link,
		in.Summary, lists.skills, lists.experience, lists.education, lists.projects,
		lists.certifications, in.AdditionalInfo,
	)
	return scanResume(row)
}

func (r *ResumeRepository) Update(ctx context.Context, in resume.Resume) (resume.Resume, error) {
	lists, err := marshalLists(in)
	if err != nil {
		return resume.Resume{}, err
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE resumes SET full_name = $2, target_job_title = $3, email = $4, phone = $5,
			link = $6, professional_summary = $7, skills = $8, work_experience = $9,
			education = $10, projects = $11, certifications = $12, additional_info = $13,
			updated_at = now()
		WHERE id = $1
		RETURNING `+resumeColumns,
		in.ID, in.FullName, in.TargetJobTitle, in.Email, in.Phone,
		in.Link, in.Summary, lists.skills, lists.experience,
		lists.education, lists.projects, lists.certifications, in.AdditionalInfo,
	)
	out, err := scanResume(row)
	if err != nil {
		return resume.Resume{}, err
	}
	return out, nil
}

func (r *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1`,
		id,
	)
	return scanResume(row)
}

func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Resume, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []resume.Resume
	for rows.Next() {
		item, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *ResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return resume.ErrNotFound
	}
	return nil
}

type jsonLists struct {
	skills         []byte
	experience     []byte
	education      []byte
	projects       []byte
	certifications []byte
}

func marshalLists(in resume.Resume) (jsonLists, error) {
	var lists jsonLists
	var err error

	if lists.skills, err = json.Marshal(in.Skills); err != nil {
		return lists, fmt.Errorf("marshal skills: %w", err)
	}
	if lists.experience, err = json.Marshal(in.Experience); err != nil {
		return lists, fmt.Errorf("marshal work experience: %w", err)
	}
	if lists.education, err = json.Marshal(in.Education); err != nil {
		return lists, fmt.Errorf("marshal education: %w", err)
	}
	if lists.projects, err = json.Marshal(in.Projects); err != nil {
		return lists, fmt.Errorf("marshal projects: %w", err)
	}
	if lists.certifications, err = json.Marshal(in.Certifications); err != nil {
		return lists, fmt.Errorf("marshal certifications: %w", err)
	}
	return lists, nil
}

func scanResume(row database.Row) (resume.Resume, error) {
	var (
		out   resume.Resume
		lists jsonLists
	)
	err := row.Scan(
		&out.ID, &out.OwnerID, &out.FullName, &out.TargetJobTitle, &out.Email,
		&out.Phone, &out.Link, &out.Summary, &lists.skills, &lists.experience,
		&lists.education, &lists.projects, &lists.certifications,
		&out.AdditionalInfo, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}

	if err := unmarshalLists(lists, &out); err != nil {
		return resume.Resume{}, err
	}
	return out, nil
}

func unmarshalLists(lists jsonLists, out *resume.Resume) error {
	out.Skills = []string{}
	out.Experience = []resume.WorkExperience{}
	out.Education = []resume.EducationEntry{}
	out.Projects = []resume.ProjectEntry{}
	out.Certifications = []resume.CertificationEntry{}

	pairs := []struct {
		raw  []byte
		dest any
	}{
		{lists.skills, &out.Skills},
		{lists.experience, &out.Experience},
		{lists.education, &out.Education},
		{lists.projects, &out.Projects},
		{lists.certifications, &out.Certifications},
	}
	for _, p := range pairs {
		if len(p.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(p.raw, p.dest); err != nil {
			return fmt.Errorf("unmarshal resume lists: %w", err)
		}
	}
	return nil
}
