package editor

import (
	"errors"
	"testing"

	"resume-builder/internal/domain/resume"
)

func TestSetField(t *testing.T) {
	r := resume.New()

	out, err := SetField(r, "fullName", "Ada Lovelace")
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if out.FullName != "Ada Lovelace" {
		t.Fatalf("FullName = %q", out.FullName)
	}
	if r.FullName != "" {
		t.Fatalf("input mutated: FullName = %q", r.FullName)
	}

	if _, err := SetField(r, "nope", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestAppendAndUpdateEntry(t *testing.T) {
	r := resume.New()

	r, err := AppendEntry(r, CollectionExperience)
	if err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}
	if len(r.Experience) != 1 {
		t.Fatalf("len(Experience) = %d", len(r.Experience))
	}
	if r.Experience[0].Responsibilities == nil {
		t.Fatal("new experience entry has nil responsibilities")
	}

	r, err = UpdateEntry(r, CollectionExperience, 0, "company", "Analytical Engines Ltd")
	if err != nil {
		t.Fatalf("UpdateEntry company: %v", err)
	}
	r, err = UpdateEntry(r, CollectionExperience, 0, "current", "true")
	if err != nil {
		t.Fatalf("UpdateEntry current: %v", err)
	}
	if !r.Experience[0].Current || r.Experience[0].Company != "Analytical Engines Ltd" {
		t.Fatalf("entry = %+v", r.Experience[0])
	}

	if _, err := UpdateEntry(r, CollectionExperience, 0, "current", "maybe"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for bad bool, got %v", err)
	}
	if _, err := UpdateEntry(r, CollectionExperience, 3, "company", "X"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := UpdateEntry(r, "widgets", 0, "company", "X"); !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestUpdateEntryTechnologiesSplit(t *testing.T) {
	r := resume.New()
	r, _ = AppendEntry(r, CollectionProjects)

	r, err := UpdateEntry(r, CollectionProjects, 0, "technologies", "Go, PostgreSQL , ,Redis")
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}

	got := r.Projects[0].Technologies
	want := []string{"Go", "PostgreSQL", "Redis"}
	if len(got) != len(want) {
		t.Fatalf("technologies = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("technologies[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRemoveEntryPreservesOrder(t *testing.T) {
	r := resume.New()
	r.Skills = []string{"a", "b", "c", "d"}

	out, err := RemoveEntry(r, CollectionSkills, 1)
	if err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}

	want := []string{"a", "c", "d"}
	if len(out.Skills) != len(want) {
		t.Fatalf("skills = %v", out.Skills)
	}
	for i := range want {
		if out.Skills[i] != want[i] {
			t.Fatalf("skills[%d] = %q, want %q", i, out.Skills[i], want[i])
		}
	}
	if len(r.Skills) != 4 {
		t.Fatalf("input mutated: %v", r.Skills)
	}
}

func TestResponsibilities(t *testing.T) {
	r := resume.New()
	r, _ = AppendEntry(r, CollectionExperience)

	r, err := AppendResponsibility(r, 0)
	if err != nil {
		t.Fatalf("AppendResponsibility: %v", err)
	}
	r, err = UpdateResponsibility(r, 0, 0, "Shipped the analytical engine")
	if err != nil {
		t.Fatalf("UpdateResponsibility: %v", err)
	}
	if got := r.Experience[0].Responsibilities[0]; got != "Shipped the analytical engine" {
		t.Fatalf("responsibility = %q", got)
	}

	r, err = RemoveResponsibility(r, 0, 0)
	if err != nil {
		t.Fatalf("RemoveResponsibility: %v", err)
	}
	if len(r.Experience[0].Responsibilities) != 0 {
		t.Fatalf("responsibilities = %v", r.Experience[0].Responsibilities)
	}

	if _, err := UpdateResponsibility(r, 0, 5, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestApplyAllStopsAtFirstFailure(t *testing.T) {
	r := resume.New()

	ops := []Op{
		{Kind: OpSetField, Field: "fullName", Value: "Ada"},
		{Kind: OpUpdateEntry, Collection: CollectionSkills, Index: 9, Value: "Go"},
		{Kind: OpSetField, Field: "phone", Value: "123"},
	}

	out, err := ApplyAll(r, ops)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if out.FullName != "" || out.Phone != "" {
		t.Fatalf("failed batch leaked partial state: %+v", out)
	}
}

func TestApplyUnknownKind(t *testing.T) {
	if _, err := Apply(resume.New(), Op{Kind: "teleport"}); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}
