package recommend

import (
	"context"
	"testing"
)

func TestRuleStrategyPriority(t *testing.T) {
	tests := []struct {
		name      string
		skills    []string
		wantRole  string
		wantScore int
	}{
		{"data science wins", []string{"Python", "React"}, "Data Scientist", 90},
		{"case and whitespace ignored", []string{"  MACHINE LEARNING  "}, "Data Scientist", 90},
		{"frontend", []string{"React", "CSS"}, "Frontend Developer", 85},
		{"backend", []string{"api", "sql"}, "Backend Developer", 80},
		{"default", []string{"Excel"}, "Software Engineer", 70},
	}

	s := NewRuleStrategy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Suggest(context.Background(), tt.skills)
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if got == nil {
				t.Fatal("Suggest returned nil")
			}
			if got.Role != tt.wantRole || got.Score != tt.wantScore {
				t.Fatalf("got %q/%d, want %q/%d", got.Role, got.Score, tt.wantRole, tt.wantScore)
			}
			if got.Reason == "" {
				t.Fatal("empty reason")
			}
		})
	}
}

func TestRuleStrategyEmptySkills(t *testing.T) {
	got, err := NewRuleStrategy().Suggest(context.Background(), nil)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestConfidenceBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, BandHigh},
		{90, BandHigh},
		{85, BandHigh},
		{84, BandMedium},
		{75, BandMedium},
		{74, BandExploratory},
		{70, BandExploratory},
		{0, BandExploratory},
	}
	for _, tt := range tests {
		if got := ConfidenceBand(tt.score); got != tt.want {
			t.Fatalf("ConfidenceBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
