package recommend

import "testing"

func TestParseSuggestion(t *testing.T) {
	got := parseSuggestion("Role: Data Engineer\nScore: 88\nReason: Pipelines and SQL everywhere.")
	if got == nil {
		t.Fatal("parseSuggestion returned nil")
	}
	if got.Role != "Data Engineer" || got.Score != 88 || got.Reason != "Pipelines and SQL everywhere." {
		t.Fatalf("got %+v", got)
	}
}

func TestParseSuggestionWithSurroundingChatter(t *testing.T) {
	reply := "Sure! Here is my assessment:\n\nRole: Backend Developer\nScore: 82\nReason: Solid API work.\n\nGood luck!"
	got := parseSuggestion(reply)
	if got == nil || got.Role != "Backend Developer" || got.Score != 82 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseSuggestionMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"missing role", "Score: 80\nReason: fine"},
		{"missing score", "Role: Dev\nReason: fine"},
		{"missing reason", "Role: Dev\nScore: 80"},
		{"non numeric score", "Role: Dev\nScore: eighty\nReason: fine"},
		{"score above range", "Role: Dev\nScore: 120\nReason: fine"},
		{"prose only", "I think you would make a great developer."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseSuggestion(tt.text); got != nil {
				t.Fatalf("got %+v, want nil", got)
			}
		})
	}
}
