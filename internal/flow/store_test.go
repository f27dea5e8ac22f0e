package flow

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// Without redis the store must stay usable: sessions reset to Landing
// and the submit guard lets operations through instead of blocking.
func TestStoreDegradesWithoutRedis(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()
	userID := uuid.New()

	sess, err := s.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.State != StateLanding {
		t.Fatalf("state = %s, want landing", sess.State)
	}

	if err := s.BeginSubmit(ctx, userID); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	s.EndSubmit(ctx, userID)
}

func TestApplyRejectsIllegalEventWithoutSaving(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	_, err := s.Apply(ctx, uuid.New(), EventSubmitted, uuid.Nil)
	if err == nil {
		t.Fatal("expected illegal transition from landing")
	}
}

func TestApplyTracksEditingResume(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()
	userID := uuid.New()

	// With no persistence every Apply starts from Landing, so drive
	// the event that is legal there.
	sess, err := s.Apply(ctx, userID, EventSignedIn, uuid.Nil)
	if err != nil {
		t.Fatalf("Apply signedIn: %v", err)
	}
	if sess.State != StateDashboard {
		t.Fatalf("state = %s, want dashboard", sess.State)
	}
	if sess.EditingResumeID != uuid.Nil {
		t.Fatalf("editing id = %s, want nil", sess.EditingResumeID)
	}
}
