package flow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/infrastructure/cache"
)

// Session is the per-user view state: where they are, which resume (if
// any) is open in the editor. The active resume has a single owner for
// the duration of one edit session.
type Session struct {
	State           State     `json:"state"`
	EditingResumeID uuid.UUID `json:"editingResumeId,omitempty"`
}

var ErrSubmitInFlight = errors.New("a submission is already in flight")

const (
	sessionTTL    = 24 * time.Hour
	submitLockTTL = 30 * time.Second
)

// Store persists flow sessions and the submission guard in redis. When
// redis is down sessions reset to Landing, which is safe: the state
// machine re-derives the rest from events.
type Store struct {
	cache *cache.Redis
}

func NewStore(c *cache.Redis) *Store {
	return &Store{cache: c}
}

func (s *Store) Get(ctx context.Context, userID uuid.UUID) (Session, error) {
	var sess Session
	found, err := s.cache.GetJSON(ctx, sessionKey(userID), &sess)
	if err != nil || !found {
		return Session{State: StateLanding}, err
	}
	return sess, nil
}

func (s *Store) Save(ctx context.Context, userID uuid.UUID, sess Session) error {
	return s.cache.SetJSON(ctx, sessionKey(userID), sess, sessionTTL)
}

// Apply runs one event against the stored session and persists the
// result. EditResume carries the target resume id; Submitted and
// BackToDashboard clear it.
func (s *Store) Apply(ctx context.Context, userID uuid.UUID, ev Event, resumeID uuid.UUID) (Session, error) {
	sess, err := s.Get(ctx, userID)
	if err != nil {
		return sess, err
	}

	next, err := Next(sess.State, ev)
	if err != nil {
		return sess, err
	}

	sess.State = next
	switch ev {
	case EventNewResume:
		sess.EditingResumeID = uuid.Nil
	case EventEditResume:
		sess.EditingResumeID = resumeID
	case EventBackToDashboard, EventSignedOut:
		sess.EditingResumeID = uuid.Nil
	}

	if err := s.Save(ctx, userID, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// BeginSubmit acquires the per-user submission guard; a second submit
// while one is outstanding gets ErrSubmitInFlight.
func (s *Store) BeginSubmit(ctx context.Context, userID uuid.UUID) error {
	ok, err := s.cache.SetIfNotExists(ctx, submitKey(userID), "1", submitLockTTL)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSubmitInFlight
	}
	return nil
}

func (s *Store) EndSubmit(ctx context.Context, userID uuid.UUID) {
	_ = s.cache.Delete(ctx, submitKey(userID))
}

func sessionKey(userID uuid.UUID) string {
	return "flow:session:" + userID.String()
}

func submitKey(userID uuid.UUID) string {
	return "flow:submit:" + userID.String()
}
