// Package flow is the explicit view state machine: named states, named
// events, and a transition table, instead of ambient listeners mutating
// a shared view variable.
package flow

import (
	"errors"
	"fmt"
)

type State string

const (
	StateLanding   State = "landing"
	StateAuth      State = "auth"
	StateDashboard State = "dashboard"
	StateForm      State = "form"
	StatePreview   State = "preview"
)

type Event string

const (
	EventOpenAuth        Event = "openAuth"
	EventSignedIn        Event = "signedIn"
	EventSignedOut       Event = "signedOut"
	EventNewResume       Event = "newResume"
	EventEditResume      Event = "editResume"
	EventSubmitted       Event = "submitted"
	EventBackToDashboard Event = "backToDashboard"
	EventBackToForm      Event = "backToForm"
)

var ErrIllegalTransition = errors.New("illegal view transition")

// transitions encodes every legal move. A session-change notification
// arrives as EventSignedIn/EventSignedOut; an in-progress edit survives
// a sign-in notification exactly as the original kept form/preview
// open when the auth listener fired.
var transitions = map[State]map[Event]State{
	StateLanding: {
		EventOpenAuth: StateAuth,
		EventSignedIn: StateDashboard,
	},
	StateAuth: {
		EventSignedIn:  StateDashboard,
		EventSignedOut: StateLanding,
	},
	StateDashboard: {
		EventNewResume:  StateForm,
		EventEditResume: StateForm,
		EventSignedOut:  StateLanding,
	},
	StateForm: {
		EventSubmitted:       StatePreview,
		EventBackToDashboard: StateDashboard,
		EventSignedIn:        StateForm,
		EventSignedOut:       StateLanding,
	},
	StatePreview: {
		EventBackToForm:      StateForm,
		EventBackToDashboard: StateDashboard,
		EventSignedIn:        StatePreview,
		EventSignedOut:       StateLanding,
	},
}

func ParseEvent(s string) (Event, error) {
	ev := Event(s)
	for _, known := range []Event{
		EventOpenAuth, EventSignedIn, EventSignedOut, EventNewResume,
		EventEditResume, EventSubmitted, EventBackToDashboard, EventBackToForm,
	} {
		if ev == known {
			return ev, nil
		}
	}
	return "", fmt.Errorf("unknown view event %q", s)
}

// Next resolves one transition.
func Next(from State, ev Event) (State, error) {
	if to, ok := transitions[from][ev]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, ev)
}
