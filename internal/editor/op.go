package editor

import "resume-builder/internal/domain/resume"

// Op is one editor operation in wire form, so a batch of edits can be
// applied in order against the stored aggregate.
type Op struct {
	Kind       string `json:"kind"`
	Field      string `json:"field,omitempty"`
	Collection string `json:"collection,omitempty"`
	Index      int    `json:"index,omitempty"`
	SubIndex   int    `json:"subIndex,omitempty"`
	Value      string `json:"value,omitempty"`
}

const (
	OpSetField             = "setField"
	OpAppendEntry          = "appendEntry"
	OpUpdateEntry          = "updateEntry"
	OpRemoveEntry          = "removeEntry"
	OpAppendResponsibility = "appendResponsibility"
	OpUpdateResponsibility = "updateResponsibility"
	OpRemoveResponsibility = "removeResponsibility"
)

// Apply runs one operation. Unknown kinds map to ErrUnknownField.
func Apply(r resume.Resume, op Op) (resume.Resume, error) {
	switch op.Kind {
	case OpSetField:
		return SetField(r, op.Field, op.Value)
	case OpAppendEntry:
		return AppendEntry(r, op.Collection)
	case OpUpdateEntry:
		return UpdateEntry(r, op.Collection, op.Index, op.Field, op.Value)
	case OpRemoveEntry:
		return RemoveEntry(r, op.Collection, op.Index)
	case OpAppendResponsibility:
		return AppendResponsibility(r, op.Index)
	case OpUpdateResponsibility:
		return UpdateResponsibility(r, op.Index, op.SubIndex, op.Value)
	case OpRemoveResponsibility:
		return RemoveResponsibility(r, op.Index, op.SubIndex)
	default:
		return r, fieldErr("op", op.Kind)
	}
}

// ApplyAll applies ops in order, stopping at the first failure and
// returning the input value unchanged in that case.
func ApplyAll(r resume.Resume, ops []Op) (resume.Resume, error) {
	cur := r
	for _, op := range ops {
		next, err := Apply(cur, op)
		if err != nil {
			return r, err
		}
		cur = next
	}
	return cur, nil
}
