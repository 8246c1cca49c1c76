package trace

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// AbsentSnapshot is the snapshot text of an absent value.
const AbsentSnapshot = "Absent"

// Entry is a single step of a trace.
type Entry struct {
	Label    string
	Snapshot string
}

// Trace is an immutable ordered log of entries. The zero value is an empty
// trace with no chain id.
type Trace struct {
	id      uuid.UUID
	entries []Entry
}

// New starts a fresh chain with a single entry.
func New(label, snapshot string) Trace {
	return Trace{}.Append(label, snapshot)
}

// PresentSnapshot renders the snapshot of a present value.
func PresentSnapshot(value any) string {
	return fmt.Sprintf("Present(%v)", value)
}

// Append returns a new trace with the entry added at the end. The chain id of
// the receiver is kept; an empty trace gets a new one.
//
// The id therefore identifies one run of appends, not a whole pipeline: every
// reset point (a successful forward on a Present, map, flatMap, recover)
// starts from an empty trace and gets a new id. Only an Absent keeps its id
// while further operations are recorded on it.
func (t Trace) Append(label, snapshot string) Trace {
	id := t.id
	if id == uuid.Nil {
		id = uuid.New()
	}

	entries := make([]Entry, len(t.entries), len(t.entries)+1)
	copy(entries, t.entries)

	return Trace{
		id:      id,
		entries: append(entries, Entry{Label: label, Snapshot: snapshot}),
	}
}

// ID returns the chain id, uuid.Nil for the zero Trace. See Append for when
// it changes.
func (t Trace) ID() uuid.UUID {
	return t.id
}

func (t Trace) Len() int {
	return len(t.entries)
}

func (t Trace) IsEmpty() bool {
	return len(t.entries) == 0
}

// Entries returns a copy of the entries in insertion order.
func (t Trace) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Last returns the most recent entry.
func (t Trace) Last() (Entry, bool) {
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Labels returns the labels of all entries.
func (t Trace) Labels() []string {
	labels := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		labels = append(labels, e.Label)
	}
	return labels
}

func (t Trace) String() string {
	return t.Render()
}
