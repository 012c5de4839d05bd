package stepnav

import (
	"errors"
	"strings"
)

// Step identifies a transition target: the step's identifier and its position
// in the flow.
type Step struct {
	ID    string
	Index int
}

// Status is the derived presentation state of a step. It is recomputed from
// the current index on every transition and never stored per step.
type Status int

const (
	// StatusDefault marks a step ahead of the active one that was visited
	// earlier and therefore stays reachable.
	StatusDefault Status = iota
	// StatusDisabled marks a step that cannot be jumped to yet.
	StatusDisabled
	// StatusActive marks the single currently active step.
	StatusActive
	// StatusVisited marks a step behind the active one.
	StatusVisited
)

// BeforeFunc gates a transition. It receives the target step and may veto the
// transition by returning false; any other outcome allows it.
type BeforeFunc func(target Step) bool

// AfterFunc observes a completed transition.
type AfterFunc func(target Step)

// StepState is one entry in a Snapshot.
type StepState struct {
	Step
	Status Status
	// Selected mirrors the accessibility "selected" flag: true only for the
	// active step.
	Selected bool
}

// Snapshot is the full derived state handed to the render listener after
// every committed transition.
type Snapshot struct {
	Steps            []StepState
	Current          int
	PreviousDisabled bool
	NextDisabled     bool
}

// RenderFunc projects a Snapshot onto the UI. It runs after state has been
// committed and before the after-interceptors fire.
type RenderFunc func(Snapshot)

// ErrIndexOutOfRange is returned by GoTo for indices outside [0, Len).
var ErrIndexOutOfRange = errors.New("stepnav: step index out of range")

// Navigator tracks the active step of a linear flow and mediates every change
// of it through the interceptor-guarded transition protocol.
//
// The step sequence is fixed at construction. A Navigator built with no steps
// is inert: every operation is a safe no-op and CurrentContainer returns nil.
//
// A Navigator is not safe for concurrent use; drive it from a single event
// loop, the way the widgets in the parent package do.
type Navigator struct {
	ids      []string
	visited  []bool
	current  int
	before   []BeforeFunc
	after    []AfterFunc
	render   RenderFunc
	location *Location
}

// New creates a Navigator over the given ordered step identifiers. The
// navigator starts uninitialized: no step is active until the first
// transition.
func New(ids []string) *Navigator {
	n := &Navigator{current: -1}
	if len(ids) == 0 {
		return n
	}
	n.ids = append([]string(nil), ids...)
	n.visited = make([]bool, len(ids))
	return n
}

// Len returns the number of steps.
func (n *Navigator) Len() int {
	return len(n.ids)
}

// CurrentContainer returns the active step, or nil while the navigator is
// uninitialized or inert. It has no side effects.
func (n *Navigator) CurrentContainer() *Step {
	if n.current < 0 || n.current >= len(n.ids) {
		return nil
	}
	return &Step{ID: n.ids[n.current], Index: n.current}
}

// BeforeChange registers an interceptor that gates transitions. Interceptors
// run in registration order; duplicates are allowed. Returns the navigator
// for chaining.
func (n *Navigator) BeforeChange(fn BeforeFunc) *Navigator {
	n.before = append(n.before, fn)
	return n
}

// AfterChange registers an observer that runs after committed transitions, in
// registration order. Returns the navigator for chaining.
func (n *Navigator) AfterChange(fn AfterFunc) *Navigator {
	n.after = append(n.after, fn)
	return n
}

// OnRender sets the render listener. Returns the navigator for chaining.
func (n *Navigator) OnRender(fn RenderFunc) *Navigator {
	n.render = fn
	return n
}

// Status derives the presentation state of the step at index i. Before the
// first transition every step is disabled.
func (n *Navigator) Status(i int) Status {
	switch {
	case i < 0 || i >= len(n.ids):
		return StatusDisabled
	case n.current < 0:
		return StatusDisabled
	case i == n.current:
		return StatusActive
	case i < n.current:
		return StatusVisited
	case n.visited[i]:
		return StatusDefault
	default:
		return StatusDisabled
	}
}

// Snapshot derives the full presentation state.
func (n *Navigator) Snapshot() Snapshot {
	snap := Snapshot{
		Steps:            make([]StepState, len(n.ids)),
		Current:          n.current,
		PreviousDisabled: n.current <= 0,
		NextDisabled:     n.current < 0 || n.current == len(n.ids)-1,
	}
	for i, id := range n.ids {
		snap.Steps[i] = StepState{
			Step:     Step{ID: id, Index: i},
			Status:   n.Status(i),
			Selected: i == n.current,
		}
	}
	return snap
}

// GoTo transitions to the step at index. The transition is atomic: it either
// commits every state update, notifies the render listener and fires the
// after-interceptors, or — when a before-interceptor vetoes — changes nothing
// at all. A veto is normal control flow, not an error; GoTo returns nil and
// the caller can observe the unchanged state via CurrentContainer.
//
// GoTo returns ErrIndexOutOfRange for indices outside the flow.
func (n *Navigator) GoTo(index int) error {
	return n.goTo(index, false)
}

// ContinueChange resumes a transition that a before-interceptor previously
// vetoed. It replays the transition to target.Index without consulting the
// interceptors, so it always reaches the target.
func (n *Navigator) ContinueChange(target Step) error {
	return n.goTo(target.Index, true)
}

// Next advances one step. At the last step (or on an inert navigator) it is a
// no-op.
func (n *Navigator) Next() {
	if len(n.ids) == 0 || n.current >= len(n.ids)-1 {
		return
	}
	_ = n.goTo(n.current+1, false)
}

// Previous goes back one step. At the first step it is a no-op.
func (n *Navigator) Previous() {
	if n.current <= 0 {
		return
	}
	_ = n.goTo(n.current-1, false)
}

// GoToID resolves an identifier to a transition. The literal "next" and
// "prev" delegate to Next and Previous. Anything else is matched against the
// step identifiers after stripping a leading fragment marker. It reports
// whether the identifier resolved to a step.
func (n *Navigator) GoToID(id string) bool {
	if len(n.ids) == 0 {
		return false
	}
	switch id {
	case "next":
		n.Next()
		return true
	case "prev":
		n.Previous()
		return true
	}
	id = strings.TrimPrefix(id, "#")
	for i, known := range n.ids {
		if known == id {
			return n.GoTo(i) == nil
		}
	}
	return false
}

// Activate attaches an optional Location and performs the initial transition.
// The initial step is resolved in priority order: an explicitly requested
// identifier matching a known step, then the location's current value, then
// an already-active step, then step 0. External writes to the location are
// routed back through GoToID for the navigator's lifetime; an emptied
// location resolves to step 0.
func (n *Navigator) Activate(loc *Location, requestedID string) error {
	if len(n.ids) == 0 {
		return ErrIndexOutOfRange
	}
	n.location = loc

	initial := 0
	switch {
	case requestedID != "" && n.indexOf(requestedID) >= 0:
		initial = n.indexOf(requestedID)
	case loc != nil && n.indexOf(loc.Value()) >= 0:
		initial = n.indexOf(loc.Value())
	case n.current >= 0:
		initial = n.current
	}

	if loc != nil {
		loc.subscribe(func(value string) {
			if value == "" {
				_ = n.GoTo(0)
				return
			}
			n.GoToID(value)
		})
	}
	return n.goTo(initial, false)
}

func (n *Navigator) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, known := range n.ids {
		if known == id {
			return i
		}
	}
	return -1
}

// goTo is the single mutation point for the current index.
func (n *Navigator) goTo(index int, ignoreInterceptors bool) error {
	if index < 0 || index >= len(n.ids) {
		return ErrIndexOutOfRange
	}
	target := Step{ID: n.ids[index], Index: index}
	contentChanged := n.current != index

	if contentChanged && !ignoreInterceptors {
		for _, fn := range n.before {
			if !fn(target) {
				return nil
			}
		}
	}

	n.current = index
	for i := 0; i <= index; i++ {
		n.visited[i] = true
	}

	if n.render != nil {
		n.render(n.Snapshot())
	}

	if n.location != nil {
		if index > 0 {
			n.location.store(target.ID)
		} else {
			n.location.clearStored()
		}
	}

	if contentChanged {
		for _, fn := range n.after {
			fn(target)
		}
	}
	return nil
}
