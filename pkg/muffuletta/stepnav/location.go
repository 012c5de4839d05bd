package stepnav

// Location is an externally visible slot holding the active step's
// identifier — the fragment of a URL, the tab argument of a launcher, or
// whatever deep-link surface the host exposes.
//
// The navigator is one writer among many: it stores the active identifier on
// every committed transition (and clears it on step 0) without notifying
// subscribers, while external writers use Set, which does notify. This keeps
// back/forward style navigation from echoing through the navigator forever.
//
// Like the Navigator, a Location belongs to a single event loop.
type Location struct {
	value string
	subs  []func(string)
}

// NewLocation creates an empty Location.
func NewLocation() *Location {
	return &Location{}
}

// Value returns the current identifier, or "" when unset.
func (l *Location) Value() string {
	return l.value
}

// Set records an identifier written by an external source and notifies
// subscribers. Writing the value already stored is a no-op.
func (l *Location) Set(value string) {
	if l.value == value {
		return
	}
	l.value = value
	for _, fn := range l.subs {
		fn(value)
	}
}

// Clear empties the location from an external source. Subscribers are
// notified with "" so an attached navigator can fall back to step 0.
func (l *Location) Clear() {
	l.Set("")
}

// subscribe registers a listener for external writes.
func (l *Location) subscribe(fn func(string)) {
	l.subs = append(l.subs, fn)
}

// store is the navigator-side write: update without notifying.
func (l *Location) store(value string) {
	l.value = value
}

// clearStored empties the slot without notifying, and only if non-empty.
func (l *Location) clearStored() {
	if l.value != "" {
		l.value = ""
	}
}
