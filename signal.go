package ivy

// Handler is a listener attached to an interaction Signal. target is the
// scene object the event resolved to; it is nil for OnCancel and OnScroll
// when no object was associated with the contact.
type Handler func(target Hittable, p *Pointer)

type signalEntry struct {
	id uint32
	fn Handler
}

// Signal is a synchronous multi-listener broadcast channel. Listeners fire
// in registration order on the dispatching goroutine; delivery is not
// reentrancy-guarded, so a listener that mutates the signal affects only
// subsequent emissions.
type Signal struct {
	entries []signalEntry
	nextID  uint32
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id  uint32
	sig *Signal
}

// Connect registers fn and returns a handle for later removal.
func (s *Signal) Connect(fn Handler) ListenerHandle {
	s.nextID++
	id := s.nextID
	s.entries = append(s.entries, signalEntry{id: id, fn: fn})
	return ListenerHandle{id: id, sig: s}
}

// Remove unregisters this listener so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h ListenerHandle) Remove() {
	if h.sig == nil {
		return
	}
	entries := h.sig.entries
	for i := range entries {
		if entries[i].id == h.id {
			copy(entries[i:], entries[i+1:])
			entries[len(entries)-1] = signalEntry{}
			h.sig.entries = entries[:len(entries)-1]
			return
		}
	}
}

// Emit delivers (target, p) to every listener in registration order.
// A listener removed mid-emit leaves a cleared slot behind in the slice
// header this loop already captured; skip it.
func (s *Signal) Emit(target Hittable, p *Pointer) {
	for _, e := range s.entries {
		if e.fn != nil {
			e.fn(target, p)
		}
	}
}

// HasListeners reports whether any listener is currently connected.
func (s *Signal) HasListeners() bool {
	return len(s.entries) > 0
}

// ReleaseAll drops every listener.
func (s *Signal) ReleaseAll() {
	s.entries = nil
}
