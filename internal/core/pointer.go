package core

import "sync"

// Button identifies which pointer action the user performed.
type Button int

const (
	ButtonPrimary   Button = iota // Left click, tap
	ButtonSecondary               // Right click, delivered as a context-menu event
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	default:
		return "Unknown"
	}
}

// PointerEvent is a single pointer action in surface pixel coordinates.
type PointerEvent struct {
	X, Y   int
	Button Button

	preventDefault func()
}

// NewPointerEvent creates an event. preventDefault may be nil when the host
// has no default action to suppress.
func NewPointerEvent(x, y int, b Button, preventDefault func()) PointerEvent {
	return PointerEvent{X: x, Y: y, Button: b, preventDefault: preventDefault}
}

// PreventDefault suppresses the host's default handling of the event.
func (e PointerEvent) PreventDefault() {
	if e.preventDefault != nil {
		e.preventDefault()
	}
}

// PointerHandler receives pointer events.
type PointerHandler func(ev PointerEvent)

// PointerSource delivers pointer events to subscribers.
// Subscribe returns a cancel func that detaches the handler.
type PointerSource interface {
	Subscribe(h PointerHandler) (cancel func())
}

// PointerHub is a PointerSource that fans events out to its subscribers.
// Hosts feed it with Dispatch.
type PointerHub struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]PointerHandler
	order    []int
}

// NewPointerHub creates an empty hub.
func NewPointerHub() *PointerHub {
	return &PointerHub{handlers: make(map[int]PointerHandler)}
}

// Subscribe registers h and returns its cancel func.
// Calling cancel more than once is safe.
func (p *PointerHub) Subscribe(h PointerHandler) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.handlers[id] = h
	p.order = append(p.order, id)

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		if _, ok := p.handlers[id]; !ok {
			return
		}
		delete(p.handlers, id)
		for i, v := range p.order {
			if v == id {
				p.order = append(p.order[:i], p.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers ev to every subscriber in subscription order.
// Handlers run after the hub lock is released, so they may unsubscribe.
func (p *PointerHub) Dispatch(ev PointerEvent) {
	p.mu.Lock()
	handlers := make([]PointerHandler, 0, len(p.order))
	for _, id := range p.order {
		handlers = append(handlers, p.handlers[id])
	}
	p.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Len returns the number of active subscribers.
func (p *PointerHub) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.order)
}
