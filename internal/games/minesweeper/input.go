package minesweeper

import "github.com/vovakirdan/tui-minesweeper/internal/core"

// InputMapper turns pointer events into reveal and flag actions.
// It is the only bounds check between the host and the engine.
type InputMapper struct {
	geom   Geometry
	engine *Engine
	cancel func()
}

// NewInputMapper creates a mapper that forwards to engine.
func NewInputMapper(geom Geometry, engine *Engine) *InputMapper {
	return &InputMapper{geom: geom, engine: engine}
}

// Attach subscribes to src, replacing any previous subscription.
func (m *InputMapper) Attach(src core.PointerSource) {
	m.Detach()
	m.cancel = src.Subscribe(func(ev core.PointerEvent) {
		m.Handle(ev)
	})
}

// Detach drops the subscription. Safe to call when not attached.
func (m *InputMapper) Detach() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Attached reports whether the mapper holds a subscription.
func (m *InputMapper) Attached() bool {
	return m.cancel != nil
}

// Handle maps one event and dispatches it. Returns false when the event
// falls outside the grid and was ignored.
func (m *InputMapper) Handle(ev core.PointerEvent) bool {
	if ev.Button == core.ButtonSecondary {
		ev.PreventDefault()
	}

	x, y, ok := m.ToCell(ev.X, ev.Y)
	if !ok {
		return false
	}

	switch ev.Button {
	case core.ButtonPrimary:
		m.engine.Reveal(x, y)
	case core.ButtonSecondary:
		m.engine.Flag(x, y)
	default:
		return false
	}
	return true
}

// ToCell converts surface pixels to grid coordinates.
func (m *InputMapper) ToCell(px, py int) (x, y int, ok bool) {
	px -= m.geom.OffsetPx
	py -= m.geom.OffsetPx
	if px < 0 || py < 0 || m.geom.CellPx <= 0 {
		return 0, 0, false
	}

	x = px / m.geom.CellPx
	y = py / m.geom.CellPx
	if x >= m.geom.Size || y >= m.geom.Size {
		return 0, 0, false
	}
	return x, y, true
}
