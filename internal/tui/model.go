// Package tui implements an interactive terminal viewer for rectangle
// clipping. The user pastes a WKT geometry, then steers the clip window
// over it with the keyboard while the clipped result is redrawn live on
// a braille canvas.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/klippa-geo/klippa"
)

// Model is the viewer state: a subject geometry, the clip window, and
// the latest clip result.
type Model struct {
	width  int
	height int

	win     klippa.Rect
	subject orb.Geometry
	clipped orb.Geometry

	showSubject bool
	helpVisible bool

	pasteMode bool
	ta        textarea.Model

	status string
}

// New returns a viewer with no subject loaded.
func New() Model {
	ta := textarea.New()
	ta.Placeholder = "POLYGON((0 0,0 4,4 4,4 0,0 0))"
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(6)

	return Model{
		win:         klippa.NewRect(0, 0, 4, 4),
		showSubject: true,
		helpVisible: true,
		ta:          ta,
		status:      "no subject loaded, press p to paste WKT",
	}
}

// NewWithWKT returns a viewer preloaded with a WKT subject.
func NewWithWKT(s string) (Model, error) {
	m := New()
	g, err := wkt.Unmarshal(strings.TrimSpace(s))
	if err != nil {
		return m, err
	}
	m.setSubject(g)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// setSubject installs a new subject and fits the window inside it.
func (m *Model) setSubject(g orb.Geometry) {
	m.subject = g
	m.win = fitWindow(g.Bound())
	m.reclip()
}

// fitWindow picks a window inset from the subject bound so the clip has
// something to cut.
func fitWindow(b orb.Bound) klippa.Rect {
	w := b.Max[0] - b.Min[0]
	h := b.Max[1] - b.Min[1]
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return klippa.NewRect(
		b.Min[0]+0.15*w,
		b.Min[1]+0.15*h,
		b.Max[0]-0.15*w,
		b.Max[1]-0.15*h,
	)
}

// reclip reruns the clip and refreshes the status line.
func (m *Model) reclip() {
	if m.subject == nil {
		m.clipped = nil
		return
	}
	m.clipped = m.win.Clip(m.subject)

	b := m.win.Bound()
	where := fmt.Sprintf("window (%.3g %.3g)-(%.3g %.3g)", b.Min[0], b.Min[1], b.Max[0], b.Max[1])
	if m.clipped == nil {
		m.status = where + ": nothing inside"
		return
	}
	m.status = where + ": " + m.clipped.GeoJSONType()
}

// moveWindow shifts the window by a fraction of its own size.
func (m *Model) moveWindow(dx, dy float64) {
	b := m.win.Bound()
	sx := (b.Max[0] - b.Min[0]) * dx
	sy := (b.Max[1] - b.Min[1]) * dy
	m.win = klippa.NewRect(b.Min[0]+sx, b.Min[1]+sy, b.Max[0]+sx, b.Max[1]+sy)
	m.reclip()
}

// scaleWindow grows or shrinks the window about its center.
func (m *Model) scaleWindow(f float64) {
	b := m.win.Bound()
	cx := (b.Min[0] + b.Max[0]) / 2
	cy := (b.Min[1] + b.Max[1]) / 2
	hw := (b.Max[0] - b.Min[0]) / 2 * f
	hh := (b.Max[1] - b.Min[1]) / 2 * f
	m.win = klippa.NewRect(cx-hw, cy-hh, cx+hw, cy+hh)
	m.reclip()
}
