package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lorenzsim/internal/scene"
	"github.com/san-kum/lorenzsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 300
	statsWidth      = 50
)

type TickMsg time.Time

// Model steps the simulator once per tick and draws the trajectory from
// an orbiting camera.
type Model struct {
	sim           *sim.Simulator
	orbit         *scene.Orbit
	line          *scene.Polyline
	camera        *Camera
	canvas        *Canvas
	width, height int
	interval      time.Duration
	xs, ys, zs    []float64
	last          sim.Frame
	now           func() time.Time
}

// NewModel wraps s. fps <= 0 falls back to 60.
func NewModel(s *sim.Simulator, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		sim:      s,
		orbit:    scene.NewOrbit(scene.DefaultRadius),
		line:     scene.NewPolyline(),
		camera:   NewCamera(),
		canvas:   NewCanvas(width, height),
		width:    width,
		height:   height,
		interval: time.Second / time.Duration(fps),
		xs:       make([]float64, 0, historyCapacity),
		ys:       make([]float64, 0, historyCapacity),
		zs:       make([]float64, 0, historyCapacity),
		last:     sim.Frame{Previous: s.Previous(), Current: s.Current()},
		now:      time.Now,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles keys and advances the simulation on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left":
			m.orbit.Rotate(1)
		case "right":
			m.orbit.Rotate(-1)
		default:
			m.orbit.Toggle()
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.advance()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	f := m.sim.Step()
	m.last = f
	m.line.Append(f)
	m.xs = pushHistory(m.xs, f.Current.X)
	m.ys = pushHistory(m.ys, f.Current.Y)
	m.zs = pushHistory(m.zs, f.Current.Z)
	m.orbit.Spin(m.now())
}

func pushHistory(h []float64, v float64) []float64 {
	if len(h) >= historyCapacity {
		h = append(h[:0], h[1:]...)
	}
	return append(h, v)
}

func (m *Model) resize(w, h int) {
	cw, ch := w-statsWidth-4, h-2
	if cw < 10 {
		cw = 10
	}
	if ch < 5 {
		ch = 5
	}
	m.width, m.height = cw, ch
	m.canvas = NewCanvas(cw, ch)
}

// Orbit exposes the camera state, mainly for tests.
func (m Model) Orbit() *scene.Orbit { return m.orbit }

// Segments is the number of trajectory segments drawn so far.
func (m Model) Segments() int { return m.line.Len() }

func (m *Model) draw() {
	m.canvas.Clear()
	m.camera.Follow(m.orbit)
	segs := m.line.Segments()
	edges := make([]Edge, len(segs))
	for i, s := range segs {
		edges[i] = Edge{Start: s.From, End: s.To, Color: segmentColor(s.Color)}
	}
	Render3D(m.canvas, edges, m.camera)
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("LORENZ ATTRACTOR") + "\n")
	if m.orbit.Mode() == scene.Spinning {
		s.WriteString(statusSpinning.Render("SPINNING") + "\n\n")
	} else {
		s.WriteString(statusManual.Render("MANUAL") + "\n\n")
	}

	cfg := m.sim.Config()
	f := m.last
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", m.sim.Elapsed())) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("%s %s %s", coord(f.Current.X), coord(f.Current.Y), coord(f.Current.Z))) + "\n")
	s.WriteString(labelStyle.Render("Color") + lipgloss.NewStyle().Foreground(segmentColor(f.Color)).Render(fmt.Sprintf("%.2f %.2f %.2f", f.Color.R, f.Color.G, f.Color.B)) + "\n")
	s.WriteString(labelStyle.Render("Segments") + valueStyle.Render(fmt.Sprintf("%d", m.line.Len())) + "\n")
	s.WriteString(labelStyle.Render("Params") + valueStyle.Render(fmt.Sprintf("σ=%g ρ=%g β=%.4g h=%g", cfg.Sigma, cfg.Rho, cfg.Beta, cfg.Dt)) + "\n")

	if len(m.xs) > 1 && plottable(m.xs, m.ys, m.zs) {
		chart := asciigraph.PlotMany([][]float64{m.xs, m.ys, m.zs},
			asciigraph.Height(6),
			asciigraph.Width(30),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
			asciigraph.Caption("x y z"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if !plottable(m.xs, m.ys, m.zs) {
		s.WriteString(statusManual.Render("DIVERGED") + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\n←→:Rotate  any:Spin  Q:Quit"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// plotLimit bounds the values handed to asciigraph; past it the labels
// grow to hundreds of digits.
const plotLimit = 1e6

func plottable(series ...[]float64) bool {
	for _, h := range series {
		for _, v := range h {
			if !(math.Abs(v) < plotLimit) {
				return false
			}
		}
	}
	return true
}

func coord(v float64) string {
	if math.Abs(v) < plotLimit {
		return fmt.Sprintf("%.3f", v)
	}
	return fmt.Sprintf("%.3g", v)
}
