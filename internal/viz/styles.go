package viz

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lorenzsim/internal/sim"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)

	statusSpinning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusManual   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
)

// colorFloor lifts dark segments so they stay visible on a black terminal.
const colorFloor = 0.35

// segmentColor turns a frame color into a terminal color. Channels are
// clamped first, then mapped onto [colorFloor, 1].
func segmentColor(c sim.Color) lipgloss.Color {
	c = c.Clamped()
	ch := func(v float64) int { return int(math.Round((colorFloor + (1-colorFloor)*v) * 255)) }
	return lipgloss.Color(hexColor(ch(c.R), ch(c.G), ch(c.B)))
}

func hexColor(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v int) int { return min(max(v, 0), 255) }
