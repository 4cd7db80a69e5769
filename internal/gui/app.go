package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lorenzsim/internal/physics"
	"github.com/san-kum/lorenzsim/internal/scene"
	"github.com/san-kum/lorenzsim/internal/sim"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// App is the raylib front end. It owns its simulator and steps it once per
// rendered frame.
type App struct {
	Sim        *sim.Simulator
	Orbit      *scene.Orbit
	Line       *scene.Polyline
	Camera     rl.Camera3D
	Equilibria []rl.Vector3
	ShowGrid   bool
	Last       sim.Frame
	FPS        int32

	quit bool
	now  func() time.Time
}

func initWindow(fps int32) {
	rl.InitWindow(screenWidth, screenHeight, "lorenz")
	rl.SetTargetFPS(fps)
}

// NewApp builds the scene around s. It does not touch the window, so it
// can be called before InitWindow.
func NewApp(s *sim.Simulator, fps int) *App {
	if fps <= 0 {
		fps = 60
	}
	cfg := s.Config()
	lz := physics.Lorenz{Sigma: cfg.Sigma, Rho: cfg.Rho, Beta: cfg.Beta}
	var eq []rl.Vector3
	for _, p := range lz.Equilibria() {
		eq = append(eq, toVector3(p))
	}

	a := &App{
		Sim:        s,
		Orbit:      scene.NewOrbit(scene.DefaultRadius),
		Line:       scene.NewPolyline(),
		Equilibria: eq,
		ShowGrid:   true,
		Last:       sim.Frame{Previous: s.Previous(), Current: s.Current()},
		FPS:        int32(fps),
		now:        time.Now,
	}
	a.Camera = rl.NewCamera3D(
		toVector3(a.Orbit.Position()),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		30.0,
		rl.CameraPerspective,
	)
	return a
}

// Run opens the window and blocks until it is closed.
func Run(s *sim.Simulator, fps int) {
	a := NewApp(s, fps)
	initWindow(a.FPS)
	defer rl.CloseWindow()
	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// Update drains pending key presses, then advances one step and moves the
// camera.
func (a *App) Update() {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		a.HandleKey(k)
	}
	a.Advance()
}

// HandleKey applies one key press: arrows rotate, Q quits and anything
// else toggles spin.
func (a *App) HandleKey(k int32) {
	switch k {
	case rl.KeyLeft:
		a.Orbit.Rotate(1)
	case rl.KeyRight:
		a.Orbit.Rotate(-1)
	case rl.KeyQ:
		a.quit = true
	default:
		a.Orbit.Toggle()
	}
}

// Advance steps the simulation once and follows the orbit.
func (a *App) Advance() {
	f := a.Sim.Step()
	a.Last = f
	a.Line.Append(f)
	a.Orbit.Spin(a.now())
	a.Camera.Position = toVector3(a.Orbit.Position())
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	if a.ShowGrid {
		a.drawGrid(20, 10)
	}
	a.RenderTrajectory()
	a.RenderEquilibria()
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	rl.DrawText("lorenz", 30, 30, 24, ColSelect)
	cfg := a.Sim.Config()
	rl.DrawText(fmt.Sprintf(":: sigma=%g rho=%g beta=%.4g h=%g", cfg.Sigma, cfg.Rho, cfg.Beta, cfg.Dt), 130, 36, 16, ColText)

	rl.DrawText(Legend(a.Sim.Elapsed(), a.Last), 30, 70, 18, toColor(a.Last.Color))
	rl.DrawText(fmt.Sprintf("segments %d", a.Line.Len()), 30, 95, 14, ColText)

	status, col := "SPINNING", ColSelect
	if a.Orbit.Mode() == scene.Manual {
		status, col = "MANUAL", ColAccent
	}
	rl.DrawText(status, screenWidth-130, 30, 16, col)

	rl.DrawText("[LEFT/RIGHT] ROTATE  [ANY] SPIN  [Q] QUIT", 800, 680, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, 680, 14, ColTextDim)
}

// Legend is the text line showing elapsed time and the current position.
func Legend(elapsed float64, f sim.Frame) string {
	p := f.Current
	return fmt.Sprintf("t=%.2f  x=%.3f y=%.3f z=%.3f", elapsed, p.X, p.Y, p.Z)
}

func (a *App) drawGrid(slices int, spacing float32) {
	halfSize := float32(slices) * spacing / 2
	for i := -slices / 2; i <= slices/2; i++ {
		pos := float32(i) * spacing
		rl.DrawLine3D(rl.NewVector3(pos, 0, -halfSize), rl.NewVector3(pos, 0, halfSize), ColGrid)
		rl.DrawLine3D(rl.NewVector3(-halfSize, 0, pos), rl.NewVector3(halfSize, 0, pos), ColGrid)
	}
}
