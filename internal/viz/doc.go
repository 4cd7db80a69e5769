// Package viz is the terminal front end for the Lorenz simulation.
//
// The package implements a Bubble Tea program that drives one
// [sim.Simulator] step per tick:
//
//   - [Model]: the frame loop, key handling and stats panel
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//   - [Camera]: perspective projection from an orbiting viewpoint
//
// # Key Bindings
//
//	Left/Right - Rotate the camera by 0.05 rad
//	Q, Ctrl+C  - Quit
//	any other  - Toggle auto-spin
//
// The simulation itself never sees keys or the camera; the model only
// forwards each frame to the polyline and redraws.
package viz
