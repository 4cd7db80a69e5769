// Package gui renders the Lorenz trajectory in a raylib 3D window.
//
// Every frame advances the simulator by one step, appends the new segment
// and draws the whole polyline in per-segment color while the camera
// orbits the origin. Left/Right rotate the camera, Q quits and any other
// key toggles the automatic spin.
package gui
