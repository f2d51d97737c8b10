// Package tui is the live terminal view of a point-vortex run, built on
// Bubble Tea: tick-driven stepping, pause/step/reset keys, a braille canvas
// with vortex trails, and circulation/impulse/invariant readouts.
package tui
