// Package viz renders fields and trajectories to the terminal.
//
//   - [Canvas]: Braille-based pixel canvas (2x4 dots per character cell)
//   - [Projection]: world-rectangle to canvas mapping
//   - [DrawContours]: streamfunction contour bands
//   - [DrawStreamline]: velocity-field streamline tracing
//
// The live TUI in internal/tui composes these with Bubble Tea.
package viz
