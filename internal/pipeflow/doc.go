// Package pipeflow implements the pipe-flow energy-equation toolkit:
// Reynolds number, Darcy friction factors (laminar 64/Re, Colebrook by
// fixed-point iteration, Swamee-Jain and Haaland explicit forms), major and
// minor head losses, and iterative solves for unknown velocity, diameter,
// and pump head.
package pipeflow
