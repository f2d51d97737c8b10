// Package field provides uniform 2D grids, scalar and vector fields sampled
// at their nodes, and finite-difference operators (gradient, divergence,
// curl, Laplacian) for the vortex lessons.
package field
