// Package viz renders finished trajectories and field snapshots in the
// terminal. Nothing here computes the flow; every function reads records
// produced by package sim.
//
// Plots are drawn on a braille [Canvas], two by four dots per character
// cell, with each cell tagged by the [Layer] drawn into it last so that
// styles can color initial points, final points and paths apart.
package viz
