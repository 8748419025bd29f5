// Package continuum defines the records exchanged between the deformation
// engine and its presentation layer.
//
// Two views of the same flow are modelled:
//
//   - Lagrangian: a [MaterialBody] of tracked [MaterialPoint] values and the
//     [BodyTrajectory] produced by integrating every point through time.
//   - Eulerian: a sequence of [SpaceGrid] snapshots ([VelocityFields]), each
//     holding the velocity sampled at every cell of a fixed grid.
//
// Records are created once and never mutated afterwards. Slices held by a
// record are owned by it; callers must not modify them.
package continuum
