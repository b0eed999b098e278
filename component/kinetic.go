package component

// KineticComponent holds sub-cell position and velocity for entities
// that move. Positions are in cell units; velocities in cells/second.
type KineticComponent struct {
	X, Y   float64
	VX, VY float64
}
