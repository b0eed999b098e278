package component

// HealthComponent tracks current/max vitality
// Current decays over time and is restored on refresh
type HealthComponent struct {
	Current int
	Max     int
}
