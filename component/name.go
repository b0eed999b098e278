package component

// NameComponent is an optional human-readable label
type NameComponent struct {
	Value string
}
