package nodestatus

// Type is an enumeration for registered node states. Integer values are
// the wire representation accepted and returned by the contract.
type Type int

// Various node states.
const (
	// Offline stands for nodes that are registered but not serving. It is the
	// initial state of every node.
	Offline Type = iota

	// Online stands for nodes that are in full network and
	// operational availability.
	Online

	// Maintenance stands for nodes under maintenance with partial
	// network availability.
	Maintenance
)

// IsValid checks whether t is one of the enumerated states. Transitions
// between valid states are unconstrained.
func IsValid(t Type) bool {
	return t == Offline || t == Online || t == Maintenance
}

// String returns human-readable state name.
func (t Type) String() string {
	switch t {
	case Offline:
		return "OFFLINE"
	case Online:
		return "ONLINE"
	case Maintenance:
		return "MAINTENANCE"
	default:
		return "UNKNOWN"
	}
}
