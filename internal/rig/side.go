package rig

// Side selects the left or right half of the figure. The numeric value is
// the X mirror sign used when positioning that side's parts.
type Side int

const (
	SideLeft  Side = 1
	SideRight Side = -1
)

// Sign returns the X mirror factor for the side.
func (s Side) Sign() float64 {
	return float64(s)
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}
