package loop

// State is the lifecycle phase of a Game.
type State int

const (
	StateUninitialized State = iota // Created, no layers yet
	StateInitialized                // Layers bound, entities built
	StateRunning                    // Render loop active
	StateTerminated                 // Game over; see Reason
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reason says why a Game terminated.
type Reason int

const (
	ReasonNone      Reason = iota
	ReasonCollision        // The ship touched a projectile
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCollision:
		return "collision"
	default:
		return "unknown"
	}
}
