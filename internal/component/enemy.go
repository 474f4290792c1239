package component

// Enemy is an entity walking the level path.
type Enemy struct {
	DefID      string
	Radius     float64
	Bounty     int
	Dead       bool    // killed this tick, despawned during cleanup
	ReachedEnd bool    // escaped through the exit
	DotTimer   float64 // time until the next damage-over-time pulse
}
