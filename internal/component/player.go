// internal/component/player.go
package component

// Player holds the player's economy.
type Player struct {
	Money  int
	Health int
	Kills  int
	Leaks  int
}

// CanAfford must be rechecked at the moment money is spent.
func (p *Player) CanAfford(cost int) bool {
	return p.Money >= cost
}

// Alive reports whether the player still has health.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// FlashMessage is a transient on-screen message.
type FlashMessage struct {
	Text  string
	Timer Timer
}
