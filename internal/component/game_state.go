package component

// GamePhase — фаза игры
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)

// GameState хранит общее состояние игрового мира.
type GameState struct {
	Phase GamePhase
	Wave  int
	Tick  uint64
	Time  float64
}
