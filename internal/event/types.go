// internal/event/types.go
package event

const (
	WaveStarted     EventType = "WaveStarted"
	WaveEnded       EventType = "WaveEnded"   // Волна закончилась
	TowerPlaced     EventType = "TowerPlaced" // Башня построена
	TowerRemoved    EventType = "TowerRemoved"
	TowerFired      EventType = "TowerFired"
	EnemySpawned    EventType = "EnemySpawned"
	EnemyKilled     EventType = "EnemyKilled"  // Враг уничтожен
	EnemyEscaped    EventType = "EnemyEscaped" // Враг дошёл до выхода
	DamageDealt     EventType = "DamageDealt"
	StatusApplied   EventType = "StatusApplied"
	StatusRemoved   EventType = "StatusRemoved"
	PlacementFailed EventType = "PlacementFailed"
	GameOver        EventType = "GameOver"
)
