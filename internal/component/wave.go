package component

// Wave is the spawn schedule of the wave in progress.
type Wave struct {
	Number         int
	EnemyID        string
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
}
