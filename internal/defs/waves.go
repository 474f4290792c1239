package defs

import "time"

// WaveDefinition describes one wave of enemies.
type WaveDefinition struct {
	EnemyID       string
	Count         int
	SpawnInterval time.Duration
}

// WavePatterns maps wave number to its definition. Waves past the table repeat 4-6.
var WavePatterns = map[int]WaveDefinition{
	1: {EnemyID: "ENEMY_CRAWLER", Count: 6, SpawnInterval: time.Millisecond * 900},
	2: {EnemyID: "ENEMY_CRAWLER", Count: 10, SpawnInterval: time.Millisecond * 700},
	3: {EnemyID: "ENEMY_SALAMANDER", Count: 8, SpawnInterval: time.Millisecond * 800},
	4: {EnemyID: "ENEMY_BRUTE", Count: 8, SpawnInterval: time.Second},
	5: {EnemyID: "ENEMY_SALAMANDER", Count: 14, SpawnInterval: time.Millisecond * 600},
	6: {EnemyID: "ENEMY_GOLEM", Count: 3, SpawnInterval: time.Second * 2},
}

// Wave returns the definition for a wave number, cycling waves 4-6 after the table ends.
func Wave(n int) WaveDefinition {
	if def, ok := WavePatterns[n]; ok {
		return def
	}
	if n < 1 {
		return WavePatterns[1]
	}
	return WavePatterns[((n-4)%3)+4]
}
