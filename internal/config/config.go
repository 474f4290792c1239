// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 1200
	ScreenHeight   = 900
	CellSize       = 30.0 // world units per grid cell
	TicksPerSecond = 60
	MaxDeltaTime   = 0.06

	StartingMoney  = 300
	StartingHealth = 20

	EnemyRadius        = 8.0
	TowerTriggerRadius = 22.0
	FlashDuration      = 2.0 // seconds a placement message stays on screen
	RemovalRefund      = 0.5 // fraction of the price returned on removal

	// Elemental interaction tuning.
	ChainLightningRadius = 15.0
	ChainLightningDamage = 10.0
	ShockChanceFactor    = 0.1
	FrozenComboStrength  = 2
	StatusDamageInterval = 1.0 // seconds between damage-over-time pulses

	// Liquids.
	Gravity          = 600.0 // world units per second^2
	DropletLifetime  = 5.0
	DropletRadius    = 3.0
	PuddleRadius     = 12.0
	KnockbackDamping = 6.0 // impulse decay per second
	PushImpulse      = 90.0

	// Trap door.
	TrapDoorOpenChance   = 0.5
	TrapDoorOpenDuration = 1.0

	// Combo loop bound per tick: apply -> combo -> apply.
	MaxApplyPasses = 4

	// Waves.
	FirstWaveDelay = 3.0
	WaveBreak      = 5.0

	DamageTextDuration  = 0.8
	DamageTextRise      = 30.0
	DamageFlashDuration = 0.15
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	SolidColor      = color.RGBA{90, 90, 100, 255}
	PathColor       = color.RGBA{50, 60, 70, 255}
	SpawnColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	EnemyColor      = color.RGBA{220, 220, 220, 255}
	TowerColor      = color.RGBA{255, 215, 0, 255}
	PuddleAlpha     = uint8(160)
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	FlashColor      = color.RGBA{255, 90, 90, 255}
	DamageTextColor = color.RGBA{255, 240, 120, 255}
)
