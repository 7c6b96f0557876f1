package config

import (
	_ "embed"
)

//go:embed defaults/nbol.yaml
var defaultNbolYAML []byte

// DefaultNbolConfig returns the hard-coded default configuration.
// It mirrors defaults/nbol.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultNbolConfig() NbolConfig {
	return NbolConfig{
		Arena: ArenaConfig{
			Width:  40,
			Height: 24,
		},
		Player: PlayerConfig{
			Health:          500,
			Speed:           2.0,
			EnergyMax:       100,
			EnergyDrain:     10,
			EnergyRegen:     15,
			BoostMultiplier: 1.5,
			Damage:          10,
			Crit:            CritConfig{Chance: 0.1, Multiplier: 2.0},
		},
		Enemy: EnemyConfig{
			Count:            10,
			Health:           100,
			Speed:            0.5,
			Level:            1,
			AggroRange:       5,
			AggroBoost:       3,
			AggroMemory:      3,
			ReturnThreshold:  2.0,
			ReturnMultiplier: 4,
			Damage:           15,
			Crit:             CritConfig{Chance: 0.05, Multiplier: 1.5},
			ContactRadius:    0.5,
			ContactCooldown:  1.0,
			SpawnMinDistance: 6,
			Names:            []string{"Goblin", "Kobold", "Imp", "Ghoul", "Bandit"},
		},
		Projectile: ProjectileConfig{
			Speed:        7.5,
			BaseDamage:   35,
			LevelBonus:   0.05,
			LevelScaling: true,
			TTL:          5.0,
			HitRadius:    0.75,
			Crit:         CritConfig{Chance: 0.1, Multiplier: 2.0},
		},
		Experience: ExperienceConfig{
			Base:       100,
			Multiplier: 1.5,
			Award:      25,
		},
		Waves: WavesConfig{
			Count: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				HealthMultiplier: 1.5,
				CountIncrease:    6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultNbolYAML
}
