// Package config provides YAML-based configuration loading and difficulty
// management for nbol. The configuration is the static spawn data the
// simulation reads at entity-creation time: per-type base stats, arena size,
// projectile and experience tuning.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// NbolConfig contains all configuration for the arena simulation.
type NbolConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Experience ExperienceConfig `yaml:"experience"`
	Waves      WavesConfig      `yaml:"waves"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Point is a position in tiles relative to the arena center.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CritConfig defines a critical hit chance (0..1) and damage multiplier (>= 1).
type CritConfig struct {
	Chance     float64 `yaml:"chance"`
	Multiplier float64 `yaml:"multiplier"`
}

// ArenaConfig defines the playable area in tiles, centered on the origin.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's base stats.
type PlayerConfig struct {
	Health          float64    `yaml:"health"`
	Speed           float64    `yaml:"speed"`            // tiles per second
	EnergyMax       float64    `yaml:"energy_max"`       // upper clamp for energy
	EnergyDrain     float64    `yaml:"energy_drain"`     // per second while boosting
	EnergyRegen     float64    `yaml:"energy_regen"`     // per second otherwise
	BoostMultiplier float64    `yaml:"boost_multiplier"` // movement scale while boosting
	Damage          float64    `yaml:"damage"`           // contact damage dealt to enemies
	Crit            CritConfig `yaml:"crit"`
	Start           Point      `yaml:"start"`
}

// EnemyConfig defines per-enemy base stats and spawn data.
type EnemyConfig struct {
	Count            int        `yaml:"count"` // enemies per burst
	Health           float64    `yaml:"health"`
	Speed            float64    `yaml:"speed"` // tiles per second
	Level            uint32     `yaml:"level"`
	AggroRange       float64    `yaml:"aggro_range"`        // tiles
	AggroBoost       float64    `yaml:"aggro_boost"`        // radius multiplier while aggroed
	AggroMemory      float64    `yaml:"aggro_memory"`       // seconds aggro survives after a hit; 0 = one tick
	ReturnThreshold  float64    `yaml:"return_threshold"`   // world units from anchor counted as home
	ReturnMultiplier float64    `yaml:"return_multiplier"`  // speed multiplier while returning
	Damage           float64    `yaml:"damage"`             // contact damage dealt to the player
	Crit             CritConfig `yaml:"crit"`
	ContactRadius    float64    `yaml:"contact_radius"`     // tiles
	ContactCooldown  float64    `yaml:"contact_cooldown"`   // seconds between contact hits
	SpawnMinDistance float64    `yaml:"spawn_min_distance"` // tiles from the player for random spawns
	Names            []string   `yaml:"names"`
	Positions        []Point    `yaml:"positions,omitempty"` // fixed spawn anchors, overrides random placement
}

// ProjectileConfig defines the cast ability.
type ProjectileConfig struct {
	Speed        float64    `yaml:"speed"` // tiles per second
	BaseDamage   float64    `yaml:"base_damage"`
	LevelBonus   float64    `yaml:"level_bonus"`   // fraction of base added per caster level
	LevelScaling bool       `yaml:"level_scaling"` // false = flat base damage
	TTL          float64    `yaml:"ttl"`           // seconds
	HitRadius    float64    `yaml:"hit_radius"`    // tiles
	Crit         CritConfig `yaml:"crit"`
}

// ExperienceConfig defines the XP curve.
type ExperienceConfig struct {
	Base         float64 `yaml:"base"`
	Multiplier   float64 `yaml:"multiplier"`
	Award        float64 `yaml:"award"`          // XP per defeated enemy
	ScaleByLevel bool    `yaml:"scale_by_level"` // multiply the award by the enemy level
}

// WavesConfig defines how many bursts make up an arena run.
type WavesConfig struct {
	Count int `yaml:"count"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "score", or "none"
	MaxAt int    `yaml:"max_at"` // wave/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to enemy speed factor
	HealthMultiplier float64 `yaml:"health_multiplier"` // added to enemy health factor
	CountIncrease    int     `yaml:"count_increase"`    // extra enemies per burst
}

// Validate checks the invariants the simulation relies on.
// All violations are reported together.
func (c NbolConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive")
	check(c.Player.Health > 0, "player.health must be > 0")
	check(c.Player.Speed >= 0, "player.speed must be >= 0")
	check(c.Player.EnergyMax > 0, "player.energy_max must be > 0")
	check(c.Player.BoostMultiplier >= 1, "player.boost_multiplier must be >= 1")
	check(validCrit(c.Player.Crit), "player.crit out of range")
	check(c.Enemy.Count >= 0, "enemy.count must be >= 0")
	check(c.Enemy.Health > 0, "enemy.health must be > 0")
	check(c.Enemy.Level >= 1, "enemy.level must be >= 1")
	check(c.Enemy.AggroRange > 0, "enemy.aggro_range must be > 0")
	check(c.Enemy.AggroMemory >= 0, "enemy.aggro_memory must be >= 0")
	check(c.Enemy.ContactCooldown > 0, "enemy.contact_cooldown must be > 0")
	check(validCrit(c.Enemy.Crit), "enemy.crit out of range")
	check(c.Projectile.TTL > 0, "projectile.ttl must be > 0")
	check(c.Projectile.HitRadius > 0, "projectile.hit_radius must be > 0")
	check(validCrit(c.Projectile.Crit), "projectile.crit out of range")
	check(c.Experience.Base > 0 && c.Experience.Multiplier > 0, "experience curve must be positive")
	check(c.Experience.Award >= 0, "experience.award must be >= 0")
	check(c.Waves.Count >= 1, "waves.count must be >= 1")

	return errors.Join(errs...)
}

func validCrit(c CritConfig) bool {
	return c.Chance >= 0 && c.Chance <= 1 && c.Multiplier >= 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	// Easy and normal start from base stats and ramp with waves.
	if preset == DifficultyHard {
		return 0.7
	}
	return 0.0
}
