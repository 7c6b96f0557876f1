package core

// RuntimeConfig is what the platform tells a game on Reset: the terminal
// size, the fixed tick rate and the seed for its random source.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second, 60 when unset
	Seed     int64 // the platform replaces 0 with a time-based seed
}

// TickSeconds returns the duration of one simulation tick in seconds.
// Falls back to 60 ticks per second when TickRate is unset.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the run status the platform reacts to: it persists the run
// when GameOver or Won turns true and only honors restart afterwards.
type GameState struct {
	Score    int
	GameOver bool // the player was defeated
	Won      bool // the arena was cleared
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
