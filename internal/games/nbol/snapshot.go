package nbol

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Score        int
	Kills        int
	Wave         int // 1-indexed for display
	Level        uint32
	XP           float64
	PlayerX      float64
	PlayerY      float64
	PlayerHealth float64
	Energy       float64
	Enemies      int
	Projectiles  int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Score:       g.score,
		Kills:       g.kills,
		Wave:        g.world.Wave() + 1,
		Level:       g.level,
		Enemies:     len(g.world.Enemies()),
		Projectiles: len(g.world.Projectiles()),
		State:       state,
	}
	if p, ok := g.world.Player(); ok {
		s.XP = p.Progress.XP
		s.PlayerX = p.Position().X
		s.PlayerY = p.Position().Y
		s.PlayerHealth = p.Health().Clamped()
		s.Energy = p.Energy
	}
	return s
}
