// Package registry maps game mode IDs to factories. Modes register
// themselves in init() functions, so the CLI and the platform can list and
// start them without importing each mode directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/nbol/internal/core"
)

// Game is a playable mode. Implementations hold pure simulation and
// presentation state; timing, input devices and terminal output belong to
// the platform.
type Game interface {
	// ID returns the mode identifier used on the command line and in storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new run. It is called before the first Step and again
	// on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the run into a cleared screen buffer.
	Render(dst *core.Screen)

	// State returns score and run status.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a registered mode.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
