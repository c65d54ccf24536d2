// Package registry provides a global registry for host factories.
// Hosts register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/wowjack/bevy-pong-clone/internal/config"
)

// ErrUnknownHost is returned by Create for an unregistered name.
var ErrUnknownHost = errors.New("registry: unknown host")

// HostOptions carries everything a host needs to run a game.
type HostOptions struct {
	Config config.PongConfig
	Logger *log.Logger
}

// Host is a presentation layer that owns the playfield geometry and frame
// timing and drives a pong game until the player quits.
type Host interface {
	// Name returns a unique identifier used on the command line
	// (e.g., "terminal", "window").
	Name() string

	// Title returns a human-readable description for listings.
	Title() string

	// Run blocks until the player quits, ctx is cancelled or a fatal
	// error occurs. Missing playfield geometry at startup is fatal.
	Run(ctx context.Context, opts HostOptions) error
}

// HostInfo contains metadata about a registered host.
type HostInfo struct {
	Name  string
	Title string
}

// Factory is a function that creates a new instance of a host.
type Factory func() Host

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a host factory to the registry.
// Panics if a host with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: host %q already registered", name))
	}

	factories[name] = f
	titles[name] = f().Title()
}

// List returns information about all registered hosts, sorted by name.
func List() []HostInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]HostInfo, 0, len(factories))
	for name := range factories {
		result = append(result, HostInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new host by its name.
func Create(name string) (Host, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownHost, name)
	}

	return f(), nil
}

// Exists checks if a host with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
