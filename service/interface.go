// Package service runs long-lived infrastructure next to the simulation
package service

import (
	"context"

	"github.com/lixenwraith/allerbees/config"
)

// Service defines the lifecycle of an infrastructure subsystem
// Services own audio devices, files, databases and listeners
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(settings) - configuration, no side effects beyond validation
//  3. Start(ctx) - open resources, launch goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	Init(settings config.Settings) error

	// Start begins service operation; ctx is cancelled on shutdown
	Start(ctx context.Context) error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}

// ResourcePublisher receives resources contributed by services
// The receiver routes by concrete type
type ResourcePublisher func(resource any)

// ResourceContributor is implemented by services that expose APIs to systems
// Only started services contribute
type ResourceContributor interface {
	Contribute(publish ResourcePublisher)
}
