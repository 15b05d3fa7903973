package ports

import "context"

// HealthChecker is a dependency whose availability gates readiness.
type HealthChecker interface {
	// Name keys the checker's entry in the readiness report, e.g. "list-api".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honour
	// the context deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
