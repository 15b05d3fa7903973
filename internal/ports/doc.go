// Package ports holds the interfaces that separate the layers. Handlers call
// the board service port, the board service calls the list source port, and
// the readiness probe runs the health ports.
package ports
