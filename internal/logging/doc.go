// Package logging provides the structured logging interface used by utilkit.
// The zerolog adapter is the default backend; a standard library adapter is
// available for code that already holds a *log.Logger.
package logging
