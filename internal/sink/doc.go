// Package sink holds the destinations for call outcomes: a display sink that
// prints decoded replies and an error sink that logs failures.
package sink
