// Package testutil provides deterministic helpers for the randomized test
// suites: a seeded RNG and value generators sized to stress probe-table
// growth and backward-shift deletion.
package testutil
