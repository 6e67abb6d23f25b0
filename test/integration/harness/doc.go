// Package harness provides utilities for integration testing the tabstash CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TABSTASH_HOME: Isolated per test (temp directory)
//   - TABSTASH_DEBUG: Disabled to reduce noise
package harness
