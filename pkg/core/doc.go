// Package core defines the shared language of the leaptype system.
//
// This package contains:
//   - Type descriptors (TypeSpec, Param) supplied by callers
//   - Resolution output (DialectType) consumed by DDL generators
//   - The error taxonomy shared by the resolver and its transforms
//   - Configuration types shared by adapters and the CLI (AdapterConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
