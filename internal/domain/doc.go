// Package domain contains the core domain entities and value objects for
// id3mend.
//
// This package represents the innermost layer of the Clean Architecture. It
// has no dependencies on infrastructure concerns (file system, ID3 parsing,
// logging) and contains only pure value types.
//
// # Entities
//
//   - [Field]: A single ID3 text frame as read from a file (declared
//     encoding, raw payload bytes, decoded text)
//   - [Candidate]: A before/after correction pair for one field instance
//   - [Summary]: Per-run counters for the end-of-run report
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
