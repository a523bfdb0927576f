// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [TagReader]: Opens a file's ID3 metadata and yields text fields
//   - [Reporter]: Sink for correction candidates and the run summary
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/scanner) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (ID3v2 parsing, stdout reporting, zerolog).
//
// This separation enables:
//   - Testing the scanner with in-memory implementations
//   - Swapping infrastructure without changing business logic
//   - Clear boundaries and dependency direction
package ports
