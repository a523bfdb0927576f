package ports

import (
	"github.com/bft-labs/id3mend/internal/domain"
)

// Reporter is the sink for scan results.
// Implementations render candidates for an operator; nothing is ever written
// back to the scanned files.
type Reporter interface {
	// Candidate reports one field whose corrected text differs from the
	// text currently stored in the file.
	Candidate(c domain.Candidate)

	// Summary reports the per-run counters after a scan completes.
	Summary(s domain.Summary)
}
