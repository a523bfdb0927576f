// Package report renders scan results for an operator.
package report

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bft-labs/id3mend/internal/domain"
)

// Console writes candidate blocks and the run summary to a writer,
// normally stdout. Corrections are advisory; the scanned files are never
// touched.
type Console struct {
	mu          sync.Mutex
	w           io.Writer
	showSummary bool
}

// NewConsole creates a console reporter. When summary is false the
// end-of-run table is suppressed and only candidate blocks are written.
func NewConsole(w io.Writer, summary bool) *Console {
	return &Console{w: w, showSummary: summary}
}

// Candidate writes one before/after block. Both texts are quoted so that
// mojibake, control bytes and invalid UTF-8 stay unambiguous on a terminal.
func (c *Console) Candidate(cand domain.Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "candidate\n    file:      %s\n    field:     %s\n    from file: %s\n    corrected: %s\n    fix me\n",
		cand.Path, cand.FieldID, strconv.Quote(cand.Before), strconv.Quote(cand.After))
}

// Summary renders the per-run counters as a table.
func (c *Console) Summary(s domain.Summary) {
	if !c.showSummary {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tw := table.NewWriter()
	tw.SetOutputMirror(c.w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Count"})
	tw.AppendRows([]table.Row{
		{"files seen", s.FilesSeen},
		{"files scanned", s.FilesScanned},
		{"files skipped", s.FilesSkipped},
		{"fields checked", s.FieldsChecked},
		{"candidates", s.Candidates},
	})
	tw.Render()
}
