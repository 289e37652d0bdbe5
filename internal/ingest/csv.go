package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/raveheart1/workgraph/internal/chain"
)

// Column names expected in the work-item relationship export.
const (
	colItemID    = "WORK_ITEM_ID"
	colRelID     = "WORK_ITEM_RELATIONSHIP_ID"
	colRelType   = "WORK_ITEM_RELATIONSHIP_TYPE"
	colItemType  = "WORK_ITEM_TYPE_NAME"
	colItemState = "WORK_ITEM_RELATIONSHIP_STATE_NAME"

	colStartDate   = "START_DATE"
	colTargetDate  = "TARGET_DATE"
	colClosedDate  = "CLOSED_DATE"
	colOpportunity = "OPPORTUNITY"
)

// Relationship type values distinguishing edge direction.
const (
	relPredecessor = "Predecessor"
	relSuccessor   = "Successor"
)

// Options controls snapshot reading.
type Options struct {
	// DateFormats overrides DefaultDateFormats when non-empty.
	DateFormats []string
	// Warn receives date-parse warnings. Defaults to os.Stderr.
	Warn io.Writer
}

func (o Options) warnWriter() io.Writer {
	if o.Warn == nil {
		return os.Stderr
	}
	return o.Warn
}

// ReadCSVFile reads a relationship export from the named CSV file.
func ReadCSVFile(path string, opts Options) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	snap, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return snap, nil
}

// ReadCSV reads a relationship export. One row records one relationship
// of one work item; an item appears on as many rows as it has
// relationships. Temporal columns are optional; when present, the first
// row carrying a value for an item's date wins and later rows cannot
// clear it.
func ReadCSV(r io.Reader, opts Options) (*Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	snap := NewSnapshot()
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		if err := ingestRow(snap, cols, record, line, opts); err != nil {
			return nil, err
		}
	}

	return snap, nil
}

// columnIndex maps column name to its position, -1 when absent.
type columnIndex map[string]int

// indexColumns locates every known column in the header and verifies the
// required relationship columns are all present.
func indexColumns(header []string) (columnIndex, error) {
	cols := columnIndex{}
	known := []string{
		colItemID, colRelID, colRelType, colItemType, colItemState,
		colStartDate, colTargetDate, colClosedDate, colOpportunity,
	}
	for _, name := range known {
		cols[name] = -1
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := cols[name]; ok {
			cols[name] = i
		}
	}

	for _, name := range []string{colItemID, colRelID, colRelType, colItemType, colItemState} {
		if cols[name] == -1 {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

// field returns the named cell of a record, or "" when the column is
// absent or the row is short.
func (c columnIndex) field(record []string, name string) string {
	idx := c[name]
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// ingestRow folds one CSV row into the snapshot.
func ingestRow(snap *Snapshot, cols columnIndex, record []string, line int, opts Options) error {
	itemID := cols.field(record, colItemID)
	if itemID == "" {
		return fmt.Errorf("row %d: empty %s", line, colItemID)
	}

	rel := snap.Relations[itemID]
	if rel.Type == "" {
		rel.Type = cols.field(record, colItemType)
	}
	if rel.State == "" {
		rel.State = cols.field(record, colItemState)
	}

	relID := cols.field(record, colRelID)
	switch cols.field(record, colRelType) {
	case relPredecessor:
		rel.Predecessors = append(rel.Predecessors, relID)
	case relSuccessor:
		rel.Successors = append(rel.Successors, relID)
	}
	snap.Relations[itemID] = rel

	ingestTimeline(snap, cols, record, itemID, line, opts)
	return nil
}

// ingestTimeline folds the optional temporal columns of one row into the
// item's timeline. Unparseable dates degrade to absent with a warning.
func ingestTimeline(snap *Snapshot, cols columnIndex, record []string, itemID string, line int, opts Options) {
	tl := snap.Timelines[itemID]
	if tl == nil {
		tl = &chain.Timeline{}
		snap.Timelines[itemID] = tl
	}

	if tl.Opportunity == "" {
		tl.Opportunity = cols.field(record, colOpportunity)
	}

	setDate(&tl.Start, cols.field(record, colStartDate), colStartDate, line, opts)
	setDate(&tl.Target, cols.field(record, colTargetDate), colTargetDate, line, opts)
	setDate(&tl.Closed, cols.field(record, colClosedDate), colClosedDate, line, opts)
}

// setDate parses a date cell into dest unless dest is already set. A
// parse failure warns and leaves dest absent; it is never fatal.
func setDate(dest **time.Time, value, column string, line int, opts Options) {
	if *dest != nil || value == "" {
		return
	}
	t, err := ParseDate(value, opts.DateFormats)
	if err != nil {
		fmt.Fprintf(opts.warnWriter(), "warning: row %d: %s: %v\n", line, column, err)
		return
	}
	*dest = t
}
