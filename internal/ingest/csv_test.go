package ingest

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

const relationshipHeader = "WORK_ITEM_ID,WORK_ITEM_RELATIONSHIP_ID,WORK_ITEM_RELATIONSHIP_TYPE,WORK_ITEM_TYPE_NAME,WORK_ITEM_RELATIONSHIP_STATE_NAME"

func TestReadCSV_Relations(t *testing.T) {
	t.Parallel()

	input := relationshipHeader + "\n" +
		"a,b,Successor,Feature,Active\n" +
		"a,c,Successor,Feature,Active\n" +
		"b,a,Predecessor,Task,Closed\n"

	snap, err := ReadCSV(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	a := snap.Relations["a"]
	if a.Type != "Feature" || a.State != "Active" {
		t.Errorf("a = %+v, want Feature/Active", a)
	}
	if !reflect.DeepEqual(a.Successors, []string{"b", "c"}) {
		t.Errorf("a successors = %v, want [b c]", a.Successors)
	}

	b := snap.Relations["b"]
	if !reflect.DeepEqual(b.Predecessors, []string{"a"}) {
		t.Errorf("b predecessors = %v, want [a]", b.Predecessors)
	}
	if len(b.Successors) != 0 {
		t.Errorf("b successors = %v, want none", b.Successors)
	}
}

func TestReadCSV_FirstRowWinsAttributes(t *testing.T) {
	t.Parallel()

	input := relationshipHeader + "\n" +
		"a,b,Successor,Feature,Active\n" +
		"a,c,Successor,Epic,Closed\n"

	snap, err := ReadCSV(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	a := snap.Relations["a"]
	if a.Type != "Feature" || a.State != "Active" {
		t.Errorf("a = %+v, want the first row's Feature/Active", a)
	}
}

func TestReadCSV_TemporalColumns(t *testing.T) {
	t.Parallel()

	input := relationshipHeader + ",START_DATE,TARGET_DATE,CLOSED_DATE,OPPORTUNITY\n" +
		"a,b,Successor,Feature,Active,2026-01-01,2026-01-10,,OPP-1\n" +
		"a,c,Successor,Feature,Active,2026-02-02,2026-02-20,2026-02-20,OPP-2\n"

	snap, err := ReadCSV(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	tl := snap.Timelines["a"]
	if tl == nil {
		t.Fatal("no timeline for a")
	}

	// The first row caught the start and target, so the second row
	// cannot overwrite them; the close was empty on row one and is
	// taken from row two.
	wantStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	wantClose := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	if tl.Start == nil || !tl.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", tl.Start, wantStart)
	}
	if tl.Closed == nil || !tl.Closed.Equal(wantClose) {
		t.Errorf("Closed = %v, want %v", tl.Closed, wantClose)
	}
	if tl.Opportunity != "OPP-1" {
		t.Errorf("Opportunity = %q, want OPP-1", tl.Opportunity)
	}
}

func TestReadCSV_UnparseableDateWarnsAndContinues(t *testing.T) {
	t.Parallel()

	input := relationshipHeader + ",TARGET_DATE\n" +
		"a,b,Successor,Feature,Active,not-a-date\n"

	var warnings bytes.Buffer
	snap, err := ReadCSV(strings.NewReader(input), Options{Warn: &warnings})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if snap.Timelines["a"].Target != nil {
		t.Errorf("Target = %v, want nil after parse failure", snap.Timelines["a"].Target)
	}
	if !strings.Contains(warnings.String(), "not-a-date") {
		t.Errorf("warning output %q does not mention the bad value", warnings.String())
	}
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		wantErr string
	}{
		"missing required column": {
			input:   "WORK_ITEM_ID,WORK_ITEM_RELATIONSHIP_ID\na,b\n",
			wantErr: "missing required column",
		},
		"empty item id": {
			input:   relationshipHeader + "\n,b,Successor,Feature,Active\n",
			wantErr: "empty WORK_ITEM_ID",
		},
		"empty input": {
			input:   "",
			wantErr: "reading CSV header",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadCSV(strings.NewReader(tc.input), Options{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestReadCSV_ShortRows(t *testing.T) {
	t.Parallel()

	// Rows shorter than the header leave the trailing columns absent.
	input := relationshipHeader + ",TARGET_DATE\n" +
		"a,b,Successor,Feature,Active\n"

	snap, err := ReadCSV(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if snap.Timelines["a"].Target != nil {
		t.Errorf("Target = %v, want nil for a short row", snap.Timelines["a"].Target)
	}
}

func TestReadCSV_UnknownRelationshipTypeIgnored(t *testing.T) {
	t.Parallel()

	input := relationshipHeader + "\n" +
		"a,b,Related,Feature,Active\n"

	snap, err := ReadCSV(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	a := snap.Relations["a"]
	if len(a.Predecessors) != 0 || len(a.Successors) != 0 {
		t.Errorf("a = %+v, want no edges for an unknown relationship type", a)
	}
	if a.Type != "Feature" {
		t.Errorf("a.Type = %q, want the row still registers the item", a.Type)
	}
}
