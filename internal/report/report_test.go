package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/scytale-project/scytale/internal/kasiski"
)

func validReport() Report {
	return Report{
		Version:    SchemaVersion,
		ID:         NewID(),
		Method:     "kasiski",
		Summary:    "key length 3, best key dog",
		Source:     "intercept-014.txt",
		KeyLengths: []int{3, 1},
		Candidates: []kasiski.KeyCandidate{{Key: "dog", Length: 3, ChiSquared: 1.07}},
		Confidence: ConfidenceHigh,
		AnalyzedAt: NewTimestamp(time.Now()),
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	if len(id) != 26 {
		t.Fatalf("expected 26-character ULID, got %d: %q", len(id), id)
	}
	if _, err := decodeULID(id); err != nil {
		t.Errorf("generated id does not decode: %v", err)
	}
	if id == NewID() && id == NewID() {
		t.Error("ids should not repeat")
	}
}

func TestReportValidate(t *testing.T) {
	if err := validReport().Validate(); err != nil {
		t.Fatalf("valid report rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Report)
	}{
		{"missing version", func(r *Report) { r.Version = "" }},
		{"wrong version", func(r *Report) { r.Version = "9.9" }},
		{"missing id", func(r *Report) { r.ID = "" }},
		{"malformed id", func(r *Report) { r.ID = "not-a-ulid" }},
		{"lowercase id", func(r *Report) { r.ID = strings.ToLower(r.ID) }},
		{"missing method", func(r *Report) { r.Method = "" }},
		{"missing summary", func(r *Report) { r.Summary = " " }},
		{"bad confidence", func(r *Report) { r.Confidence = "certain" }},
		{"missing timestamp", func(r *Report) { r.AnalyzedAt = Timestamp{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReport()
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfidenceJSON(t *testing.T) {
	data, err := json.Marshal(ConfidenceMedium)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"med"` {
		t.Errorf("expected \"med\", got %s", data)
	}

	var c Confidence
	if err := json.Unmarshal([]byte(`" HIGH "`), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if c != ConfidenceHigh {
		t.Errorf("expected high, got %q", c)
	}

	if err := json.Unmarshal([]byte(`"certain"`), &c); err == nil {
		t.Error("expected error for unknown confidence")
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 8, 29, 10, 30, 0, 500, time.UTC))
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-08-29T10:30:00Z"` {
		t.Errorf("unexpected encoding %s", data)
	}

	var parsed Timestamp
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatal(err)
	}
	if !parsed.Time().Equal(ts.Time()) {
		t.Errorf("round trip changed timestamp: %v vs %v", parsed.Time(), ts.Time())
	}

	if err := json.Unmarshal([]byte(`"29/08/2026"`), &parsed); err == nil {
		t.Error("expected error for non-RFC3339 timestamp")
	}
}

func TestClone(t *testing.T) {
	original := validReport()
	original.Metadata = map[string]string{"analyst": "bmsingleton"}

	copied := original.Clone()
	copied.KeyLengths[0] = 99
	copied.Candidates[0].Key = "cat"
	copied.Metadata["analyst"] = "other"

	if original.KeyLengths[0] == 99 {
		t.Error("clone shares key lengths")
	}
	if original.Candidates[0].Key == "cat" {
		t.Error("clone shares candidates")
	}
	if original.Metadata["analyst"] == "other" {
		t.Error("clone shares metadata")
	}
}

func TestSort(t *testing.T) {
	older := NewTimestamp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := NewTimestamp(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	reports := []Report{
		{ID: "B", Confidence: ConfidenceLow, AnalyzedAt: newer},
		{ID: "A", Confidence: ConfidenceHigh, AnalyzedAt: older},
		{ID: "C", Confidence: ConfidenceHigh, AnalyzedAt: newer},
		{ID: "D", Confidence: ConfidenceMedium, AnalyzedAt: older},
	}
	Sort(reports)

	gotOrder := make([]string, len(reports))
	for i, r := range reports {
		gotOrder[i] = r.ID
	}
	want := []string{"C", "A", "D", "B"}
	for i := range want {
		if gotOrder[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, gotOrder)
		}
	}
}
