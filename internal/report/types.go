// Package report defines the persisted record of an analysis run and
// the JSON Lines writer that stores it.
package report

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/scytale-project/scytale/internal/kasiski"
)

// Confidence grades how much weight an analyst should give a report.
// The values are normalised to lowercase short codes for stable JSON
// encoding.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "med"
	ConfidenceHigh   Confidence = "high"
)

// SchemaVersion captures the report schema version persisted to disk.
const SchemaVersion = "0.1"

var confidenceSet = map[Confidence]struct{}{
	ConfidenceLow:    {},
	ConfidenceMedium: {},
	ConfidenceHigh:   {},
}

// MarshalJSON ensures confidences are always emitted as quoted strings.
func (c Confidence) MarshalJSON() ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON performs strict validation so typos surface when loading
// persisted reports.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed := Confidence(strings.ToLower(strings.TrimSpace(raw)))
	if err := parsed.validate(); err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Confidence) validate() error {
	if _, ok := confidenceSet[c]; !ok {
		return fmt.Errorf("invalid confidence: %q", c)
	}
	return nil
}

// rank orders confidences for sorting, highest first.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

// Timestamp enforces RFC3339 timestamps when encoding reports to disk.
type Timestamp time.Time

// NewTimestamp normalises the input time before persisting it.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp(t.UTC().Truncate(time.Second))
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// MarshalJSON renders the timestamp using time.RFC3339. Zero values
// encode as an empty string so Validate can flag them explicitly.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(tt.UTC().Format(time.RFC3339))
}

// UnmarshalJSON enforces RFC3339 timestamps when reading persisted
// reports.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid ts timestamp: %w", err)
	}
	*t = NewTimestamp(parsed)
	return nil
}

var crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// NewID generates a ULID suitable for persisting as a report identifier.
func NewID() string {
	buf := make([]byte, 16)
	ts := uint64(time.Now().UTC().UnixMilli())
	for i := 5; i >= 0; i-- {
		buf[i] = byte(ts & 0xFF)
		ts >>= 8
	}
	if _, err := io.ReadFull(rand.Reader, buf[6:]); err != nil {
		// Fall back to time-derived bytes so restricted environments
		// still get an identifier.
		nano := uint64(time.Now().UTC().UnixNano())
		for i := 6; i < len(buf); i++ {
			buf[i] = byte(nano & 0xFF)
			nano >>= 8
		}
	}
	return crockford.EncodeToString(buf)
}

func decodeULID(id string) ([]byte, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("ulid is empty")
	}
	if len(id) != 26 {
		return nil, fmt.Errorf("ulid must be 26 characters, got %d", len(id))
	}
	upper := strings.ToUpper(id)
	if upper != id {
		return nil, errors.New("ulid must be upper-case")
	}
	decoded, err := crockford.DecodeString(upper)
	if err != nil {
		return nil, fmt.Errorf("decode ulid: %w", err)
	}
	if len(decoded) != 16 {
		return nil, fmt.Errorf("decoded ulid length %d", len(decoded))
	}
	return decoded, nil
}

// Report is the persisted outcome of one analysis run.
type Report struct {
	Version    string                 `json:"version"`
	ID         string                 `json:"id"`
	Method     string                 `json:"method"`
	Summary    string                 `json:"summary"`
	Source     string                 `json:"source,omitempty"`
	KeyLengths []int                  `json:"key_lengths,omitempty"`
	Candidates []kasiski.KeyCandidate `json:"candidates,omitempty"`
	Confidence Confidence             `json:"confidence"`
	AnalyzedAt Timestamp              `json:"ts"`
	Metadata   map[string]string      `json:"meta,omitempty"`
}

// Validate performs the sanity checks applied before a report is
// persisted or accepted from disk.
func (r Report) Validate() error {
	if strings.TrimSpace(r.Version) == "" {
		return errors.New("version is required")
	}
	if strings.TrimSpace(r.Version) != SchemaVersion {
		return fmt.Errorf("unsupported version %q", r.Version)
	}
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("report id is required")
	}
	if _, err := decodeULID(strings.TrimSpace(r.ID)); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	if strings.TrimSpace(r.Method) == "" {
		return errors.New("method is required")
	}
	if strings.TrimSpace(r.Summary) == "" {
		return errors.New("summary is required")
	}
	if err := r.Confidence.validate(); err != nil {
		return err
	}
	if r.AnalyzedAt.IsZero() {
		return errors.New("ts is required")
	}
	return nil
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	copied := r
	if len(r.KeyLengths) > 0 {
		copied.KeyLengths = append([]int(nil), r.KeyLengths...)
	}
	if len(r.Candidates) > 0 {
		copied.Candidates = append([]kasiski.KeyCandidate(nil), r.Candidates...)
	}
	if len(r.Metadata) > 0 {
		copied.Metadata = make(map[string]string, len(r.Metadata))
		for k, v := range r.Metadata {
			copied.Metadata[k] = v
		}
	}
	return copied
}

// Sort orders reports for presentation: higher confidence first, then
// newer analyses, then ID as the final tiebreak so the order is
// deterministic.
func Sort(reports []Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Confidence.rank() != reports[j].Confidence.rank() {
			return reports[i].Confidence.rank() > reports[j].Confidence.rank()
		}
		ti, tj := reports[i].AnalyzedAt.Time(), reports[j].AnalyzedAt.Time()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return reports[i].ID < reports[j].ID
	})
}
