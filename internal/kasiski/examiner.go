package kasiski

import (
	"fmt"

	"github.com/scytale-project/scytale/internal/logging"
)

const (
	// DefaultMinPatternLength is the shortest pattern worth indexing.
	// Digraphs repeat by chance too often to carry a signal.
	DefaultMinPatternLength = 3

	// DefaultMaxPatternLength caps the widening stage.
	DefaultMaxPatternLength = 6
)

// Examiner runs the Kasiski examination end to end. The zero value is
// not usable; construct with NewExaminer.
type Examiner struct {
	minPatternLength int
	maxPatternLength int
	logger           *logging.AuditLogger
}

// ExaminerOption adjusts an Examiner.
type ExaminerOption func(*Examiner)

// WithPatternLengths overrides the pattern length bounds.
func WithPatternLengths(min, max int) ExaminerOption {
	return func(e *Examiner) {
		e.minPatternLength = min
		e.maxPatternLength = max
	}
}

// WithLogger attaches an audit logger for stage diagnostics.
func WithLogger(logger *logging.AuditLogger) ExaminerOption {
	return func(e *Examiner) {
		e.logger = logger
	}
}

// NewExaminer creates an examiner with the default pattern bounds.
func NewExaminer(opts ...ExaminerOption) (*Examiner, error) {
	e := &Examiner{
		minPatternLength: DefaultMinPatternLength,
		maxPatternLength: DefaultMaxPatternLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.minPatternLength < 2 {
		return nil, fmt.Errorf("minimum pattern length must be at least 2, got %d", e.minPatternLength)
	}
	if e.maxPatternLength < e.minPatternLength {
		return nil, fmt.Errorf("maximum pattern length %d is below minimum %d",
			e.maxPatternLength, e.minPatternLength)
	}
	return e, nil
}

// Examine derives the candidate key lengths of cryptText, longest
// first. The pipeline indexes repeating patterns, widens and prunes
// them, measures their periods, and intersects the period factors.
func (e *Examiner) Examine(cryptText string) ([]int, error) {
	e.emit(logging.EventExaminationStart, map[string]any{
		"text_length":        len(cryptText),
		"min_pattern_length": e.minPatternLength,
		"max_pattern_length": e.maxPatternLength,
	})

	index := NewPatternIndex(cryptText)
	index.Initialize(e.minPatternLength)
	e.emit(logging.EventPatternsIndexed, map[string]any{"patterns": len(index.Table())})

	index.Maximize(e.maxPatternLength)
	e.emit(logging.EventPatternsWidened, map[string]any{"patterns": len(index.Table())})

	index.Deduplicate()
	e.emit(logging.EventPatternsPruned, map[string]any{"patterns": len(index.Table())})

	periods := PatternDistances(index.Table())
	e.emit(logging.EventPeriodsComputed, map[string]any{"periods": periods})

	lengths, err := IntersectFactors(periods)
	if err != nil {
		return nil, fmt.Errorf("examine: %w", err)
	}
	e.emit(logging.EventKeyLengths, map[string]any{"key_lengths": lengths})

	return lengths, nil
}

func (e *Examiner) emit(eventType logging.EventType, metadata map[string]any) {
	_ = e.logger.Emit(logging.AuditEvent{
		EventType: eventType,
		Metadata:  metadata,
	})
}
