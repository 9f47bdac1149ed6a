package kasiski

import (
	"errors"
	"reflect"
	"testing"
)

func TestPatternDistances(t *testing.T) {
	tests := []struct {
		name     string
		table    PatternTable
		expected []int
	}{
		{
			name:     "consistent spacing kept",
			table:    PatternTable{"abc": {0, 10, 20}},
			expected: []int{10},
		},
		{
			name:     "inconsistent spacing dropped",
			table:    PatternTable{"abc": {0, 10, 25}},
			expected: []int{},
		},
		{
			name:     "periods deduplicated",
			table:    PatternTable{"abc": {0, 12}, "def": {3, 15}, "ghi": {1, 9}},
			expected: []int{8, 12},
		},
		{
			name:     "empty table",
			table:    PatternTable{},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PatternDistances(tt.table)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFactors(t *testing.T) {
	tests := []struct {
		n        int
		expected []int
	}{
		{1, []int{1}},
		{12, []int{1, 2, 3, 4, 6, 12}},
		{13, []int{1, 13}},
		{16, []int{1, 2, 4, 8, 16}},
	}

	for _, tt := range tests {
		if got := Factors(tt.n); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Factors(%d): expected %v, got %v", tt.n, tt.expected, got)
		}
	}
}

func TestIntersectFactors(t *testing.T) {
	tests := []struct {
		name     string
		periods  []int
		expected []int
	}{
		{"two periods", []int{12, 8}, []int{4, 2, 1}},
		{"single period", []int{16}, []int{16, 8, 4, 2, 1}},
		{"coprime periods", []int{9, 8}, []int{1}},
		{"three periods", []int{12, 18, 24}, []int{6, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntersectFactors(tt.periods)
			if err != nil {
				t.Fatalf("intersect failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIntersectFactorsEmpty(t *testing.T) {
	if _, err := IntersectFactors(nil); !errors.Is(err, ErrNoConsistentPeriod) {
		t.Errorf("expected ErrNoConsistentPeriod, got %v", err)
	}
}
