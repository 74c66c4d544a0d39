package main

import (
	"testing"
	"time"
)

func TestArchiveName(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 9, 0, time.UTC)

	tests := []struct {
		name      string
		prefix    string
		inputName string
		expected  string
	}{
		{"default layout", "processed_problems/", "problems.txt", "processed_problems/problems_20240305_143009.txt"},
		{"no prefix", "", "problems.txt", "problems_20240305_143009.txt"},
		{"nested input keeps base name only", "archive/", "inputs/problems.txt", "archive/problems_20240305_143009.txt"},
		{"other extension stripped", "done/", "batch.dat", "done/batch_20240305_143009.txt"},
		{"no extension", "done/", "problems", "done/problems_20240305_143009.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArchiveName(tt.prefix, tt.inputName, ts)
			if got != tt.expected {
				t.Errorf("ArchiveName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
