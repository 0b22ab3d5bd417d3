package version

import (
	"strings"
	"testing"
)

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2024-03-01",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2024-03-02",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2025-03-01",
			expected: 365,
		},
		{
			name:     "leap year included",
			date:     "2028-03-01",
			expected: 1461,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2024-02-29",
			wantError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			orig := BuildDate
			defer func() { BuildDate = orig }()
			BuildDate = tt.date

			id, err := CalculateBuildID()
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error for date %q, got id %d", tt.date, id)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if id != tt.expected {
				t.Errorf("build id = %d, want %d", id, tt.expected)
			}
		})
	}
}

func TestInfo_UnsetBuildDate(t *testing.T) {
	orig := BuildDate
	defer func() { BuildDate = orig }()
	BuildDate = ""

	info := Info()
	if info.Calculated {
		t.Error("Calculated must be false without BuildDate")
	}
	if info.Error == "" {
		t.Error("Error must be populated without BuildDate")
	}
	if !strings.HasPrefix(String(), "Build unknown") {
		t.Errorf("String() = %q, want Build unknown prefix", String())
	}
}

func TestString_FullBuildInfo(t *testing.T) {
	origDate, origCommit, origBranch := BuildDate, BuildCommit, BuildBranch
	defer func() { BuildDate, BuildCommit, BuildBranch = origDate, origCommit, origBranch }()

	BuildDate = "2024-03-02"
	BuildCommit = "abc1234"
	BuildBranch = "main"

	s := String()
	if !strings.Contains(s, "Build 1") || !strings.Contains(s, "abc1234") || !strings.Contains(s, "main") {
		t.Errorf("String() = %q", s)
	}
}
