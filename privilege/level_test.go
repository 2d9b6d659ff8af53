package privilege

import (
	"testing"

	"github.com/skillsenselab/grantkit/errors"
)

func TestAccessLevel_Satisfies(t *testing.T) {
	tests := []struct {
		held AccessLevel
		min  AccessLevel
		want bool
	}{
		{Read, Read, true},
		{Read, Write, false},
		{Write, Read, true},
		{Write, Execute, false},
		{Execute, Write, true},
		{Execute, Delete, false},
		{Delete, Read, true},
		{Delete, Delete, true},
		{"admin", Read, false},
		{Read, "admin", false},
	}
	for _, tc := range tests {
		t.Run(string(tc.held)+"_vs_"+string(tc.min), func(t *testing.T) {
			if got := tc.held.Satisfies(tc.min); got != tc.want {
				t.Errorf("%s.Satisfies(%s) = %v, want %v", tc.held, tc.min, got, tc.want)
			}
		})
	}
}

func TestAccessLevel_RankOrder(t *testing.T) {
	// The order is defined by the rank table, not lexicographically:
	// delete sorts first alphabetically but ranks highest.
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Rank() >= levels[i].Rank() {
			t.Errorf("rank order broken at %s (%d) >= %s (%d)",
				levels[i-1], levels[i-1].Rank(), levels[i], levels[i].Rank())
		}
	}
	if Delete.Rank() != 4 || Read.Rank() != 1 {
		t.Errorf("rank table changed: read=%d delete=%d", Read.Rank(), Delete.Rank())
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		got, err := ParseLevel(string(l))
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l, got, err)
		}
	}

	_, err := ParseLevel("owner")
	if !errors.HasCode(err, errors.ErrCodeUnknownLevel) {
		t.Errorf("ParseLevel(owner) error = %v, want UNKNOWN_LEVEL", err)
	}
	if _, err := ParseLevel("Read"); err == nil {
		t.Error("ParseLevel is case-sensitive; no normalization is performed")
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		input   string
		want    Domain
		wantErr bool
	}{
		{"account", DomainAccount, false},
		{"project", DomainProject, false},
		{"org", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDomain(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDomain(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseDomain(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
