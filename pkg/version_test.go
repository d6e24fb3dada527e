package modbump

import (
	"errors"
	"math/big"
	"testing"
)

// TestParseAndFormatVersion tests ParseVersion and String together.
func TestParseAndFormatVersion(t *testing.T) {
	tests := []struct {
		input               string
		major, minor, patch string
		rendered            string
	}{
		{"1.2.3", "1", "2", "3", "1.2.3"},
		{"0.0.0", "0", "0", "0", "0.0.0"},
		{"10.20.30", "10", "20", "30", "10.20.30"},
		{"0.1.09", "0", "1", "9", "0.1.9"},
		{"007.000.010", "7", "0", "10", "7.0.10"},
		{"1.2.99999999999999999999", "1", "2", "99999999999999999999", "1.2.99999999999999999999"},
		{"1.2.18446744073709551616", "1", "2", "18446744073709551616", "1.2.18446744073709551616"},
	}
	for _, tc := range tests {
		v, err := ParseVersion(tc.input)
		if err != nil {
			t.Errorf("ParseVersion(%q) returned error: %v", tc.input, err)
			continue
		}
		if v.Major.String() != tc.major || v.Minor.String() != tc.minor || v.Patch.String() != tc.patch {
			t.Errorf("ParseVersion(%q) = (%s, %s, %s), expected (%s, %s, %s)",
				tc.input, v.Major, v.Minor, v.Patch, tc.major, tc.minor, tc.patch)
		}
		if got := v.String(); got != tc.rendered {
			t.Errorf("ParseVersion(%q).String() = %q, expected %q", tc.input, got, tc.rendered)
		}
	}
}

func TestParseVersionRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"1.2",
		"1.2.3.4",
		"1.2.x",
		"1..3",
		"1.2.",
		".2.3",
		"v1.2.3",
		"+1.2.3",
		"-1.2.3",
		"1.2.3-rc1",
		"1.2.3+build5",
		" 1.2.3",
		"1.2.3 ",
		"1.2.٣",
	}
	for _, in := range inputs {
		_, err := ParseVersion(in)
		if err == nil {
			t.Errorf("ParseVersion(%q) expected error", in)
			continue
		}
		if !errors.Is(err, ErrMalformedVersion) {
			t.Errorf("ParseVersion(%q) error %v does not wrap ErrMalformedVersion", in, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Raw != in {
			t.Errorf("ParseVersion(%q) error %v does not carry the raw version", in, err)
		}
	}
}

// TestBumpPatch verifies that only the patch component moves.
func TestBumpPatch(t *testing.T) {
	tests := []struct {
		version  string
		expected string
	}{
		{"1.2.3", "1.2.4"},
		{"0.0.0", "0.0.1"},
		{"1.2.9", "1.2.10"},
		{"1.2.03", "1.2.4"},
		{"0.1.09", "0.1.10"},
		{"4.9.99", "4.9.100"},
		{"1.2.18446744073709551615", "1.2.18446744073709551616"},
		{"1.2.99999999999999999999", "1.2.100000000000000000000"},
		{"1.99999999999999999999.3", "1.99999999999999999999.4"},
	}
	for _, tc := range tests {
		v, err := ParseVersion(tc.version)
		if err != nil {
			t.Fatalf("ParseVersion(%q) returned error: %v", tc.version, err)
		}
		next, err := v.BumpPatch()
		if err != nil {
			t.Errorf("BumpPatch(%q) returned error: %v", tc.version, err)
			continue
		}
		if next.String() != tc.expected {
			t.Errorf("BumpPatch(%q) = %q, expected %q", tc.version, next, tc.expected)
		}
		if next.Major.Cmp(v.Major) != 0 || next.Minor.Cmp(v.Minor) != 0 {
			t.Errorf("BumpPatch(%q) changed major or minor: %s", tc.version, next)
		}
	}
}

// TestBumpPatchLeavesReceiver checks the bumped copy shares no state with the
// original.
func TestBumpPatchLeavesReceiver(t *testing.T) {
	v, err := ParseVersion("1.2.3")
	if err != nil {
		t.Fatal(err)
	}
	next, err := v.BumpPatch()
	if err != nil {
		t.Fatal(err)
	}
	next.Major.Add(next.Major, big.NewInt(5))
	if v.String() != "1.2.3" {
		t.Errorf("original version changed to %s", v)
	}
}

func TestSemver(t *testing.T) {
	v, err := ParseVersion("1.0.7")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Semver(); got != "v1.0.7" {
		t.Errorf("Semver() = %q, expected %q", got, "v1.0.7")
	}
}
