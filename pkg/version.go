package modbump

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/mod/semver"
)

var one = big.NewInt(1)

// Version is a plain major.minor.patch version with no prerelease or build
// metadata. Components are unbounded non-negative integers.
type Version struct {
	Major *big.Int
	Minor *big.Int
	Patch *big.Int
}

// ParseVersion parses a string of the exact form "<digits>.<digits>.<digits>".
// Leading zeros are accepted and dropped, so "0.1.09" parses to patch 9.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, &FormatError{Raw: s, Reason: fmt.Sprintf("expected 3 components, got %d", len(parts))}
	}

	var nums [3]*big.Int
	for i, p := range parts {
		if !isDigits(p) {
			return Version{}, &FormatError{Raw: s, Reason: fmt.Sprintf("component %d is not numeric", i+1)}
		}
		n, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return Version{}, &FormatError{Raw: s, Reason: fmt.Sprintf("component %d is not numeric", i+1)}
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the version as "major.minor.patch" without padding.
func (v Version) String() string {
	return fmt.Sprintf("%s.%s.%s", v.Major, v.Minor, v.Patch)
}

// Semver renders the version in the canonical "v"-prefixed form understood by
// golang.org/x/mod/semver.
func (v Version) Semver() string {
	return "v" + v.String()
}

// BumpPatch returns a copy of v with the patch component incremented by one.
// Major and minor are never touched.
func (v Version) BumpPatch() (Version, error) {
	next := Version{
		Major: new(big.Int).Set(v.Major),
		Minor: new(big.Int).Set(v.Minor),
		Patch: new(big.Int).Add(v.Patch, one),
	}
	if semver.Compare(next.Semver(), v.Semver()) <= 0 {
		return Version{}, &FormatError{Raw: v.String(), Reason: "bumped version does not sort after the current one"}
	}
	return next, nil
}
