package domain

import (
	"strings"

	rpmversion "github.com/knqyf263/go-rpm-version"
)

// CompareVersion compares two version or release strings with rpm's
// segment ordering. A tilde sorts before anything.
func CompareVersion(a, b string) int {
	return CompareEVR(EVR{Version: a}, EVR{Version: b})
}

// EVR is an epoch, version and release triple as found in dependency expressions.
// Release may be empty, in which case only epoch and version take part in comparisons.
type EVR struct {
	Epoch   string
	Version string
	Release string
}

// ParseEVR parses [epoch:]version[-release].
func ParseEVR(s string) EVR {
	var evr EVR
	if epoch, rest, ok := strings.Cut(s, ":"); ok && epoch != "" && strings.Trim(epoch, "0123456789") == "" {
		evr.Epoch = epoch
		s = rest
	}
	if dash := strings.LastIndexByte(s, '-'); dash >= 0 {
		evr.Version = s[:dash]
		evr.Release = s[dash+1:]
	} else {
		evr.Version = s
	}
	return evr
}

// EVRTriple returns the package's epoch, version and release.
func (p Package) EVRTriple() EVR {
	return EVR{Epoch: p.Epoch, Version: p.Version, Release: p.Release}
}

// CompareEVR compares two triples. The release is only compared when both sides carry one.
func CompareEVR(a, b EVR) int {
	left, right := a.epochVersion(), b.epochVersion()
	if a.Release != "" && b.Release != "" {
		left += "-" + a.Release
		right += "-" + b.Release
	}
	return rpmversion.NewVersion(left).Compare(rpmversion.NewVersion(right))
}

func (e EVR) epochVersion() string {
	epoch := e.Epoch
	if epoch == "" {
		epoch = "0"
	}
	return epoch + ":" + e.Version
}
