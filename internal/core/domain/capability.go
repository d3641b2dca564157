package domain

import "strings"

// Sense is the comparison part of a versioned dependency.
type Sense uint8

const (
	// SenseLess matches older versions.
	SenseLess Sense = 1 << iota
	// SenseGreater matches newer versions.
	SenseGreater
	// SenseEqual matches the exact version.
	SenseEqual
)

var senseOperators = map[string]Sense{
	"<":  SenseLess,
	"<=": SenseLess | SenseEqual,
	"=":  SenseEqual,
	"==": SenseEqual,
	">=": SenseGreater | SenseEqual,
	">":  SenseGreater,
}

// Capability is a provide or a requirement such as "libc.so.6()(64bit)" or
// "bash >= 5.0". A capability without a sense matches any version.
type Capability struct {
	Name  string
	Sense Sense
	EVR   EVR
}

// ParseCapability splits "name [op evr]". Rich dependencies and anything
// else it does not recognise become an unversioned capability named after
// the whole expression.
func ParseCapability(expr string) Capability {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "(") {
		return Capability{Name: expr}
	}

	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return Capability{Name: expr}
	}
	sense, ok := senseOperators[fields[1]]
	if !ok {
		return Capability{Name: expr}
	}
	return Capability{Name: fields[0], Sense: sense, EVR: ParseEVR(fields[2])}
}

// ProvideOf returns the capability every package implicitly provides:
// name(marker) = evr for arch-specific packages and name = evr otherwise.
func ProvideOf(p Package) []Capability {
	self := Capability{Name: p.Name, Sense: SenseEqual, EVR: p.EVRTriple()}
	caps := []Capability{self}
	for marker, arch := range archMarkers {
		if arch == p.Arch {
			qualified := self
			qualified.Name = p.Name + "(" + marker + ")"
			caps = append(caps, qualified)
		}
	}
	return caps
}

// Satisfies reports whether provide c fulfils requirement req, using rpm's
// range overlap rules.
func (c Capability) Satisfies(req Capability) bool {
	if c.Name != req.Name {
		return false
	}
	if c.Sense == 0 || req.Sense == 0 {
		return true
	}

	switch cmp := CompareEVR(c.EVR, req.EVR); {
	case cmp < 0:
		return c.Sense&SenseGreater != 0 || req.Sense&SenseLess != 0
	case cmp > 0:
		return c.Sense&SenseLess != 0 || req.Sense&SenseGreater != 0
	default:
		return (c.Sense&SenseEqual != 0 && req.Sense&SenseEqual != 0) ||
			(c.Sense&SenseLess != 0 && req.Sense&SenseLess != 0) ||
			(c.Sense&SenseGreater != 0 && req.Sense&SenseGreater != 0)
	}
}
