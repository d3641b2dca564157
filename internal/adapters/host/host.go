// Package host reads kernel identification from the running system.
package host

import (
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Uname holds the fields of uname(2) that dumps report.
type Uname struct {
	Nodename string
	Release  string
	Machine  string
}

// ReadUname calls uname(2).
func ReadUname() (Uname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Uname{}, zerr.Wrap(domain.ErrHostInfoFailed, "uname failed: "+err.Error())
	}
	return Uname{
		Nodename: unix.ByteSliceToString(u.Nodename[:]),
		Release:  unix.ByteSliceToString(u.Release[:]),
		Machine:  unix.ByteSliceToString(u.Machine[:]),
	}, nil
}

var baseArches = map[string]string{
	"i386":    "i386",
	"i486":    "i386",
	"i586":    "i386",
	"i686":    "i386",
	"athlon":  "i386",
	"x86_64":  "x86_64",
	"amd64":   "x86_64",
	"aarch64": "aarch64",
	"armv7l":  "armhfp",
	"armv7hl": "armhfp",
	"ppc64le": "ppc64le",
	"ppc64":   "ppc64",
	"s390x":   "s390x",
	"riscv64": "riscv64",
	"noarch":  "noarch",
}

// BaseArch maps an rpm architecture to the base architecture used in
// repository URLs. Unknown architectures map to themselves.
func BaseArch(arch string) string {
	if base, ok := baseArches[arch]; ok {
		return base
	}
	return arch
}
