package inventory

import "go.trai.ch/debugdump/internal/core/domain"

// Matches reports whether the install spec selects pkg. Accepted forms are
// name, name.arch, and name-[epoch:]version-release with an optional .arch,
// where an absent epoch matches epoch 0.
func Matches(spec string, pkg domain.Package) bool {
	if spec == pkg.Name || spec == pkg.Name+"."+pkg.Arch {
		return true
	}

	vr := pkg.Version + "-" + pkg.Release
	evrs := []string{pkg.Name + "-" + epochOrZero(pkg.Epoch) + ":" + vr}
	if pkg.Epoch == "" || pkg.Epoch == "0" {
		evrs = append(evrs, pkg.Name+"-"+vr)
	}
	for _, nevr := range evrs {
		if spec == nevr || spec == nevr+"."+pkg.Arch {
			return true
		}
	}
	return false
}

func epochOrZero(epoch string) string {
	if epoch == "" {
		return "0"
	}
	return epoch
}
