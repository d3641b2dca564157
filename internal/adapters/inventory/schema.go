package inventory

// File is the on-disk inventory document.
type File struct {
	Host      HostDTO        `yaml:"host"`
	Installed []InstalledDTO `yaml:"installed"`
	Repos     []RepoDTO      `yaml:"repos"`
}

// HostDTO describes the simulated system.
type HostDTO struct {
	Hostname   string   `yaml:"hostname,omitempty"`
	Release    string   `yaml:"release,omitempty"`
	Machine    string   `yaml:"machine,omitempty"`
	Arch       string   `yaml:"arch,omitempty"`
	BaseArch   string   `yaml:"basearch,omitempty"`
	ReleaseVer string   `yaml:"releasever,omitempty"`
	RPMVersion string   `yaml:"rpm_version,omitempty"`
	DNFVersion string   `yaml:"dnf_version,omitempty"`
	Plugins    []string `yaml:"plugins,omitempty"`
	Excludes   []string `yaml:"excludes,omitempty"`
}

// InstalledDTO is an installed package and its dependency metadata.
type InstalledDTO struct {
	Package   string   `yaml:"package"`
	Provides  []string `yaml:"provides,omitempty"`
	Requires  []string `yaml:"requires,omitempty"`
	Conflicts []string `yaml:"conflicts,omitempty"`
}

// RepoDTO is a repository and the packages it offers.
type RepoDTO struct {
	ID         string   `yaml:"id"`
	Disabled   bool     `yaml:"disabled,omitempty"`
	Metalink   string   `yaml:"metalink,omitempty"`
	Mirrorlist string   `yaml:"mirrorlist,omitempty"`
	BaseURLs   []string `yaml:"baseurl,omitempty"`
	Excludes   []string `yaml:"excludes,omitempty"`
	// Error makes every listing of the repository fail with this message.
	Error    string   `yaml:"error,omitempty"`
	Packages []string `yaml:"packages,omitempty"`
}
