package config

// File represents the structure of the debugdump.yaml configuration file.
type File struct {
	Backend   string      `yaml:"backend"`
	Inventory string      `yaml:"inventory"`
	RPM       RPMDTO      `yaml:"rpm"`
	Excludes  []string    `yaml:"excludes"`
	Restore   *RestoreDTO `yaml:"restore"`
}

// RPMDTO names the binaries used by the rpm backend.
type RPMDTO struct {
	RPM string `yaml:"rpm"`
	DNF string `yaml:"dnf"`
}

// RestoreDTO holds restore defaults.
type RestoreDTO struct {
	FilterTypes []string `yaml:"filter_types"`
}
