package domain

import "time"

// Config mirrors ~/.cpy-helpers/config.yaml.
type Config struct {
	ConfigFormatVersion string         `yaml:"config_format_version"`
	Probe               ProbeSettings  `yaml:"probe"`
	Output              OutputSettings `yaml:"output"`
}

// ProbeSettings configures bus scanning and board selection.
type ProbeSettings struct {
	Prefer         string `yaml:"prefer"`
	Backend        string `yaml:"backend"`
	TimeoutSeconds int    `yaml:"timeout"`
	SysfsRoot      string `yaml:"sysfs_root"`
}

// OutputSettings controls how the assignment is rendered.
type OutputSettings struct {
	// Shell overrides $SHELL when set.
	Shell string `yaml:"shell"`
}

// Timeout returns the configured scan timeout, falling back to DefaultProbeTimeout.
func (p ProbeSettings) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return DefaultProbeTimeout
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}
