package commands

// Flag names
const (
	FlagPrefer   = "prefer"
	FlagShell    = "shell"
	FlagTimeout  = "timeout"
	FlagStrict   = "strict"
	FlagDetected = "detected"
	FlagShort    = "short"
)

// Error messages
const (
	ErrContainerUnavailable     = "application not initialized"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorChecksFailed       = "one or more diagnostics failed"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
)
