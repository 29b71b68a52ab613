package conf

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Snapshot is the resolved configuration of one process run.
// It has no setters; copies are independent.
type Snapshot struct {
	logLevel   string
	region     string
	hasRegion  bool
	readOnly   bool
	telemetry  bool
	workingDir string
	profile    string
	hasProfile bool
}

// LogLevel returns the raw log verbosity label.
func (s Snapshot) LogLevel() string { return s.logLevel }

// Region returns the default AWS region and whether one was configured.
func (s Snapshot) Region() (string, bool) { return s.region, s.hasRegion }

// ReadOnly reports whether only read operations are allowed.
func (s Snapshot) ReadOnly() bool { return s.readOnly }

// Telemetry reports whether telemetry is opted in.
func (s Snapshot) Telemetry() bool { return s.telemetry }

// WorkingDir returns the working directory. It is never empty.
func (s Snapshot) WorkingDir() string { return s.workingDir }

// Profile returns the AWS profile name and whether one was configured.
func (s Snapshot) Profile() (string, bool) { return s.profile, s.hasProfile }

// SlogLevel maps LogLevel onto a slog.Level. Unknown labels map to Warn.
func (s Snapshot) SlogLevel() slog.Level {
	switch strings.ToUpper(s.logLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR", "CRITICAL":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

type snapshotJSON struct {
	LogLevel           string  `json:"log_level"`
	Region             *string `json:"region"`
	ReadOperationsOnly bool    `json:"read_operations_only"`
	Telemetry          bool    `json:"telemetry"`
	WorkingDirectory   string  `json:"working_directory"`
	ProfileName        *string `json:"profile_name"`
}

// MarshalJSON encodes absent optional values as null.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := snapshotJSON{
		LogLevel:           s.logLevel,
		ReadOperationsOnly: s.readOnly,
		Telemetry:          s.telemetry,
		WorkingDirectory:   s.workingDir,
	}
	if s.hasRegion {
		region := s.region
		out.Region = &region
	}
	if s.hasProfile {
		profile := s.profile
		out.ProfileName = &profile
	}
	return json.Marshal(out)
}
