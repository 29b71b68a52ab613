package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/awslabs/aws-api-mcp-config/internal/platform"
)

// Environment variables read by the resolver.
const (
	LogLevelKey   = "FASTMCP_LOG_LEVEL"
	RegionKey     = "AWS_REGION"
	ReadOnlyKey   = "READ_OPERATIONS_ONLY"
	TelemetryKey  = "AWS_API_MCP_TELEMETRY"
	WorkingDirKey = "AWS_API_MCP_WORKING_DIR"
	ProfileKey    = "AWS_API_MCP_PROFILE_NAME"

	XDGRuntimeDirKey = "XDG_RUNTIME_DIR"
	TmpDirKey        = "TMPDIR"
)

const (
	ServerDirName   = "aws-api-mcp"
	WorkDirName     = "workdir"
	DefaultLogLevel = "WARNING"
)

// TruthyValues are the strings BoolFlag accepts as true, compared without case.
var TruthyValues = []string{"true", "yes", "1"}

// Resolver computes configuration from an Environment and a platform.
// A zero Resolver reads nothing and resolves paths for platform.Other.
type Resolver struct {
	Env      Environment
	Platform platform.OS
	// TempDir is the system temporary directory. os.TempDir() is used when empty.
	TempDir string
}

// NewResolver returns a Resolver bound to the running process.
func NewResolver() *Resolver {
	return &Resolver{
		Env:      OSEnvironment{},
		Platform: platform.Detect(),
		TempDir:  os.TempDir(),
	}
}

func (r *Resolver) lookup(key string) (string, bool) {
	if r.Env == nil {
		return "", false
	}
	return r.Env.LookupEnv(key)
}

func (r *Resolver) tempDir() string {
	if r.TempDir != "" {
		return r.TempDir
	}
	return os.TempDir()
}

// ServerDirectory returns the directory used for working and log data.
// The filesystem is not touched.
func (r *Resolver) ServerDirectory() string {
	switch r.Platform {
	case platform.Windows, platform.MacOS:
		return filepath.Join(r.tempDir(), ServerDirName)
	default:
		base := r.tempDir()
		for _, key := range []string{XDGRuntimeDirKey, TmpDirKey} {
			if v, _ := r.lookup(key); v != "" {
				base = v
				break
			}
		}
		return filepath.Join(base, ServerDirName)
	}
}

// BoolFlag reports whether the variable key holds a truthy value.
// An unset variable yields def. Values are not trimmed.
func (r *Resolver) BoolFlag(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	return isTruthy(v)
}

func isTruthy(v string) bool {
	for _, t := range TruthyValues {
		if strings.EqualFold(v, t) {
			return true
		}
	}
	return false
}

// Build resolves a Snapshot from the environment alone.
func (r *Resolver) Build() Snapshot {
	return r.resolve(configDTO{})
}

// resolve layers the environment over base, then over the literal defaults.
func (r *Resolver) resolve(base configDTO) Snapshot {
	s := Snapshot{logLevel: DefaultLogLevel}

	if base.LogLevel != nil {
		s.logLevel = *base.LogLevel
	}
	if v, ok := r.lookup(LogLevelKey); ok {
		s.logLevel = v
	}

	s.region, s.hasRegion = pick(r, RegionKey, base.Region)
	s.profile, s.hasProfile = pick(r, ProfileKey, base.ProfileName)

	s.readOnly = r.BoolFlag(ReadOnlyKey, orDefault(base.ReadOnly, false))
	s.telemetry = r.BoolFlag(TelemetryKey, orDefault(base.Telemetry, true))

	if v, _ := r.lookup(WorkingDirKey); v != "" {
		s.workingDir = v
	} else if base.WorkingDir != nil && *base.WorkingDir != "" {
		s.workingDir = *base.WorkingDir
	} else {
		s.workingDir = filepath.Join(r.ServerDirectory(), WorkDirName)
	}

	return s
}

func pick(r *Resolver, key string, fallback *string) (string, bool) {
	if v, ok := r.lookup(key); ok {
		return v, true
	}
	if fallback != nil {
		return *fallback, true
	}
	return "", false
}

func orDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
