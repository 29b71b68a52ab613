package conf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigSource names the optional configuration files layered under the
// environment. Either field may be empty.
type ConfigSource struct {
	Path      string
	DropInDir string
}

// NewConfigSource returns a source for path with drop-ins in path + ".d".
func NewConfigSource(path string) *ConfigSource {
	if path == "" {
		return &ConfigSource{}
	}
	return &ConfigSource{Path: path, DropInDir: path + ".d"}
}

// configDTO holds one file layer. Nil fields were not set by the file.
type configDTO struct {
	LogLevel    *string `toml:"log-level"`
	Region      *string `toml:"region"`
	ReadOnly    *bool   `toml:"read-operations-only"`
	Telemetry   *bool   `toml:"telemetry"`
	WorkingDir  *string `toml:"working-dir"`
	ProfileName *string `toml:"profile-name"`
}

// merge applies the non-nil fields of o.
func (d *configDTO) merge(o configDTO) {
	if o.LogLevel != nil {
		d.LogLevel = o.LogLevel
	}
	if o.Region != nil {
		d.Region = o.Region
	}
	if o.ReadOnly != nil {
		d.ReadOnly = o.ReadOnly
	}
	if o.Telemetry != nil {
		d.Telemetry = o.Telemetry
	}
	if o.WorkingDir != nil {
		d.WorkingDir = o.WorkingDir
	}
	if o.ProfileName != nil {
		d.ProfileName = o.ProfileName
	}
}

// Read resolves a Snapshot with the layers:
// 1. Literal defaults
// 2. Main configuration file
// 3. Drop-in files
// 4. Environment
//
// A nil source is the same as Build.
func (r *Resolver) Read(cs *ConfigSource) (Snapshot, error) {
	if cs == nil {
		return r.Build(), nil
	}
	dto, err := cs.load()
	if err != nil {
		return Snapshot{}, err
	}
	return r.resolve(dto), nil
}

func (cs *ConfigSource) load() (configDTO, error) {
	var resolved configDTO

	if cs.Path != "" {
		data, err := os.ReadFile(cs.Path)
		if err != nil {
			if !os.IsNotExist(err) {
				return resolved, fmt.Errorf("failed to load %s: %w", cs.Path, err)
			}
		} else {
			dto, err := parseConfigDTO(string(data))
			if err != nil {
				// A present but malformed file is not silently ignored.
				return resolved, fmt.Errorf("failed to parse %s: %w", cs.Path, err)
			}
			resolved.merge(dto)
		}
	}

	dropIns, err := cs.parseDropInFiles()
	if err != nil {
		slog.Error("failed to load drop-in files", "error", err, "dir", cs.DropInDir)
		return resolved, err
	}
	for _, dto := range dropIns {
		resolved.merge(dto)
	}

	return resolved, nil
}

func parseConfigDTO(data string) (configDTO, error) {
	var dto configDTO

	if err := toml.Unmarshal([]byte(data), &dto); err != nil {
		return dto, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return dto, nil
}

// findDropInFiles returns the *.toml files of DropInDir sorted by name.
// A missing directory yields nil.
func (cs *ConfigSource) findDropInFiles() ([]string, error) {
	if cs.DropInDir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(cs.DropInDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", cs.DropInDir, err)
	}

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		filenames = append(filenames, filepath.Join(cs.DropInDir, entry.Name()))
	}
	sort.Strings(filenames)

	return filenames, nil
}

func (cs *ConfigSource) parseDropInFiles() ([]configDTO, error) {
	paths, err := cs.findDropInFiles()
	if err != nil {
		return nil, err
	}

	var dtos []configDTO
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		dto, err := parseConfigDTO(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		dtos = append(dtos, dto)
	}

	return dtos, nil
}
