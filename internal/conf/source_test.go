package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/awslabs/aws-api-mcp-config/internal/platform"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func linuxResolver(env MapEnvironment) *Resolver {
	return &Resolver{Env: env, Platform: platform.Linux, TempDir: "/tmp"}
}

func TestConfigDTO_Merge(t *testing.T) {
	tests := []struct {
		name     string
		base     configDTO
		overlay  configDTO
		expected configDTO
	}{
		{
			name:     "overlay replaces values",
			base:     configDTO{LogLevel: stringPtr("INFO"), Telemetry: boolPtr(true)},
			overlay:  configDTO{LogLevel: stringPtr("DEBUG"), Telemetry: boolPtr(false)},
			expected: configDTO{LogLevel: stringPtr("DEBUG"), Telemetry: boolPtr(false)},
		},
		{
			name:     "overlay partial update",
			base:     configDTO{Region: stringPtr("us-east-1"), ProfileName: stringPtr("dev")},
			overlay:  configDTO{ReadOnly: boolPtr(true)},
			expected: configDTO{Region: stringPtr("us-east-1"), ProfileName: stringPtr("dev"), ReadOnly: boolPtr(true)},
		},
		{
			name:     "empty overlay does nothing",
			base:     configDTO{WorkingDir: stringPtr("/srv")},
			overlay:  configDTO{},
			expected: configDTO{WorkingDir: stringPtr("/srv")},
		},
		{
			name:     "overlay can set empty strings",
			base:     configDTO{Region: stringPtr("us-east-1")},
			overlay:  configDTO{Region: stringPtr("")},
			expected: configDTO{Region: stringPtr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.base
			result.merge(tt.overlay)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfigDTO(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    configDTO
	}{
		{
			name: "valid TOML string",
			input: `
log-level = "INFO"
region = "eu-west-1"
read-operations-only = true
telemetry = false
working-dir = "/srv/aws"
profile-name = "dev"
`,
			expected: configDTO{
				LogLevel:    stringPtr("INFO"),
				Region:      stringPtr("eu-west-1"),
				ReadOnly:    boolPtr(true),
				Telemetry:   boolPtr(false),
				WorkingDir:  stringPtr("/srv/aws"),
				ProfileName: stringPtr("dev"),
			},
		},
		{
			name:     "empty string",
			input:    "",
			expected: configDTO{},
		},
		{
			name:        "invalid TOML",
			input:       "not valid toml ===",
			expectError: true,
		},
		{
			name:        "wrong type",
			input:       `telemetry = "yes"`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseConfigDTO(tt.input)

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError {
				if diff := cmp.Diff(tt.expected, result); diff != "" {
					t.Errorf("parseConfigDTO() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestResolver_ReadFullStack(t *testing.T) {
	tmpDir := t.TempDir()
	mainPath := filepath.Join(tmpDir, "config.toml")
	cs := NewConfigSource(mainPath)

	if err := os.Mkdir(cs.DropInDir, 0755); err != nil {
		t.Fatalf("failed to create drop-in directory: %v", err)
	}

	mainConfig := `
log-level = "INFO"
region = "us-east-1"
working-dir = "/srv/main"
`
	if err := os.WriteFile(mainPath, []byte(mainConfig), 0644); err != nil {
		t.Fatalf("failed to write main config: %v", err)
	}

	dropins := map[string]string{
		"10-profile.toml":  `profile-name = "dev"`,
		"20-readonly.toml": `read-operations-only = true`,
		"30-level.toml":    `log-level = "DEBUG"`,
		"40-level.toml":    `log-level = "ERROR"`,
		"ignored.conf":     `log-level = "INFO"`,
	}
	for name, content := range dropins {
		if err := os.WriteFile(filepath.Join(cs.DropInDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write drop-in file %s: %v", name, err)
		}
	}

	r := linuxResolver(MapEnvironment{RegionKey: "ap-south-1"})
	got, err := r.Read(cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Snapshot{
		logLevel:   "ERROR",
		region:     "ap-south-1",
		hasRegion:  true,
		readOnly:   true,
		telemetry:  true,
		workingDir: "/srv/main",
		profile:    "dev",
		hasProfile: true,
	}
	if diff := cmp.Diff(expected, got, allowSnapshot); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_ReadEnvironmentWins(t *testing.T) {
	tmpDir := t.TempDir()
	mainPath := filepath.Join(tmpDir, "config.toml")
	content := `
read-operations-only = true
telemetry = false
`
	if err := os.WriteFile(mainPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write main config: %v", err)
	}

	r := linuxResolver(MapEnvironment{ReadOnlyKey: "no", TelemetryKey: "TRUE"})
	got, err := r.Read(NewConfigSource(mainPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ReadOnly() {
		t.Error("expected READ_OPERATIONS_ONLY=no to override the file")
	}
	if !got.Telemetry() {
		t.Error("expected AWS_API_MCP_TELEMETRY=TRUE to override the file")
	}
}

func TestResolver_ReadWithoutFilesMatchesBuild(t *testing.T) {
	tmpDir := t.TempDir()
	r := linuxResolver(MapEnvironment{LogLevelKey: "INFO"})

	for _, cs := range []*ConfigSource{
		nil,
		NewConfigSource(""),
		NewConfigSource(filepath.Join(tmpDir, "missing.toml")),
	} {
		got, err := r.Read(cs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(r.Build(), got, allowSnapshot); diff != "" {
			t.Errorf("Read(%+v) mismatch (-want +got):\n%s", cs, diff)
		}
	}
}

func TestResolver_ReadMalformed(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("main file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.toml")
		os.WriteFile(path, []byte("not valid toml ==="), 0644)

		if _, err := linuxResolver(nil).Read(NewConfigSource(path)); err == nil {
			t.Error("expected error but got none")
		}
	})

	t.Run("drop-in file", func(t *testing.T) {
		dir := filepath.Join(tmpDir, "config.toml.d")
		os.Mkdir(dir, 0755)
		os.WriteFile(filepath.Join(dir, "10-bad.toml"), []byte("log-level = "), 0644)

		cs := &ConfigSource{DropInDir: dir}
		if _, err := linuxResolver(nil).Read(cs); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestConfigSource_FindDropInFilesSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"20-b.toml", "10-a.toml", "30-c.toml"} {
		os.WriteFile(filepath.Join(dir, name), nil, 0644)
	}
	os.Mkdir(filepath.Join(dir, "00-dir.toml"), 0755)

	cs := &ConfigSource{DropInDir: dir}
	got, err := cs.findDropInFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "10-a.toml"),
		filepath.Join(dir, "20-b.toml"),
		filepath.Join(dir, "30-c.toml"),
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("findDropInFiles() mismatch (-want +got):\n%s", diff)
	}
}
