// Package conf resolves the server configuration from environment variables.
//
// # Usage
//
// Build exactly one Snapshot at startup and hand it to whatever needs it:
//
//	snapshot := conf.NewResolver().Build()
//	fmt.Println(snapshot.WorkingDir())
//
// Tests construct a Resolver directly instead of mutating the process:
//
//	r := &conf.Resolver{
//	    Env:      conf.MapEnvironment{"AWS_REGION": "eu-west-1"},
//	    Platform: platform.Linux,
//	    TempDir:  "/tmp",
//	}
//
// # Variables
//
//	FASTMCP_LOG_LEVEL          log label, default "WARNING"
//	AWS_REGION                 optional region
//	READ_OPERATIONS_ONLY       boolean, default false
//	AWS_API_MCP_TELEMETRY      boolean, default true
//	AWS_API_MCP_WORKING_DIR    default <server directory>/workdir
//	AWS_API_MCP_PROFILE_NAME   optional profile
//
// Booleans are true only for "true", "yes" or "1" in any case. Anything else,
// including padded values, is false.
//
// # Server directory
//
// On Windows and macOS the server directory is <temp>/aws-api-mcp. Elsewhere
// the first non-empty of XDG_RUNTIME_DIR, TMPDIR and the system temp
// directory is used as the base.
//
// # Files
//
// Resolver.Read additionally layers TOML files under the environment:
//
//  1. Literal defaults
//  2. Main config file
//  3. Drop-in files, *.toml in lexicographic order
//  4. Environment variables
//
// Without files the result is identical to Build.
package conf
