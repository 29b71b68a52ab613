package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/awslabs/aws-api-mcp-config/internal/conf"
	"github.com/awslabs/aws-api-mcp-config/internal/l10n"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// resolveFormat validates format. An empty format means text when w is a
// terminal and json otherwise.
func resolveFormat(format string, w io.Writer) (string, error) {
	switch format {
	case formatText, formatJSON:
		return format, nil
	case "":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return formatText, nil
		}
		return formatJSON, nil
	}
	return "", fmt.Errorf(l10n.T("unknown format %q"), format)
}

func writeSnapshot(w io.Writer, s conf.Snapshot, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	region, hasRegion := s.Region()
	profile, hasProfile := s.Profile()
	return writePairs(w, [][2]string{
		{conf.LogLevelKey, s.LogLevel()},
		{conf.RegionKey, orUnset(region, hasRegion)},
		{conf.ReadOnlyKey, strconv.FormatBool(s.ReadOnly())},
		{conf.TelemetryKey, strconv.FormatBool(s.Telemetry())},
		{conf.WorkingDirKey, s.WorkingDir()},
		{conf.ProfileKey, orUnset(profile, hasProfile)},
	})
}

func writePairs(w io.Writer, pairs [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s\t%s\n", p[0], p[1])
	}
	return tw.Flush()
}

func orUnset(value string, ok bool) string {
	if !ok {
		return l10n.T("<unset>")
	}
	return strconv.Quote(value)
}
