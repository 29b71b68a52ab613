package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/awslabs/aws-api-mcp-config/internal/awsconf"
	"github.com/awslabs/aws-api-mcp-config/internal/conf"
	"github.com/awslabs/aws-api-mcp-config/internal/l10n"
)

const (
	resolverKey = "resolver"
	snapshotKey = "snapshot"
)

func main() {
	app := newApp(conf.OSEnvironment{})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the CLI over env. The snapshot is resolved once in Before
// and shared read-only by every command.
func newApp(env conf.Environment) *cli.App {
	return &cli.App{
		Name:  "aws-api-mcp-config",
		Usage: l10n.T("show the resolved AWS API MCP server configuration"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("read TOML configuration from `FILE` and FILE.d/*.toml"),
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: l10n.T("read additional environment variables from `FILE`"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   l10n.T("output format: text or json (default: text on a terminal, json otherwise)"),
			},
		},
		Before: func(c *cli.Context) error {
			return beforeAction(c, env)
		},
		Action: showAction,
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  l10n.T("print the configuration snapshot"),
				Action: showAction,
			},
			{
				Name:   "server-dir",
				Usage:  l10n.T("print the platform server directory"),
				Action: serverDirAction,
			},
			{
				Name:      "flag",
				Usage:     l10n.T("evaluate an environment variable as a boolean flag"),
				ArgsUsage: "KEY",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "default",
						Usage: l10n.T("value used when KEY is unset"),
					},
				},
				Action: flagAction,
			},
			{
				Name:   "aws",
				Usage:  l10n.T("print the region and profile the AWS SDK resolves"),
				Action: awsAction,
			},
		},
	}
}

func beforeAction(c *cli.Context, env conf.Environment) error {
	if path := c.String("env-file"); path != "" {
		dotenv, err := conf.ReadDotEnv(path)
		if err != nil {
			return err
		}
		env = conf.Layered{env, dotenv}
	}

	r := conf.NewResolver()
	r.Env = env

	snapshot, err := r.Read(conf.NewConfigSource(c.String("config")))
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: snapshot.SlogLevel(),
	})))
	slog.Debug("resolved configuration",
		"platform", r.Platform,
		"working_dir", snapshot.WorkingDir(),
		"read_only", snapshot.ReadOnly(),
	)

	c.App.Metadata = map[string]interface{}{
		resolverKey: r,
		snapshotKey: snapshot,
	}
	return nil
}

func resolverFrom(c *cli.Context) *conf.Resolver {
	return c.App.Metadata[resolverKey].(*conf.Resolver)
}

func snapshotFrom(c *cli.Context) conf.Snapshot {
	return c.App.Metadata[snapshotKey].(conf.Snapshot)
}

func showAction(c *cli.Context) error {
	format, err := resolveFormat(c.String("format"), c.App.Writer)
	if err != nil {
		return err
	}
	return writeSnapshot(c.App.Writer, snapshotFrom(c), format)
}

func serverDirAction(c *cli.Context) error {
	_, err := fmt.Fprintln(c.App.Writer, resolverFrom(c).ServerDirectory())
	return err
}

func flagAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf(l10n.T("expected exactly one KEY argument, got %d"), c.NArg())
	}
	value := resolverFrom(c).BoolFlag(c.Args().First(), c.Bool("default"))
	_, err := fmt.Fprintln(c.App.Writer, value)
	return err
}

func awsAction(c *cli.Context) error {
	snapshot := snapshotFrom(c)
	cfg, err := awsconf.Load(c.Context, snapshot)
	if err != nil {
		return err
	}
	profile, _ := snapshot.Profile()
	return writePairs(c.App.Writer, [][2]string{
		{"region", orUnset(cfg.Region, cfg.Region != "")},
		{"profile", orUnset(profile, profile != "")},
	})
}
