// Package cli provides the command-line interface for droidview.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidview/pkg/config"
	"github.com/devicelab-dev/droidview/pkg/device"
	"github.com/devicelab-dev/droidview/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"s"},
		Usage:   "Device serial to target (default: auto-detect)",
		EnvVars: []string{"DROIDVIEW_DEVICE"},
	},
	&cli.StringFlag{
		Name:    "adb-path",
		Usage:   "Path to the adb binary (default: found in PATH)",
		EnvVars: []string{"DROIDVIEW_ADB"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Config file (default: droidview.yaml in the working directory)",
		EnvVars: []string{"DROIDVIEW_CONFIG"},
	},
	&cli.IntFlag{
		Name:  "timeout",
		Usage: "uiautomator dump timeout in seconds",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging to stderr",
		EnvVars: []string{"DROIDVIEW_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "droidview",
		Usage:   "Inspect and drive Android UI hierarchies over adb",
		Version: Version,
		Description: `droidview dumps the accessibility tree of a connected Android device
and turns it into something a human or an agent can use: a compact
text tree, structured JSON, element search, and tap targeting.

Examples:
  droidview dump
  droidview find --text "Login"
  droidview tap --id login_btn
  droidview serve --transport stdio`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			dumpCommand,
			findCommand,
			tapCommand,
			screenshotCommand,
			devicesCommand,
			serveCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file first, then global
// flag overrides on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if serial := c.String("device"); serial != "" {
		cfg.Device = serial
	}
	if path := c.String("adb-path"); path != "" {
		cfg.ADBPath = path
	}
	if timeout := c.Int("timeout"); timeout > 0 {
		cfg.DumpTimeoutSeconds = timeout
	}

	logger.SetVerbose(c.Bool("verbose"))
	if cfg.LogFile != "" {
		if err := logger.Init(cfg.LogFile); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// connect resolves the config and opens the target device.
func connect(c *cli.Context) (*device.AndroidDevice, *config.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}

	d, err := device.New(c.Context, cfg.Device, cfg.ADBPath)
	if err != nil {
		return nil, nil, err
	}
	d.SetDumpTimeout(time.Duration(cfg.DumpTimeoutSeconds) * time.Second)

	return d, cfg, nil
}
