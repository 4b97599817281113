package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidview/pkg/mcp"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start an MCP server exposing droidview tools",
	Description: `Starts a Model Context Protocol server so agent clients can dump the
hierarchy, find elements, tap, and take screenshots without shell
overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  droidview serve
  droidview serve --transport streamable-http --port 8080`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "transport",
			Usage: "Transport: stdio, streamable-http",
			Value: "stdio",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "HTTP port for streamable-http transport",
			Value: 8080,
		},
	},
	Action: runServe,
}

func runServe(c *cli.Context) error {
	d, cfg, err := connect(c)
	if err != nil {
		return err
	}

	mcp.Version = Version
	srv := mcp.NewServer(d, cfg)
	return srv.Serve(mcp.ServerConfig{
		Transport: c.String("transport"),
		Port:      c.Int("port"),
	})
}
