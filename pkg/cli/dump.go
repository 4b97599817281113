package cli

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidview/pkg/hierarchy"
	"github.com/devicelab-dev/droidview/pkg/jsfilter"
)

var dumpCommand = &cli.Command{
	Name:  "dump",
	Usage: "Dump the current UI hierarchy",
	Description: `Captures the device's accessibility tree and prints it as a compact
indented text tree. Use --json for the full nested element tree or
--flat for a depth-annotated pre-order list.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output the nested element tree as JSON",
		},
		&cli.BoolFlag{
			Name:  "flat",
			Usage: "Output a depth-annotated flat element list as JSON",
		},
		&cli.IntFlag{
			Name:    "depth",
			Aliases: []string{"d"},
			Usage:   "Maximum tree depth to include (0 = default)",
		},
		&cli.StringFlag{
			Name:  "where",
			Usage: "JavaScript predicate over flat elements (implies --flat)",
		},
	},
	Action: runDump,
}

func runDump(c *cli.Context) error {
	d, cfg, err := connect(c)
	if err != nil {
		return err
	}

	forest, err := d.DumpHierarchy(c.Context)
	if err != nil {
		return err
	}

	switch {
	case c.Bool("flat") || c.String("where") != "":
		depth := c.Int("depth")
		if depth <= 0 {
			depth = cfg.FlattenDepth
		}
		flat := hierarchy.Flatten(forest, depth)
		if where := c.String("where"); where != "" {
			flat, err = jsfilter.Filter(flat, where)
			if err != nil {
				return err
			}
		}
		return printJSON(c, flat)

	case c.Bool("json"):
		return printJSON(c, forest)

	default:
		depth := c.Int("depth")
		if depth <= 0 {
			depth = cfg.CompactDepth
		}
		fmt.Fprint(c.App.Writer, hierarchy.RenderCompact(forest, depth))
		return nil
	}
}

func printJSON(c *cli.Context, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(b))
	return nil
}
