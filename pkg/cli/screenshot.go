package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidview/pkg/annotate"
	"github.com/devicelab-dev/droidview/pkg/hierarchy"
)

var screenshotCommand = &cli.Command{
	Name:  "screenshot",
	Usage: "Capture the device screen as PNG",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file",
			Value:   "screenshot.png",
		},
		&cli.BoolFlag{
			Name:  "annotate",
			Usage: "Draw element bounds and tap coordinates on the image",
		},
	},
	Action: runScreenshot,
}

func runScreenshot(c *cli.Context) error {
	d, cfg, err := connect(c)
	if err != nil {
		return err
	}

	data, err := d.Screenshot(c.Context)
	if err != nil {
		return err
	}

	if c.Bool("annotate") {
		forest, err := d.DumpHierarchy(c.Context)
		if err != nil {
			return err
		}
		data, err = annotate.Screenshot(data, hierarchy.Flatten(forest, cfg.FlattenDepth))
		if err != nil {
			return err
		}
	}

	output := c.String("output")
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "saved %s (%d bytes)\n", output, len(data))
	return nil
}
