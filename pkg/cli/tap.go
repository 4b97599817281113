package cli

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidview/pkg/core"
	"github.com/devicelab-dev/droidview/pkg/hierarchy"
)

var tapCommand = &cli.Command{
	Name:      "tap",
	Usage:     "Tap an element or a screen coordinate",
	ArgsUsage: "[x y]",
	Description: `Taps the center of the first element matching the given selector, or
raw coordinates when x and y are passed as arguments.

Examples:
  droidview tap --id login_btn
  droidview tap --text "Sign Up"
  droidview tap 540 960`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "id",
			Usage: "Resource id of the element to tap",
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "Exact text of the element to tap",
		},
		&cli.StringFlag{
			Name:  "desc",
			Usage: "Exact content description of the element to tap",
		},
	},
	Action: runTap,
}

func runTap(c *cli.Context) error {
	d, _, err := connect(c)
	if err != nil {
		return err
	}

	if c.NArg() == 2 {
		x, errX := strconv.Atoi(c.Args().Get(0))
		y, errY := strconv.Atoi(c.Args().Get(1))
		if errX != nil || errY != nil {
			return fmt.Errorf("tap coordinates must be integers: %s %s", c.Args().Get(0), c.Args().Get(1))
		}
		if err := d.Tap(c.Context, core.Point{X: x, Y: y}); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "tapped (%d,%d)\n", x, y)
		return nil
	}

	sel := hierarchy.Selector{
		ResourceID:  c.String("id"),
		Text:        c.String("text"),
		ContentDesc: c.String("desc"),
	}
	if sel.IsZero() {
		return fmt.Errorf("tap needs x y arguments or one of --id, --text, --desc")
	}

	el, err := d.TapElement(c.Context, sel)
	if err != nil {
		return err
	}

	center := el.Bounds.Center()
	fmt.Fprintf(c.App.Writer, "tapped %s at (%d,%d)\n", elementLine(el), center.X, center.Y)
	return nil
}
