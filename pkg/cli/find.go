package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidview/pkg/hierarchy"
	"github.com/devicelab-dev/droidview/pkg/jsfilter"
)

var findCommand = &cli.Command{
	Name:  "find",
	Usage: "Find UI elements by attribute",
	Description: `Searches the current hierarchy for elements matching the given
attributes. Resource ids match either the full "pkg:id/name" form or
the short name after the last '/'.

Examples:
  droidview find --id login_btn
  droidview find --text "Sign Up" --json
  droidview find --where 'el.clickable && el.bounds.width > 200'`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "id",
			Usage: "Resource id, full or short form",
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "Exact element text",
		},
		&cli.StringFlag{
			Name:  "desc",
			Usage: "Exact content description",
		},
		&cli.StringFlag{
			Name:  "where",
			Usage: "JavaScript predicate over flat elements",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output matches as JSON",
		},
	},
	Action: runFind,
}

func runFind(c *cli.Context) error {
	sel := hierarchy.Selector{
		ResourceID:  c.String("id"),
		Text:        c.String("text"),
		ContentDesc: c.String("desc"),
	}
	where := c.String("where")
	if sel.IsZero() && where == "" {
		return fmt.Errorf("find needs at least one of --id, --text, --desc, --where")
	}

	d, cfg, err := connect(c)
	if err != nil {
		return err
	}

	forest, err := d.DumpHierarchy(c.Context)
	if err != nil {
		return err
	}

	if where != "" {
		flat := hierarchy.Flatten(forest, cfg.FlattenDepth)
		flat, err = jsfilter.Filter(flat, where)
		if err != nil {
			return err
		}
		if !sel.IsZero() {
			kept := flat[:0]
			for _, el := range flat {
				if sel.MatchesFlat(el) {
					kept = append(kept, el)
				}
			}
			flat = kept
		}
		if len(flat) == 0 {
			return fmt.Errorf("no elements matched")
		}
		return printJSON(c, flat)
	}

	matches := hierarchy.Find(forest, sel)
	if len(matches) == 0 {
		return fmt.Errorf("no elements matched")
	}

	if c.Bool("json") {
		return printJSON(c, matches)
	}
	for _, el := range matches {
		fmt.Fprintln(c.App.Writer, elementLine(el))
	}
	return nil
}

// elementLine renders a single element the way the compact renderer would,
// without its subtree.
func elementLine(el *hierarchy.Element) string {
	shallow := *el
	shallow.Children = nil
	return strings.TrimRight(hierarchy.RenderCompact([]*hierarchy.Element{&shallow}, 0), "\n")
}
