package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/droidview/pkg/annotate"
	"github.com/devicelab-dev/droidview/pkg/core"
	"github.com/devicelab-dev/droidview/pkg/hierarchy"
	"github.com/devicelab-dev/droidview/pkg/jsfilter"
)

func (s *Server) handleHierarchy(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	format := stringParam(params, "format", "compact")
	where := stringParam(params, "where", "")

	forest, err := s.dev.DumpHierarchy(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch format {
	case "compact":
		depth := intParam(params, "depth", 0)
		if depth <= 0 {
			depth = s.cfg.CompactDepth
		}
		return mcp.NewToolResultText(hierarchy.RenderCompact(forest, depth)), nil

	case "json":
		b, err := json.MarshalIndent(forest, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(b)), nil

	case "flat":
		depth := intParam(params, "depth", 0)
		if depth <= 0 {
			depth = s.cfg.FlattenDepth
		}
		flat := hierarchy.Flatten(forest, depth)
		if where != "" {
			flat, err = jsfilter.Filter(flat, where)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
		b, err := json.MarshalIndent(flat, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(b)), nil

	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format: %s (use compact, json, flat)", format)), nil
	}
}

func (s *Server) handleFind(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sel := hierarchy.Selector{
		ResourceID:  stringParam(params, "resource-id", ""),
		Text:        stringParam(params, "text", ""),
		ContentDesc: stringParam(params, "content-desc", ""),
	}
	where := stringParam(params, "where", "")

	forest, err := s.dev.DumpHierarchy(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	flat := hierarchy.Flatten(forest, s.cfg.FlattenDepth)
	if where != "" {
		flat, err = jsfilter.Filter(flat, where)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
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

	b, err := json.MarshalIndent(flat, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleTap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	if hasParam(params, "x") && hasParam(params, "y") {
		p := core.Point{X: intParam(params, "x", 0), Y: intParam(params, "y", 0)}
		if err := s.dev.Tap(ctx, p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("tapped (%d,%d)", p.X, p.Y)), nil
	}

	sel := hierarchy.Selector{
		ResourceID:  stringParam(params, "resource-id", ""),
		Text:        stringParam(params, "text", ""),
		ContentDesc: stringParam(params, "content-desc", ""),
	}
	if sel.IsZero() {
		return mcp.NewToolResultError("tap needs x/y coordinates or a selector field"), nil
	}

	el, err := s.dev.TapElement(ctx, sel)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	center := el.Bounds.Center()
	return mcp.NewToolResultText(fmt.Sprintf("tapped %q at (%d,%d)",
		describeElement(el), center.X, center.Y)), nil
}

func (s *Server) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	data, err := s.dev.Screenshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if boolParam(params, "annotate", false) {
		forest, err := s.dev.DumpHierarchy(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		data, err = annotate.Screenshot(data, hierarchy.Flatten(forest, s.cfg.FlattenDepth))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(data),
				MIMEType: "image/png",
			},
		},
	}, nil
}

func (s *Server) handleDeviceInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.dev.Info(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := yaml.Marshal(info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// describeElement picks the most useful label for a tapped element.
func describeElement(el *hierarchy.Element) string {
	switch {
	case el.Text != "":
		return el.Text
	case el.ResourceID != "":
		return hierarchy.ShortID(el.ResourceID)
	case el.ContentDesc != "":
		return el.ContentDesc
	default:
		return el.Class
	}
}

// Param helpers over the MCP argument map.

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

func hasParam(params map[string]interface{}, key string) bool {
	_, ok := params[key]
	return ok
}
