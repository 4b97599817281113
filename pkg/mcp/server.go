// Package mcp exposes droidview operations as Model Context Protocol tools,
// so agent clients can inspect and drive a device without shelling out.
package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/devicelab-dev/droidview/pkg/config"
	"github.com/devicelab-dev/droidview/pkg/device"
)

// Version is set at build time, mirroring the CLI version.
var Version = "dev"

// ServerConfig holds MCP transport configuration.
type ServerConfig struct {
	Transport string // stdio or streamable-http
	Port      int    // HTTP port for streamable-http
}

// Server wraps the MCP server with the device connection.
type Server struct {
	dev *device.AndroidDevice
	cfg *config.Config
	mcp *mcpserver.MCPServer
}

// NewServer creates an MCP server exposing all droidview tools for the
// given device.
func NewServer(dev *device.AndroidDevice, cfg *config.Config) *Server {
	s := &Server{
		dev: dev,
		cfg: cfg,
	}

	s.mcp = mcpserver.NewMCPServer("droidview", Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server on the configured transport and blocks.
func (s *Server) Serve(cfg ServerConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("get_ui_hierarchy",
			mcp.WithDescription("Dump the device's current UI hierarchy. Returns a compact indented text tree by default, or structured JSON."),
			mcp.WithString("format", mcp.Description("Output format: compact (default), json, flat")),
			mcp.WithNumber("depth", mcp.Description("Max tree depth to include (0 = package default)")),
			mcp.WithString("where", mcp.Description("JavaScript predicate over flattened elements, e.g. 'el.clickable'")),
		),
		s.handleHierarchy,
	)

	s.mcp.AddTool(
		mcp.NewTool("find_element",
			mcp.WithDescription("Find UI elements by attribute. Resource ids match the full id or its short form after the last '/'."),
			mcp.WithString("resource-id", mcp.Description("Resource id, full or short form")),
			mcp.WithString("text", mcp.Description("Exact element text")),
			mcp.WithString("content-desc", mcp.Description("Exact content description")),
			mcp.WithString("where", mcp.Description("JavaScript predicate over flattened elements")),
		),
		s.handleFind,
	)

	s.mcp.AddTool(
		mcp.NewTool("tap",
			mcp.WithDescription("Tap an element found by attribute, or tap raw screen coordinates."),
			mcp.WithString("resource-id", mcp.Description("Resource id of the element to tap")),
			mcp.WithString("text", mcp.Description("Exact text of the element to tap")),
			mcp.WithString("content-desc", mcp.Description("Exact content description of the element to tap")),
			mcp.WithNumber("x", mcp.Description("X coordinate (with y, taps coordinates instead of an element)")),
			mcp.WithNumber("y", mcp.Description("Y coordinate")),
		),
		s.handleTap,
	)

	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Capture the device screen as PNG, optionally annotated with element bounds and tap coordinates."),
			mcp.WithBoolean("annotate", mcp.Description("Draw element bounds and center coordinates")),
		),
		s.handleScreenshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("device_info",
			mcp.WithDescription("Report model, SDK level, and brand of the connected device."),
		),
		s.handleDeviceInfo,
	)
}
