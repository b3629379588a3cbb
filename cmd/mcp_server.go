package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/version"
)

// mcpServer wraps the MCP server with the accessibility provider, the
// dispatcher, and the snapshot cache.
type mcpServer struct {
	provider   *ax.Provider
	sets       *model.RoleSets
	dispatcher *action.Dispatcher
	cache      *mcpTreeCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all axpilot tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := ax.NewProvider()
	if err != nil {
		return nil, err
	}
	sets, err := loadRoleSets(rootCmd)
	if err != nil {
		return nil, err
	}

	d := action.NewDispatcher(provider)
	d.Sets = sets

	s := &mcpServer{
		provider:   provider,
		sets:       sets,
		dispatcher: d,
		cache:      newMCPTreeCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"axpilot",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
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

func (s *mcpServer) registerTools() {
	// snapshot
	s.mcp.AddTool(
		mcp.NewTool("snapshot",
			mcp.WithDescription("Build a bounded snapshot of an app's UI element tree. Returns nodes with IDs, roles, labels, values, geometry, and actions."),
			mcp.WithString("app", mcp.Description("Application name (default: frontmost)")),
			mcp.WithNumber("depth", mcp.Description("Max recursion depth (0 = default)")),
			mcp.WithNumber("max-children", mcp.Description("Max children per node (0 = default)")),
			mcp.WithBoolean("flat", mcp.Description("Return a flat list with path breadcrumbs instead of a tree")),
		),
		s.handleSnapshot,
	)

	// find
	s.mcp.AddTool(
		mcp.NewTool("find",
			mcp.WithDescription("Exact/substring search in a snapshot tree. For ranked fuzzy matching use resolve."),
			mcp.WithString("text", mcp.Description("Text to search for (case-insensitive substring)"), mcp.Required()),
			mcp.WithString("app", mcp.Description("Application name (default: frontmost)")),
			mcp.WithString("role", mcp.Description("Filter by role (e.g. btn, input, lnk)")),
			mcp.WithNumber("depth", mcp.Description("Max snapshot depth (0 = default)")),
			mcp.WithNumber("limit", mcp.Description("Max matching nodes (default: 20)")),
		),
		s.handleFind,
	)

	// resolve
	s.mcp.AddTool(
		mcp.NewTool("resolve",
			mcp.WithDescription("Fuzzy-rank elements against a natural-language query. Each match carries a score and the reason it scored that way."),
			mcp.WithString("query", mcp.Description("Query text"), mcp.Required()),
			mcp.WithString("app", mcp.Description("Application name (default: frontmost)")),
			mcp.WithString("role", mcp.Description("Role hint (e.g. button, link, input)")),
			mcp.WithNumber("limit", mcp.Description("Max matches (default: 5)")),
			mcp.WithNumber("depth", mcp.Description("Max snapshot depth (0 = default)")),
		),
		s.handleResolve,
	)

	// content
	s.mcp.AddTool(
		mcp.NewTool("content",
			mcp.WithDescription("Extract readable content (headings, links, buttons, inputs, text) from an app under a semantic depth budget"),
			mcp.WithString("app", mcp.Description("Application name (default: frontmost)")),
			mcp.WithNumber("budget", mcp.Description("Semantic depth budget (0 = default)")),
			mcp.WithNumber("max-items", mcp.Description("Max content lines (0 = default)")),
			mcp.WithNumber("max-text", mcp.Description("Max characters per line (0 = default)")),
		),
		s.handleContent,
	)

	// context
	s.mcp.AddTool(
		mcp.NewTool("context",
			mcp.WithDescription("Capture a compact situational snapshot: active app, window title, URL, focused element, nearby interactive elements"),
			mcp.WithString("app", mcp.Description("Application name (default: frontmost)")),
		),
		s.handleContext,
	)

	// click
	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click an element by fuzzy query or at screen coordinates. Native press is tried first and verified; synthetic input is the fallback."),
			mcp.WithString("query", mcp.Description("Find target element by fuzzy query")),
			mcp.WithString("app", mcp.Description("Scope to application")),
			mcp.WithString("role", mcp.Description("Role hint for the query")),
			mcp.WithNumber("x", mcp.Description("Click at X coordinate")),
			mcp.WithNumber("y", mcp.Description("Click at Y coordinate")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
			mcp.WithBoolean("right", mcp.Description("Right-click")),
		),
		s.handleClick,
	)

	// type
	s.mcp.AddTool(
		mcp.NewTool("type",
			mcp.WithDescription("Type text into an element or press a key combo. Value-set with read-back first, synthetic typing as fallback."),
			mcp.WithString("text", mcp.Description("Text to type")),
			mcp.WithString("key", mcp.Description("Key combo, + separated (e.g. cmd+c, enter, tab)")),
			mcp.WithString("query", mcp.Description("Find target field by fuzzy query")),
			mcp.WithString("app", mcp.Description("Scope to application")),
			mcp.WithString("role", mcp.Description("Role hint for the query")),
		),
		s.handleType,
	)

	// set_value
	s.mcp.AddTool(
		mcp.NewTool("set_value",
			mcp.WithDescription("Set a field's value directly via the accessibility API, verified by read-back"),
			mcp.WithString("query", mcp.Description("Find target field by fuzzy query"), mcp.Required()),
			mcp.WithString("value", mcp.Description("Value to set")),
			mcp.WithString("app", mcp.Description("Scope to application")),
			mcp.WithString("role", mcp.Description("Role hint for the query")),
		),
		s.handleSetValue,
	)

	// scroll
	s.mcp.AddTool(
		mcp.NewTool("scroll",
			mcp.WithDescription("Scroll at an element's center or at coordinates. Positive dy scrolls down."),
			mcp.WithString("query", mcp.Description("Find target element by fuzzy query")),
			mcp.WithString("app", mcp.Description("Scope to application")),
			mcp.WithNumber("x", mcp.Description("Scroll at X coordinate")),
			mcp.WithNumber("y", mcp.Description("Scroll at Y coordinate")),
			mcp.WithNumber("dx", mcp.Description("Horizontal scroll amount")),
			mcp.WithNumber("dy", mcp.Description("Vertical scroll amount")),
		),
		s.handleScroll,
	)

	// wait
	s.mcp.AddTool(
		mcp.NewTool("wait",
			mcp.WithDescription("Wait for a UI condition: url-contains, title-contains, element-exists, element-gone, url-changed, title-changed. Timeout is an ordinary failure result."),
			mcp.WithString("for", mcp.Description("Condition kind"), mcp.Required()),
			mcp.WithString("value", mcp.Description("Condition value (query text, URL or title fragment)")),
			mcp.WithString("app", mcp.Description("Scope to application")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default: 30)")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms (default: 500)")),
		),
		s.handleWait,
	)
}
