package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/resolve"
	"github.com/mcheemaa/axpilot/internal/tree"
	"gopkg.in/yaml.v3"
)

// toText serializes a result struct to YAML for an MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal error: %v", err)
	}
	return string(b)
}

// actionResult wraps a dispatcher Result: locks are already held by the
// caller; the cache is invalidated because the action may have changed the UI.
func (s *mcpServer) actionResult(appHint string, result action.Result) (*mcp.CallToolResult, error) {
	if appHint != "" {
		s.cache.invalidateApp(appHint)
	} else {
		s.cache.invalidateAll()
	}
	if !result.Success {
		return mcp.NewToolResultError(toText(result)), nil
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *mcpServer) handleSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	depth := intParam(params, "depth", 0)
	maxChildren := intParam(params, "max-children", 0)
	flat := boolParam(params, "flat", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	appName, pid, root, err := s.cache.snapshot(s.provider, s.sets, app, depth, maxChildren)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := SnapshotResult{
		App:   appName,
		PID:   pid,
		TS:    time.Now().Unix(),
		Nodes: model.CountNodes(root),
	}
	if flat {
		result.Flat = model.Flatten(root)
	} else {
		result.Tree = root
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *mcpServer) handleFind(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	app := stringParam(params, "app", "")
	roleStr := stringParam(params, "role", "")
	depth := intParam(params, "depth", 0)
	limit := intParam(params, "limit", 20)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	_, _, root, err := s.cache.snapshot(s.provider, s.sets, app, depth, 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var role model.Role
	if roleStr != "" {
		role = model.NormalizeHint(roleStr)
	}
	found := model.FindInTree(root, text, role)
	total := len(found)
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	matches := make([]model.Node, len(found))
	for i, n := range found {
		matches[i] = *n
		matches[i].Children = nil
	}

	return mcp.NewToolResultText(toText(findResult{
		OK:      total > 0,
		Action:  "find",
		Text:    text,
		Total:   total,
		Matches: matches,
	})), nil
}

func (s *mcpServer) handleResolve(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	query := stringParam(params, "query", "")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	app := stringParam(params, "app", "")
	roleHint := stringParam(params, "role", "")
	limit := intParam(params, "limit", 5)
	depth := intParam(params, "depth", 0)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	_, _, root, err := s.cache.snapshot(s.provider, s.sets, app, depth, 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	matches := resolve.New(s.sets).Resolve(query, roleHint, root, limit)
	result := resolveResult{
		OK:     len(matches) > 0,
		Action: "resolve",
		Query:  query,
	}
	for _, m := range matches {
		result.Matches = append(result.Matches, matchInfo{
			ID:     m.Node.ID,
			Role:   m.Node.Role,
			Label:  m.Node.Label,
			Score:  m.Score,
			Reason: m.Reason,
		})
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *mcpServer) handleContent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	budget := intParam(params, "budget", 0)
	maxItems := intParam(params, "max-items", 0)
	maxText := intParam(params, "max-text", 0)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	appHandle, root, err := resolveContentRoot(s.provider, app)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items := tree.Extract(root, tree.ExtractOptions{
		Walk:       tree.WalkOptions{Budget: budget, Sets: s.sets},
		MaxItems:   maxItems,
		MaxTextLen: maxText,
	})
	return mcp.NewToolResultText(toText(contentResult{
		App:   appHandle.Name(),
		URL:   root.URL(),
		Items: items,
	})), nil
}

func (s *mcpServer) handleContext(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	ctx, err := action.Capture(s.provider.Driver, app, s.sets)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(ctx)), nil
}

func (s *mcpServer) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	query := stringParam(params, "query", "")
	roleHint := stringParam(params, "role", "")
	x := intParam(params, "x", -1)
	y := intParam(params, "y", -1)
	double := boolParam(params, "double", false)
	right := boolParam(params, "right", false)

	target := action.Target{Query: query, RoleHint: roleHint}
	if x >= 0 && y >= 0 {
		target.Point = &ax.Point{X: x, Y: y}
	} else if query == "" {
		return mcp.NewToolResultError("provide query or both x and y"), nil
	}

	kind := action.Click
	if double {
		kind = action.DoubleClick
	} else if right {
		kind = action.RightClick
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()
	return s.actionResult(app, s.dispatcher.Dispatch(kind, target, app))
}

func (s *mcpServer) handleType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	text := stringParam(params, "text", "")
	key := stringParam(params, "key", "")
	query := stringParam(params, "query", "")
	roleHint := stringParam(params, "role", "")

	if text == "" && key == "" {
		return mcp.NewToolResultError("provide text or key"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if key != "" {
		target := action.Target{Keys: strings.Split(key, "+")}
		return s.actionResult(app, s.dispatcher.Dispatch(action.KeyCombo, target, app))
	}
	target := action.Target{Query: query, RoleHint: roleHint, Text: text}
	return s.actionResult(app, s.dispatcher.Dispatch(action.TypeText, target, app))
}

func (s *mcpServer) handleSetValue(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	query := stringParam(params, "query", "")
	value := stringParam(params, "value", "")
	roleHint := stringParam(params, "role", "")

	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	target := action.Target{Query: query, RoleHint: roleHint, Text: value}
	return s.actionResult(app, s.dispatcher.Dispatch(action.SetValue, target, app))
}

func (s *mcpServer) handleScroll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	query := stringParam(params, "query", "")
	x := intParam(params, "x", -1)
	y := intParam(params, "y", -1)
	dx := intParam(params, "dx", 0)
	dy := intParam(params, "dy", 0)

	if dx == 0 && dy == 0 {
		return mcp.NewToolResultError("provide dx and/or dy"), nil
	}
	target := action.Target{Query: query, ScrollDX: dx, ScrollDY: dy}
	if x >= 0 && y >= 0 {
		target.Point = &ax.Point{X: x, Y: y}
	} else if query == "" {
		return mcp.NewToolResultError("provide query or both x and y"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()
	return s.actionResult(app, s.dispatcher.Dispatch(action.Scroll, target, app))
}

func (s *mcpServer) handleWait(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	condStr := stringParam(params, "for", "")
	value := stringParam(params, "value", "")
	timeoutSec := intParam(params, "timeout", 0)
	intervalMs := intParam(params, "interval", 0)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result := s.dispatcher.Wait(action.Condition(condStr), value, action.WaitOptions{
		Timeout:  time.Duration(timeoutSec) * time.Second,
		Interval: time.Duration(intervalMs) * time.Millisecond,
		AppHint:  app,
	})
	// The UI was in flux during the wait; cached trees are stale either way.
	s.cache.invalidateAll()
	if !result.Success {
		return mcp.NewToolResultError(toText(result)), nil
	}
	return mcp.NewToolResultText(toText(result)), nil
}
