// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes ccase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ccase"
	"github.com/erraggy/ccase/preset"
)

const serverInstructions = `ccase MCP server: converts identifiers and phrases between case conventions (snake_case, kebab-case, camelCase, Title Case and more).

Use list_cases to discover case names; names and aliases match regardless of letter case and separators ("snake", "Snake_Case" and "snake-case" are the same).

Configuration: All defaults are configurable via CCASE_* environment variables set in your MCP client config.
- CCASE_PRESETS_FILE: YAML file with additional cases, loaded at startup
- CCASE_MAX_INPUT_SIZE (default: 65536): maximum bytes per input string
- CCASE_REMOVE_EMPTY (default: false): drop empty words in convert by default`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "ccase", Version: ccase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, reg)
	return server.Run(ctx, &mcp.StdioTransport{})
}

// newRegistry returns the built-in registry extended with c.PresetsFile.
func newRegistry(c *serverConfig) (*preset.Registry, error) {
	reg := preset.NewDefaultRegistry()
	if c.PresetsFile == "" {
		return reg, nil
	}
	if err := reg.LoadFile(c.PresetsFile); err != nil {
		return nil, fmt.Errorf("mcpserver: loading presets: %w", err)
	}
	return reg, nil
}

// tools holds the state shared by the tool handlers.
type tools struct {
	registry *preset.Registry
	config   *serverConfig
}

func registerAllTools(server *mcp.Server, reg *preset.Registry) {
	t := &tools{registry: reg, config: cfg}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text to a target case such as snake, kebab, camel, pascal, constant or title. Pass one string as input or many as inputs. The source case (from) is optional: without it the input is split at every common word boundary. Use remove_empty to drop empty words produced by leading, trailing or doubled delimiters.",
	}, t.handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "segment",
		Description: "Split text into words without changing their letters. Returns each word with its byte offsets. Narrow the split with from (a case name) or boundaries (boundary names or short codes such as aA, a1 or _).",
	}, t.handleSegment)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_cases",
		Description: "List the available cases with their aliases, delimiter, boundaries, pattern and an example. Pass name to describe a single case.",
	}, t.handleListCases)
}

// checkSize rejects inputs larger than the configured maximum.
func (t *tools) checkSize(inputs ...string) error {
	for _, in := range inputs {
		if len(in) > t.config.MaxInputSize {
			return fmt.Errorf("input size %d bytes exceeds maximum %d bytes; set CCASE_MAX_INPUT_SIZE to increase",
				len(in), t.config.MaxInputSize)
		}
	}
	return nil
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
