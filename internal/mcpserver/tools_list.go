package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ccase/preset"
)

type listCasesInput struct {
	Name string `json:"name,omitempty" jsonschema:"Describe only this case (name or alias)"`
}

type caseInfo struct {
	Name       string   `json:"name"`
	Aliases    []string `json:"aliases,omitempty"`
	Kind       string   `json:"kind"`
	Example    string   `json:"example"`
	Delimiter  string   `json:"delimiter"`
	Boundaries []string `json:"boundaries,omitempty"`
	Pattern    []string `json:"pattern,omitempty"`
}

type listCasesOutput struct {
	Count int        `json:"count"`
	Cases []caseInfo `json:"cases,omitempty"`
}

func (t *tools) handleListCases(_ context.Context, _ *mcp.CallToolRequest, input listCasesInput) (*mcp.CallToolResult, listCasesOutput, error) {
	var entries []preset.Entry
	if input.Name != "" {
		p, err := t.registry.Lookup(input.Name)
		if err != nil {
			return errResult(err), listCasesOutput{}, nil
		}
		entries = []preset.Entry{preset.Describe(p)}
	} else {
		entries = t.registry.List()
	}

	output := listCasesOutput{
		Count: len(entries),
		Cases: makeSlice[caseInfo](len(entries)),
	}
	for _, e := range entries {
		output.Cases = append(output.Cases, caseInfo{
			Name:       e.Name,
			Aliases:    e.Aliases,
			Kind:       e.Kind.String(),
			Example:    e.Example,
			Delimiter:  e.Delimiter,
			Boundaries: e.Boundaries,
			Pattern:    e.Pattern,
		})
	}
	return nil, output, nil
}
