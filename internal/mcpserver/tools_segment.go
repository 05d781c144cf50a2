package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/internal/options"
	"github.com/erraggy/ccase/segment"
)

type segmentInput struct {
	Input      string   `json:"input"                jsonschema:"Text to split into words"`
	From       string   `json:"from,omitempty"       jsonschema:"Split with the boundaries of this case"`
	Boundaries []string `json:"boundaries,omitempty" jsonschema:"Boundary names or short codes to split on (e.g. LowerUpper or aA). Cannot be combined with from."`
}

type segmentWord struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type segmentOutput struct {
	WordCount  int           `json:"word_count"`
	Words      []segmentWord `json:"words,omitempty"`
	Boundaries []string      `json:"boundaries,omitempty"`
}

func (t *tools) handleSegment(_ context.Context, _ *mcp.CallToolRequest, input segmentInput) (*mcp.CallToolResult, segmentOutput, error) {
	if err := t.checkSize(input.Input); err != nil {
		return errResult(err), segmentOutput{}, nil
	}

	set, err := t.boundarySet(input)
	if err != nil {
		return errResult(err), segmentOutput{}, nil
	}

	spans := segment.Spans(input.Input, set)
	output := segmentOutput{
		WordCount: len(spans),
		Words:     makeSlice[segmentWord](len(spans)),
	}
	for _, s := range spans {
		output.Words = append(output.Words, segmentWord{Text: s.Text, Start: s.Start, End: s.End})
	}
	for _, b := range set.Boundaries() {
		output.Boundaries = append(output.Boundaries, b.Name())
	}
	return nil, output, nil
}

// boundarySet resolves the boundaries requested by input.
func (t *tools) boundarySet(input segmentInput) (boundary.Set, error) {
	if err := options.ValidateExclusive(
		options.Choice{Name: "from", Set: input.From != ""},
		options.Choice{Name: "boundaries", Set: len(input.Boundaries) > 0},
	); err != nil {
		return boundary.Set{}, err
	}

	switch {
	case input.From != "":
		p, err := t.registry.Lookup(input.From)
		if err != nil {
			return boundary.Set{}, err
		}
		return p.Boundaries, nil
	case len(input.Boundaries) > 0:
		bs := make([]boundary.Boundary, 0, len(input.Boundaries))
		for _, name := range input.Boundaries {
			b, ok := boundary.Parse(name)
			if !ok {
				return boundary.Set{}, fmt.Errorf("unknown boundary %q", name)
			}
			bs = append(bs, b)
		}
		return boundary.NewSet(bs...), nil
	default:
		return boundary.DefaultSet(), nil
	}
}
