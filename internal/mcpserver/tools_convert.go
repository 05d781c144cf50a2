package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ccase/converter"
	"github.com/erraggy/ccase/internal/options"
)

type convertInput struct {
	Input       string   `json:"input,omitempty"        jsonschema:"Text to convert. Use inputs instead to convert several strings in one call."`
	Inputs      []string `json:"inputs,omitempty"       jsonschema:"Several strings to convert with the same settings"`
	To          string   `json:"to"                     jsonschema:"Target case name or alias (see list_cases)"`
	From        string   `json:"from,omitempty"         jsonschema:"Source case name. When omitted the input is split at every common boundary."`
	RemoveEmpty *bool    `json:"remove_empty,omitempty" jsonschema:"Drop empty words before joining. Defaults to CCASE_REMOVE_EMPTY."`
	Delimiter   *string  `json:"delimiter,omitempty"    jsonschema:"Override the delimiter of the target case"`
	Language    string   `json:"language,omitempty"     jsonschema:"BCP 47 language tag for language-specific casing (e.g. tr)"`
}

type convertOutput struct {
	From    string   `json:"from,omitempty"`
	To      string   `json:"to"`
	Output  string   `json:"output,omitempty"`
	Outputs []string `json:"outputs,omitempty"`
}

func (t *tools) handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if input.To == "" {
		return errResult(fmt.Errorf("target case (to) is required")), convertOutput{}, nil
	}
	if err := options.ValidateExclusive(
		options.Choice{Name: "input", Set: input.Input != ""},
		options.Choice{Name: "inputs", Set: len(input.Inputs) > 0},
	); err != nil {
		return errResult(err), convertOutput{}, nil
	}
	if err := t.checkSize(input.Input); err != nil {
		return errResult(err), convertOutput{}, nil
	}
	if err := t.checkSize(input.Inputs...); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	c, output, err := t.buildConverter(input)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if len(input.Inputs) == 0 {
		output.Output = c.Convert(input.Input)
		return nil, output, nil
	}
	output.Outputs = makeSlice[string](len(input.Inputs))
	for _, in := range input.Inputs {
		output.Outputs = append(output.Outputs, c.Convert(in))
	}
	return nil, output, nil
}

// buildConverter translates the MCP input into a Converter and the
// canonical case names it resolved.
func (t *tools) buildConverter(input convertInput) (*converter.Converter, convertOutput, error) {
	var output convertOutput
	opts := []converter.Option{converter.WithRegistry(t.registry)}

	to, err := t.registry.Lookup(input.To)
	if err != nil {
		return nil, output, err
	}
	opts = append(opts, converter.WithTo(to))
	output.To = to.Name

	if input.From != "" {
		from, err := t.registry.Lookup(input.From)
		if err != nil {
			return nil, output, err
		}
		opts = append(opts, converter.WithFrom(from))
		output.From = from.Name
	}

	removeEmpty := t.config.RemoveEmpty
	if input.RemoveEmpty != nil {
		removeEmpty = *input.RemoveEmpty
	}
	if removeEmpty {
		opts = append(opts, converter.RemoveEmpty())
	}
	if input.Delimiter != nil {
		opts = append(opts, converter.WithDelimiter(*input.Delimiter))
	}
	if input.Language != "" {
		opts = append(opts, converter.WithLanguageName(input.Language))
	}

	c, err := converter.New(opts...)
	if err != nil {
		return nil, output, err
	}
	return c, output, nil
}
