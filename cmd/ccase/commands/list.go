package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/ccase/converter"
	"github.com/erraggy/ccase/internal/cliutil"
	"github.com/erraggy/ccase/preset"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	Format  string
	Presets string
	Verbose bool
}

// SetupListFlags creates and configures a FlagSet for the list command.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Presets, "presets", "", "YAML file with additional cases")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: ccase list [flags] [case]\n\n")
		cliutil.Writef(fs.Output(), "List the available cases, or describe one case in detail.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  ccase list\n")
		cliutil.Writef(fs.Output(), "  ccase list kebab\n")
		cliutil.Writef(fs.Output(), "  ccase list --format yaml --presets my-cases.yaml\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	SetupLogging(flags.Verbose)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("list command accepts at most one case name")
	}

	reg, err := LoadRegistry(flags.Presets)
	if err != nil {
		return err
	}

	if fs.NArg() == 1 {
		p, err := reg.Lookup(fs.Arg(0))
		if err != nil {
			return err
		}
		entry := preset.Describe(p)
		if flags.Format != FormatText {
			return OutputStructured(entry, flags.Format)
		}
		writeEntry(os.Stdout, entry)
		return nil
	}

	entries := reg.List()
	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}
	writeEntries(os.Stdout, entries)
	return nil
}

// writeEntries prints entries grouped under a heading per kind.
func writeEntries(w io.Writer, entries []preset.Entry) {
	for i, e := range entries {
		if i == 0 || entries[i-1].Kind != e.Kind {
			if i > 0 {
				cliutil.Writef(w, "\n")
			}
			cliutil.Writef(w, "%s:\n", converter.Convert(e.Kind.String(), nil, preset.Sentence))
		}
		cliutil.Writef(w, "  %-14s %s", e.Name, e.Example)
		if len(e.Aliases) > 0 {
			cliutil.Writef(w, "  (aliases: %s)", strings.Join(e.Aliases, ", "))
		}
		cliutil.Writef(w, "\n")
	}
}

// writeEntry prints every field of a single entry.
func writeEntry(w io.Writer, e preset.Entry) {
	aliases := "-"
	if len(e.Aliases) > 0 {
		aliases = strings.Join(e.Aliases, ", ")
	}
	cliutil.Writef(w, "Name:       %s\n", e.Name)
	cliutil.Writef(w, "Aliases:    %s\n", aliases)
	cliutil.Writef(w, "Kind:       %s\n", e.Kind)
	cliutil.Writef(w, "Example:    %s\n", e.Example)
	cliutil.Writef(w, "Delimiter:  %q\n", e.Delimiter)
	cliutil.Writef(w, "Boundaries: %s\n", strings.Join(e.Boundaries, " "))
	cliutil.Writef(w, "Pattern:    %s\n", strings.Join(e.Pattern, " "))
}
