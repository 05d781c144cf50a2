package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/ccase/converter"
	"github.com/erraggy/ccase/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	To          string
	From        string
	RemoveEmpty bool
	Presets     string
	Delimiter   *string
	Language    string
	Verbose     bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	setDelimiter := func(s string) error {
		flags.Delimiter = &s
		return nil
	}

	fs.StringVar(&flags.To, "t", "", "target case (required)")
	fs.StringVar(&flags.To, "to", "", "target case (required)")
	fs.StringVar(&flags.From, "f", "", "source case (default: split at every common boundary)")
	fs.StringVar(&flags.From, "from", "", "source case (default: split at every common boundary)")
	fs.BoolVar(&flags.RemoveEmpty, "remove-empty", false, "drop empty words before joining")
	fs.StringVar(&flags.Presets, "presets", "", "YAML file with additional cases")
	fs.Func("d", "override the delimiter of the target case", setDelimiter)
	fs.Func("delimiter", "override the delimiter of the target case", setDelimiter)
	fs.StringVar(&flags.Language, "lang", "", "BCP 47 language tag for language-specific casing (e.g. tr)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: ccase convert [flags] [input...]\n\n")
		cliutil.Writef(fs.Output(), "Convert text to another case. Each input argument is converted and printed\n")
		cliutil.Writef(fs.Output(), "on its own line; without arguments, stdin is converted line by line.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  ccase convert -t snake myVarName\n")
		cliutil.Writef(fs.Output(), "  ccase convert -f kebab -t camel my-var-name\n")
		cliutil.Writef(fs.Output(), "  ccase convert -t kebab --remove-empty __my_var__\n")
		cliutil.Writef(fs.Output(), "  ccase -t constant my-var-name\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | ccase convert -t title\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Run 'ccase list' to see the available cases\n")
		cliutil.Writef(fs.Output(), "  - Case names ignore letter case and separators (Snake_Case == snake)\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Unknown case, invalid flags or unreadable input\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	SetupLogging(flags.Verbose)

	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("convert command requires a target case (-t)")
	}

	c, err := newConverter(flags)
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		for _, input := range fs.Args() {
			cliutil.Writef(os.Stdout, "%s\n", c.Convert(input))
		}
		return nil
	}

	if _, err := cliutil.MapLines(os.Stdin, os.Stdout, c.Convert); err != nil {
		return fmt.Errorf("converting stdin: %w", err)
	}
	return nil
}

// newConverter builds a Converter from the parsed flags.
func newConverter(flags *ConvertFlags) (*converter.Converter, error) {
	reg, err := LoadRegistry(flags.Presets)
	if err != nil {
		return nil, err
	}

	opts := []converter.Option{
		converter.WithRegistry(reg),
		converter.WithToName(flags.To),
	}
	if flags.From != "" {
		opts = append(opts, converter.WithFromName(flags.From))
	}
	if flags.RemoveEmpty {
		opts = append(opts, converter.RemoveEmpty())
	}
	if flags.Delimiter != nil {
		opts = append(opts, converter.WithDelimiter(*flags.Delimiter))
	}
	if flags.Language != "" {
		opts = append(opts, converter.WithLanguageName(flags.Language))
	}
	return converter.New(opts...)
}
