package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/ccase/internal/cliutil"
	"github.com/erraggy/ccase/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: ccase mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio exposing the\n")
		cliutil.Writef(fs.Output(), "convert, segment and list_cases tools.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  CCASE_PRESETS_FILE     YAML file with additional cases\n")
		cliutil.Writef(fs.Output(), "  CCASE_MAX_INPUT_SIZE   maximum bytes per input string (default 65536)\n")
		cliutil.Writef(fs.Output(), "  CCASE_REMOVE_EMPTY     drop empty words in convert by default\n")
	}

	return fs, verbose
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs, verbose := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	SetupLogging(*verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
