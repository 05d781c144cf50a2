package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/ccase"
	"github.com/erraggy/ccase/cmd/ccase/commands"
)

// commandNames lists the commands in the order suggestions prefer them.
var commandNames = []string{"convert", "list", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	command := args[0]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("ccase %s\n\n%s\n", ccase.Version(), ccase.BuildInfo())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "convert":
		err = commands.HandleConvert(args[1:])
	case "list":
		err = commands.HandleList(args[1:])
	case "mcp":
		err = commands.HandleMCP(args[1:])
	default:
		// Shorthand: flags without a command run convert.
		if strings.HasPrefix(command, "-") {
			err = commands.HandleConvert(args)
			break
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// suggestCommand returns the command closest to input, or "" when none is
// within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ccase - convert identifiers and phrases between case conventions

Usage:
  ccase <command> [flags] [arguments]
  ccase -t <case> [flags] [input...]

Commands:
  convert    Convert text to another case
  list       List the available cases or describe one
  mcp        Run an MCP server over stdio
  version    Show version information
  help       Show this help message

Examples:
  ccase convert -t snake myVarName
  ccase -t kebab "Hello World"
  echo HTTPServer | ccase convert -t constant
  ccase list kebab

Run 'ccase <command> --help' for more information on a command.
`)
}
