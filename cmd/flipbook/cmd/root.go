// Package cmd implements the flipbook CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (easings, trace, render, status).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/flipbook/cmd/flipbook/internal/cache"
	"github.com/go-drift/flipbook/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "flipbook",
	Short: "flipbook - rectangle animation queues",
	Long: `flipbook plays scenes of queued rectangle animations and shows or
renders the frames they commit.

A scene is a flipbook.yaml file listing commands (queue, play_now,
delay, pause, resume, drop_all, set_rect, wait) issued in order to a
single animated element.

Use "flipbook <command> --help" for more information about a command.`,
	Usage: "flipbook <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// verbose is set by the global --verbose flag.
var verbose bool

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --cache-dir
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				printVersion()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		case "--cache-dir":
			if i+1 < len(args) {
				cache.SetCacheDir(args[i+1])
				i++
			} else {
				return fmt.Errorf("--cache-dir requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--cache-dir=") {
				cache.SetCacheDir(strings.TrimPrefix(arg, "--cache-dir="))
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	errors.SetHandler(&errors.LogHandler{Verbose: verbose})

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printVersion() {
	release := cache.NormalizeVersion(Version)
	if release == "" {
		release = "development build"
	}
	fmt.Fprintf(stdout, "flipbook version %s (%s, built %s)\n", Version, release, BuildTime)
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --verbose            Log engine events and detailed errors to stderr")
	fmt.Fprintln(w, "  --cache-dir DIR      Override render cache directory (default: ~/.flipbook)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  FLIPBOOK_CACHE_DIR   Cache directory override (lower priority than --cache-dir)")
	fmt.Fprintln(w, "  FLIPBOOK_DEBUG       File that receives engine debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  flipbook easings             List easing curves")
	fmt.Fprintln(w, "  flipbook trace               Print the frames of ./flipbook.yaml")
	fmt.Fprintln(w, "  flipbook render -gif         Render ./flipbook.yaml to an animated GIF")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
