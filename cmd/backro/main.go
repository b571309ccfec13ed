// Copyright 2025 The Backro Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the backro command line application.

Backro expands input text into humorous backronyms: each input word becomes
one line of randomly drawn dictionary words, one word per letter. The words
for a letter are drawn from a shuffled pool so repeats stay rare, and the
pool reshuffles once every candidate has been used.

# Usage

Expand the positional arguments (joined by spaces):

	backro fubar

Use a custom wordlist and a fixed seed:

	backro -w /usr/share/dict/british-english -seed 42 snafu

Run in interactive mode, one input per line:

	backro -i

The wordlist is any line-oriented word file. A trailing possessive suffix
("'s") on an entry is stripped before indexing. The path resolves in order:
the -w flag, the BACKRO_WORDLIST environment variable, the config file, and
finally /usr/share/dict/words.

# Configuration

Runtime configuration is managed through a TOML file that supports wordlist,
output and sampler settings:

	[wordlist]
	path = ""

	[output]
	placeholder_open = "["
	placeholder_close = "?]"

	[sampler]
	seed = 0

	[cli]
	max_input_len = 256

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

With -serve, the process communicates via MessagePack over stdin/stdout.
Expansion requests are processed synchronously with microsecond timing
information included in responses.

Send an expansion request:

	{"id": "req1", "x": "hello world"}

Receive one line per input token:

	{"id": "req1", "ln": ["..."], "c": 2, "t": 145}

# Command Line Flags

The following flags control application behavior:

	-w string
	    Wordlist file path (overrides env and config)
	-seed int
	    Fixed random seed; 0 seeds from the current time
	-i  Run in interactive mode, expanding one stdin line at a time
	-serve
	    Run the msgpack IPC server on stdin/stdout
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-version
	    Show current version

# Exit Codes

0 on success, 1 when the wordlist is not readable, 2 on invalid usage (no
input given, or input with no alphabetic characters).
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/backrodev/backro/internal/cli"
	"github.com/backrodev/backro/internal/utils"
	"github.com/backrodev/backro/pkg/acronym"
	"github.com/backrodev/backro/pkg/config"
	"github.com/backrodev/backro/pkg/dictionary"
	"github.com/backrodev/backro/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "backro"
	gh      = "https://github.com/backrodev/backro"
)

// Exit codes per the CLI contract.
const (
	exitOK         = 0
	exitUnreadable = 1
	exitUsage      = 2
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to run the expansion, interactive or IPC mode.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	wordlistFlag := flag.String("w", "", "Wordlist file path (overrides env and config)")
	seedFlag := flag.Int64("seed", 0, "Fixed random seed (0 seeds from time)")
	interactive := flag.Bool("i", false, "Run interactive mode -- one input per stdin line")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server on stdin/stdout")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(exitOK)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, _ := config.LoadConfigWithPriority(*configPath)
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	wordlistPath := utils.ResolveWordlistPath(*wordlistFlag, appConfig.Wordlist.Path)

	seed := *seedFlag
	if seed == 0 {
		seed = appConfig.Sampler.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Debugf("Sampler seeded with %d", seed)

	opts := acronym.Options{
		PlaceholderOpen:  appConfig.Output.PlaceholderOpen,
		PlaceholderClose: appConfig.Output.PlaceholderClose,
	}

	// Interactive and serve modes index the whole wordlist since the input
	// is not known up front. One-shot mode prunes to the needed letters.
	if *interactive || *serveMode {
		loader := dictionary.NewLoader(wordlistPath, nil)
		if err := loader.Load(); err != nil {
			log.Errorf("%v", err)
			os.Exit(exitUnreadable)
		}
		expander := acronym.NewExpander(loader, rng, opts)

		if *interactive {
			log.SetReportTimestamp(false)
			if err := cli.NewInputHandler(expander, loader, appConfig.CLI.MaxInputLen).Start(); err != nil {
				log.Fatalf("CLI error: %v", err)
			}
			return
		}

		log.Debug("spawning IPC")
		if err := server.NewServer(expander, loader).Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
		return
	}

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		log.Error("No input text given")
		usage()
		os.Exit(exitUsage)
	}

	tokens := acronym.Tokenize(text)
	needed := acronym.NeededLetters(tokens)
	if len(needed) == 0 {
		log.Error("Input has no alphabetic characters")
		usage()
		os.Exit(exitUsage)
	}

	loader := dictionary.NewLoader(wordlistPath, needed)
	if err := loader.Load(); err != nil {
		if errors.Is(err, dictionary.ErrUnreadable) {
			log.Errorf("%v", err)
			os.Exit(exitUnreadable)
		}
		log.Errorf("Indexing wordlist: %v", err)
		os.Exit(exitUnreadable)
	}

	expander := acronym.NewExpander(loader, rng, opts)
	lines, err := expander.Expand(text)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(exitUsage)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

// usage prints CLI guidance to stderr.
func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <text>...\n\n", AppName)
	fmt.Fprintf(os.Stderr, "Expands each input word into a line of dictionary words, one per letter.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

// printVersion displays some basic info with the styled logger.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ backro ] Expands words into backronyms!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
