// Command hecto is a read-only terminal text viewer.
//
// Usage:
//
//	hecto [flags] [file]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sanity-io/litter"

	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/core"
	"github.com/lixenwraith/hecto/document"
	"github.com/lixenwraith/hecto/editor"
	"github.com/lixenwraith/hecto/terminal"
)

// Process endpoints, replaced in tests
var (
	openTerminal           = terminal.Open
	stderr       io.Writer = os.Stderr
	screenOut    io.Writer = os.Stdout
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code; defers inside it complete before main exits
func run(args []string) int {
	// Panic Recovery: Ensure terminal is reset even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Printf("hecto version %s\n", constants.Version)
		return 0
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
		log.Printf("main: options %s", litter.Sdump(opts))
	}

	cfg, err := opts.editorConfig()
	if err != nil {
		fmt.Fprintf(stderr, "hecto: %v\n", err)
		return 2
	}
	colorMode, err := opts.colorMode()
	if err != nil {
		fmt.Fprintf(stderr, "hecto: %v\n", err)
		return 2
	}

	doc := document.FromLines(nil)
	if opts.file != "" {
		doc, err = loadDocument(opts.file)
		if err != nil {
			log.Printf("main: load %s: %v", opts.file, err)
			cfg.InitialMessage = fmt.Sprintf(constants.OpenErrorFormat, opts.file)
		}
	}

	term, err := openTerminal(colorMode)
	if err != nil {
		reportError(err)
		return 1
	}
	// Normal exit terminal cleanup
	defer term.Close()
	// Crash cleanups stay registered only while the editor runs, so a panic still finds them
	unregister := registerCrashCleanups(term)

	log.Printf("main: color mode %s, file %q", colorMode, opts.file)

	ed := editor.New(term, doc, cfg)
	err = ed.Run()
	unregister()
	if err != nil {
		// Restore before printing so the message lands on a cooked terminal
		term.Close()
		reportError(err)
		return 1
	}
	return 0
}

// registerCrashCleanups arranges terminal restoration for core.HandleCrash.
// Cleanups run in reverse: Close first, then the unconditional reset.
func registerCrashCleanups(term *terminal.Terminal) (unregister func()) {
	unreset := core.RegisterCrashCleanup(func() { terminal.EmergencyReset(screenOut) })
	unclose := core.RegisterCrashCleanup(func() { term.Close() })
	return func() {
		unclose()
		unreset()
	}
}

// loadDocument reads name from disk; on failure it returns an empty document carrying the name
func loadDocument(name string) (*document.Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return document.Empty(name), err
	}
	defer f.Close()

	doc, err := document.Load(name, f)
	if err != nil {
		return document.Empty(name), err
	}
	return doc, nil
}

// reportError prints a fatal error to stderr
func reportError(err error) {
	var devErr *terminal.DeviceError
	var ioErr *terminal.IOError

	switch {
	case errors.Is(err, terminal.ErrNotTerminal):
		fmt.Fprintln(stderr, "hecto: standard input is not a terminal")
	case errors.As(err, &devErr):
		fmt.Fprintf(stderr, "hecto: cannot use terminal: %v\n", devErr)
	case errors.As(err, &ioErr):
		fmt.Fprintf(stderr, "hecto: %v\n", ioErr)
	default:
		fmt.Fprintf(stderr, "hecto: %v\n", err)
	}
	log.Printf("main: fatal: %+v", err)
}
