package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/editor"
	"github.com/lixenwraith/hecto/terminal"
)

// options holds the raw command-line values
type options struct {
	quit           string
	statusFg       string
	statusBg       string
	color          string
	messageTimeout time.Duration
	debug          bool
	version        bool
	file           string
}

// parseFlags parses args; usage and parse errors go to errOut
func parseFlags(args []string, errOut io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("hecto", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: hecto [flags] [file]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.quit, "quit", constants.DefaultQuitKey, "Key that ends the session (e.g. ctrl_q, escape)")
	fs.StringVar(&opts.statusFg, "status-fg", constants.StatusForeground, "Status bar foreground: color name or #rrggbb")
	fs.StringVar(&opts.statusBg, "status-bg", constants.StatusBackground, "Status bar background: color name or #rrggbb")
	fs.StringVar(&opts.color, "color", "auto", "Color mode: auto, truecolor, 256")
	fs.DurationVar(&opts.messageTimeout, "message-timeout", constants.MessageTimeout, "How long message bar entries stay visible")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to logs/hecto.log")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fs.Usage()
		return nil, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return opts, nil
}

// editorConfig resolves flag values into editor settings
func (o *options) editorConfig() (editor.Config, error) {
	cfg := editor.DefaultConfig()

	key, ok := terminal.KeyByName(o.quit)
	if !ok {
		return cfg, fmt.Errorf("unknown quit key %q", o.quit)
	}
	cfg.QuitKey = key
	cfg.InitialMessage = fmt.Sprintf(constants.HelpMessageFormat, keyLabel(terminal.KeyName(key)))

	fg, err := terminal.ParseColor(o.statusFg)
	if err != nil {
		return cfg, fmt.Errorf("status-fg: %w", err)
	}
	bg, err := terminal.ParseColor(o.statusBg)
	if err != nil {
		return cfg, fmt.Errorf("status-bg: %w", err)
	}
	cfg.StatusFg, cfg.StatusBg = fg, bg

	if o.messageTimeout < 0 {
		return cfg, fmt.Errorf("message-timeout must not be negative, got %v", o.messageTimeout)
	}
	cfg.MessageTimeout = o.messageTimeout
	cfg.Banner = welcomeBanner
	return cfg, nil
}

// colorMode resolves the -color flag
func (o *options) colorMode() (terminal.ColorMode, error) {
	switch o.color {
	case "auto", "":
		return terminal.DetectColorMode(), nil
	case "256":
		return terminal.ColorMode256, nil
	case "truecolor", "true", "24bit":
		return terminal.ColorModeTrueColor, nil
	default:
		return terminal.ColorMode256, fmt.Errorf("unknown color mode %q", o.color)
	}
}

// keyLabel turns a key name like "ctrl_q" into "Ctrl-Q" for display
func keyLabel(name string) string {
	caser := cases.Title(language.Und)
	parts := strings.Split(name, "_")
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return strings.Join(parts, "-")
}
