// Package terminal owns the raw-mode terminal device.
//
// Features:
//   - Raw (no echo, unbuffered) input via golang.org/x/term
//   - Blocking key reads with escape sequence parsing
//   - Direct ANSI output: clear, cursor positioning, visibility, colors
//   - True color (24-bit) and 256-color palette output
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
