// Package editor runs the read-only navigation loop: render the viewport,
// block for one key, move the cursor, scroll, repeat until quit.
package editor
