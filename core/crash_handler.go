package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

type crashCleanup struct {
	id int
	fn func()
}

var (
	crashMu       sync.Mutex
	crashCleanups []crashCleanup
	crashNextID   int

	// crashOutput receives the crash report; crashExit ends the process
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// RegisterCrashCleanup adds a function run by HandleCrash before the report is printed.
// Cleanups run in reverse registration order. The returned func unregisters fn.
func RegisterCrashCleanup(fn func()) (unregister func()) {
	crashMu.Lock()
	defer crashMu.Unlock()

	crashNextID++
	id := crashNextID
	crashCleanups = append(crashCleanups, crashCleanup{id: id, fn: fn})

	return func() {
		crashMu.Lock()
		defer crashMu.Unlock()
		for i, c := range crashCleanups {
			if c.id == id {
				crashCleanups = append(crashCleanups[:i], crashCleanups[i+1:]...)
				return
			}
		}
	}
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fns := crashCleanups
	crashCleanups = nil
	crashMu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		runCleanup(fns[i].fn)
	}

	os.Stdout.Sync()

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// runCleanup isolates a failing cleanup so the remaining ones still run
func runCleanup(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
