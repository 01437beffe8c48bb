package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is the tcell screen to tear down before printing a crash,
// registered once at startup. Without it a panic leaves the terminal in
// raw mode with the alternate buffer active
var crashScreen tcell.Screen

// RegisterCrashScreen registers the screen for emergency teardown
func RegisterCrashScreen(s tcell.Screen) {
	crashScreen = s
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	if crashScreen != nil {
		crashScreen.Fini()
	} else {
		// Raw escape fallback: reset attributes, leave alternate buffer,
		// show cursor
		fmt.Fprint(os.Stdout, "\x1b[0m\x1b[?1049l\x1b[?25h")
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
