package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, key string) error
	Logout(ctx context.Context) error
	Members(ctx context.Context) error
	Switch(ctx context.Context, memberID string) error
	Shift(ctx context.Context, offset int) error
	Add(ctx context.Context, name string) error
	Toggle(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
	List(ctx context.Context) error
	Stats(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login [key], exit"
	helpLoggedIn  = "Available commands: (l)ist, add <name>, toggle <id>, delete <id>, prev, next, shift <n>, stats, members, switch <id>, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the primezone CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, on ctx cancellation, or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("pz %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx, strings.Join(args, ""))

		case "logout":
			_ = a.Logout(ctx)

		case "members":
			_ = a.Members(ctx)

		case "switch":
			if len(args) != 1 {
				printlnFn("Usage: switch <member id>")
				continue
			}
			_ = a.Switch(ctx, args[0])

		case "prev":
			_ = a.Shift(ctx, -1)

		case "next":
			_ = a.Shift(ctx, 1)

		case "shift":
			if len(args) != 1 {
				printlnFn("Usage: shift <days>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Usage: shift <days>")
				continue
			}
			_ = a.Shift(ctx, n)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <name>")
				continue
			}
			_ = a.Add(ctx, strings.Join(args, " "))

		case "toggle", "t":
			if len(args) != 1 {
				printlnFn("Usage: toggle <id>")
				continue
			}
			_ = a.Toggle(ctx, args[0])

		case "delete", "rm":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "l", "list":
			_ = a.List(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
