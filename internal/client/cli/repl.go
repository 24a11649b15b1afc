package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Create(ctx context.Context) error
	Update(ctx context.Context) error
	Transfer(ctx context.Context) error
	Delete(ctx context.Context) error
	Show(ctx context.Context) error
	Access(ctx context.Context) error
	Owner(ctx context.Context) error
	Stats(ctx context.Context) error
	Upload(ctx context.Context) error
	Download(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the ledger CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands available without login: register, login, ping, access, owner,
// stats, exit. After login the mutation and read commands appear: create,
// update, transfer, delete, show, upload, download, logout.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ledger %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: create, update, transfer, delete, show, access, owner, stats, upload, download, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, ping, access, owner, stats, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "create":
			_ = a.Create(ctx)

		case "update":
			_ = a.Update(ctx)

		case "transfer":
			_ = a.Transfer(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "show":
			_ = a.Show(ctx)

		case "access":
			_ = a.Access(ctx)

		case "owner":
			_ = a.Owner(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "download":
			_ = a.Download(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
