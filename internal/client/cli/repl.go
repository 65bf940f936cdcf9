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
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Upload(ctx context.Context) error
	History(ctx context.Context) error
	Search(ctx context.Context) error
	Stats(ctx context.Context) error
	Download(ctx context.Context, target string) error
	DarkMode(ctx context.Context) error
	About(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the invoice dashboard.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - profile        — show the billing profile
//	  - edit           — edit the billing profile
//	  - upload         — upload an invoice for extraction
//	  - history        — list past uploads
//	  - search         — filter past uploads
//	  - stats          — summarize past uploads
//	  - download <f>   — download a generated result file
//	  - darkmode       — toggle the dark theme
//	  - about          — show version information
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("exlpro> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, edit, upload, (h)istory, search, stats, download <file>, darkmode, about, logout, exit")
			} else {
				printlnFn("Available commands: register, login, darkmode, about, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "search":
			_ = a.Search(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "download":
			if len(args) == 0 {
				printlnFn("Usage: download <filename>")
				continue
			}
			_ = a.Download(ctx, args[0])

		case "darkmode":
			_ = a.DarkMode(ctx)

		case "about":
			_ = a.About(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
