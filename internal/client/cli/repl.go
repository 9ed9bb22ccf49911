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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a read–eval–print loop over reader.
//
// The first token of a line is the command, the rest its arguments. The loop
// exits on EOF, on a read error, when ctx is done or when the user types
// "exit" or "quit". A line read after ctx is done is not dispatched.
//
//	Not logged in:
//	  - help           show available commands
//	  - login          sign in
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - list [page]    show the current (or given) page
//	  - next | prev    move between pages
//	  - page <n>       select page n and load it
//	  - search [q...]  filter the loaded page; no query shows all
//	  - create         add a user
//	  - edit <id>      change fields of a user
//	  - delete <id>    remove a user
//	  - refresh        reload the current page
//	  - clear          dismiss the last error
//	  - stats          show remote call counts and latency
//	  - whoami         show the signed-in user
//	  - logout         sign out
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("uc %s> ", statusFn()))
		line, err := readLineContext(ctx, reader)
		if err != nil || ctx.Err() != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [page], next, prev, page <n>, search [q], create, edit <id>, delete <id>, refresh, clear, stats, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			if isKnown(cmd) {
				printlnFn("Please login first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "l", "list":
			_ = a.List(ctx, args)
		case "next":
			_ = a.Next(ctx)
		case "prev":
			_ = a.Prev(ctx)
		case "page":
			_ = a.Page(ctx, args)
		case "search":
			_ = a.Search(ctx, args)
		case "create":
			_ = a.Create(ctx)
		case "edit":
			_ = a.Edit(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)
		case "refresh":
			_ = a.Refresh(ctx)
		case "clear":
			_ = a.Clear(ctx)
		case "stats":
			_ = a.Stats(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isKnown(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "l", "list", "next", "prev", "page", "search",
		"create", "edit", "delete", "refresh", "clear", "stats":
		return true
	}
	return false
}
