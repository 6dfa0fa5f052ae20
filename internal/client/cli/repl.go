package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Demo(ctx context.Context, kind string) error
	Signup(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or exit. Handlers report
// their own failures to the user, so their errors are dropped here.
//
//	help                        show available commands
//	login                       sign in with email and password
//	demo student|professor      sign in with a demo account
//	signup                      create an account
//	whoami                      show the signed-in user
//	logout                      sign out
//	exit | quit                 leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ttio %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
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
				printlnFn("Available commands: whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, demo <student|professor>, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "demo":
			kind := ""
			if len(args) > 0 {
				kind = args[0]
			}
			_ = a.Demo(ctx, kind)

		case "signup":
			_ = a.Signup(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

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
