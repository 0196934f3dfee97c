package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Refresh(ctx context.Context) error
	Cases(ctx context.Context) error
	CaseDetail(ctx context.Context, caseID string) error
	Progress(ctx context.Context, caseID string) error
	SaveProgress(ctx context.Context, caseID string) error
	SubmitAnswer(ctx context.Context, caseID string) error
	SubmitInference(ctx context.Context, caseID string) error
	Suspects(ctx context.Context, caseID string) error
	SuspectDetail(ctx context.Context, suspectID string) error
	UnlockClue(ctx context.Context, clueID string) error
	Leaderboard(ctx context.Context) error
	Chat(ctx context.Context) error
	AdminCreate(ctx context.Context, file string) error
	AdminUpdate(ctx context.Context, caseID, file string) error
	AdminDelete(ctx context.Context, caseID string) error
}

// runREPL starts a simple read-eval-print loop for the casefile CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that need an argument print a usage hint when it is missing.
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cf %s> ", statusFn()))
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
				printlnFn("Available commands: profile, refresh, cases, case <id>, progress <id>, save <id>, submit <id>, infer <id>, suspects <caseId>, suspect <id>, unlock <clueId>, leaderboard, chat, logout, exit")
				if a.isAdmin() {
					printlnFn("Admin commands: admin-create <file>, admin-update <id> <file>, admin-delete <id>")
				}
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "cases":
			_ = a.Cases(ctx)

		case "case":
			if len(args) == 0 {
				printlnFn("Usage: case <id>")
				continue
			}
			_ = a.CaseDetail(ctx, args[0])

		case "progress":
			if len(args) == 0 {
				printlnFn("Usage: progress <id>")
				continue
			}
			_ = a.Progress(ctx, args[0])

		case "save":
			if len(args) == 0 {
				printlnFn("Usage: save <id>")
				continue
			}
			_ = a.SaveProgress(ctx, args[0])

		case "submit":
			if len(args) == 0 {
				printlnFn("Usage: submit <id>")
				continue
			}
			_ = a.SubmitAnswer(ctx, args[0])

		case "infer":
			if len(args) == 0 {
				printlnFn("Usage: infer <id>")
				continue
			}
			_ = a.SubmitInference(ctx, args[0])

		case "suspects":
			if len(args) == 0 {
				printlnFn("Usage: suspects <caseId>")
				continue
			}
			_ = a.Suspects(ctx, args[0])

		case "suspect":
			if len(args) == 0 {
				printlnFn("Usage: suspect <id>")
				continue
			}
			_ = a.SuspectDetail(ctx, args[0])

		case "unlock":
			if len(args) == 0 {
				printlnFn("Usage: unlock <clueId>")
				continue
			}
			_ = a.UnlockClue(ctx, args[0])

		case "leaderboard":
			_ = a.Leaderboard(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "admin-create":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: admin-create <file>")
				continue
			}
			_ = a.AdminCreate(ctx, args[0])

		case "admin-update":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if len(args) < 2 {
				printlnFn("Usage: admin-update <id> <file>")
				continue
			}
			_ = a.AdminUpdate(ctx, args[0], args[1])

		case "admin-delete":
			if !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: admin-delete <id>")
				continue
			}
			_ = a.AdminDelete(ctx, args[0])

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
