package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"casefile/internal/client/chat"
	"casefile/internal/client/session"
)

// Chat opens the chat view. The connection is started lazily on first entry
// and kept alive when the view is left; logout tears it down.
func (a *App) Chat(ctx context.Context) error {
	token := a.session.Token()
	if token == "" {
		printlnFn("Log in first.")
		return session.ErrNotAuthenticated
	}

	a.chat.Start(ctx, token)
	if a.chat.State() == chat.StateDisconnected {
		printlnFn("Chat is unavailable right now; try again later.")
		return nil
	}

	a.inChat.Store(true)
	defer a.inChat.Store(false)

	printlnFn("Entered chat. /log replays recent events, /quit leaves the view.")
	for _, e := range a.chatLog.Events() {
		printEvent(e)
	}

	for {
		line, err := getSimpleText(a.reader, "", os.Stdout)
		if err != nil {
			return err
		}
		switch {
		case line == "":
			continue
		case line == "/quit":
			return nil
		case line == "/log":
			for _, e := range a.chatLog.Events() {
				printEvent(e)
			}
		case strings.HasPrefix(line, "/"):
			printlnFn("Unknown chat command:", line)
		default:
			_ = a.chat.Send(ctx, line)
		}
	}
}

func printEvent(e chat.Event) {
	switch e.Kind {
	case chat.KindJoined:
		printlnFn(fmt.Sprintf("* %s joined", e.Username))
	case chat.KindLeft:
		printlnFn(fmt.Sprintf("* %s left", e.Username))
	default:
		printlnFn(fmt.Sprintf("[%s] %s: %s", e.Timestamp.Format("15:04:05"), e.Username, e.Message))
	}
}
