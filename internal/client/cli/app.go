package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync/atomic"

	"casefile/internal/client/api"
	"casefile/internal/client/chat"
	"casefile/internal/client/config"
	"casefile/internal/client/creds"
	"casefile/internal/client/services"
	"casefile/internal/client/session"
	"casefile/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client together: one API client, one session controller, one
// chat manager. The session controller is the only writer of the credential;
// the API client and the chat manager read the token through it.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Controller
	cases   services.CaseService
	admin   services.AdminService
	chat    *chat.Manager
	chatLog *chat.EventLog
	reader  *bufio.Reader

	db     *sql.DB
	inChat atomic.Bool
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var store creds.Store

	db, err := creds.OpenDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Warn(ctx, "local credential database unavailable, session will not survive restarts", "error", err)
		store = creds.NewMemoryStore()
	} else {
		store = creds.NewSQLiteStore(db)
	}

	// The API client needs a token source and the session controller needs
	// the API client; the closure breaks the cycle.
	var ctrl *session.Controller
	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, func() string {
		if ctrl == nil {
			return ""
		}
		return ctrl.Token()
	})
	ctrl = session.New(apiClient, store, log)

	manager := chat.New(chat.Options{
		HubURL:               c.HubURL(),
		ReconnectBaseDelay:   c.ReconnectBaseDelay,
		ReconnectMaxAttempts: c.ReconnectMaxAttempts,
	}, log)
	ctrl.OnLogout(manager.Stop)

	app := &App{
		config:  c,
		log:     log,
		session: ctrl,
		cases:   services.NewCaseService(apiClient),
		admin:   services.NewAdminService(apiClient),
		chat:    manager,
		chatLog: chat.NewEventLog(),
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}
	app.wireChat()

	return app, nil
}

// wireChat feeds every hub event into the local log and, while the chat view
// is open, echoes it to the terminal.
func (a *App) wireChat() {
	a.chat.OnMessage(func(msg chat.ChatMessage) {
		a.chatLog.Append(chat.Event{Kind: chat.KindMessage, Username: msg.Username, Message: msg.Message, Timestamp: msg.Timestamp})
		if a.inChat.Load() {
			fmt.Printf("[%s] %s: %s\n", msg.Timestamp.Format("15:04:05"), msg.Username, msg.Message)
		}
	})
	a.chat.OnUserJoined(func(ev chat.UserEvent) {
		a.chatLog.Append(chat.Event{Kind: chat.KindJoined, Username: ev.Username, Timestamp: ev.Timestamp})
		if a.inChat.Load() {
			fmt.Printf("* %s joined\n", ev.Username)
		}
	})
	a.chat.OnUserLeft(func(ev chat.UserEvent) {
		a.chatLog.Append(chat.Event{Kind: chat.KindLeft, Username: ev.Username, Timestamp: ev.Timestamp})
		if a.inChat.Load() {
			fmt.Printf("* %s left\n", ev.Username)
		}
	})
	a.chat.OnStateChange(func(s chat.State) {
		if a.inChat.Load() {
			fmt.Println("chat:", s)
		}
	})
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated
}

func (a *App) isAdmin() bool {
	return a.session.Snapshot().User.IsAdmin()
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.User != nil {
		return fmt.Sprintf("(%s)", snap.User.Username)
	}
	if snap.Authenticated {
		return "(authenticated)"
	}
	return ""
}

// Run restores any persisted session, then hands control to the REPL until
// the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.chat.Stop()
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore previous session", "error", err)
	}

	printlnFn("Welcome to the casefile CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
