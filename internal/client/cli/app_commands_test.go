package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casefile/internal/client/api"
	"casefile/internal/client/chat"
	"casefile/internal/client/creds"
	"casefile/internal/client/models"
	"casefile/internal/client/services"
	"casefile/internal/client/session"
	"casefile/internal/logging"
)

// stubAPI overrides only what a test needs; anything else panics loudly.
type stubAPI struct {
	api.Client

	registerFn func(models.RegisterRequest) (string, error)
	loginFn    func(models.LoginRequest) (*models.LoginResponse, error)
	profileFn  func() (*models.UserProfile, error)
	unlockFn   func(string) (*models.Clue, error)
	deleted    []string
}

func (s *stubAPI) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	return s.registerFn(req)
}

func (s *stubAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return s.loginFn(req)
}

func (s *stubAPI) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	return s.profileFn()
}

func (s *stubAPI) UnlockClue(ctx context.Context, clueID string) (*models.Clue, error) {
	return s.unlockFn(clueID)
}

func (s *stubAPI) DeleteCase(ctx context.Context, caseID string) error {
	s.deleted = append(s.deleted, caseID)
	return nil
}

func newTestApp(t *testing.T, stub *stubAPI) *App {
	t.Helper()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctrl := session.New(stub, creds.NewMemoryStore(), log)

	return &App{
		log:     log,
		session: ctrl,
		cases:   services.NewCaseService(stub),
		admin:   services.NewAdminService(stub),
		chat:    chat.New(chat.Options{HubURL: "ws://localhost:0"}, log),
		chatLog: chat.NewEventLog(),
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// stubInput scripts the interactive prompts: text answers are consumed in
// order, the password answer is returned for every password prompt.
func stubInput(t *testing.T, answers []string, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	origMultiline := getMultiline
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
		getMultiline = origMultiline
	})

	i := 0
	next := func() string {
		if i >= len(answers) {
			t.Fatalf("unexpected extra prompt (answered %d already)", i)
		}
		a := answers[i]
		i++
		return a
	}
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return next(), nil
	}
	getMultiline = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return next(), nil
	}
	getPassword = func(prompt string, w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func collectOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var lines []string
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	return &lines
}

func TestRegister_AutoLoginThroughSession(t *testing.T) {
	stub := &stubAPI{
		registerFn: func(req models.RegisterRequest) (string, error) {
			return "registered", nil
		},
		loginFn: func(req models.LoginRequest) (*models.LoginResponse, error) {
			return &models.LoginResponse{
				Token:     "tok",
				ExpiresAt: time.Now().Add(time.Hour),
				Username:  req.UsernameOrEmail,
			}, nil
		},
		profileFn: func() (*models.UserProfile, error) {
			return &models.UserProfile{Username: "detective1", Role: "User"}, nil
		},
	}

	app := newTestApp(t, stub)
	stubInput(t, []string{"detective1", "d1@example.com"}, "secret1")
	collectOutput(t)

	require.NoError(t, app.Register(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.False(t, app.isAdmin())
	assert.Equal(t, "tok", app.session.Token())
}

func TestRegister_RejectsShortPasswordLocally(t *testing.T) {
	called := false
	stub := &stubAPI{
		registerFn: func(models.RegisterRequest) (string, error) {
			called = true
			return "", nil
		},
	}

	app := newTestApp(t, stub)
	stubInput(t, []string{"detective1", "d1@example.com"}, "short")
	collectOutput(t)

	require.Error(t, app.Register(context.Background()))
	assert.False(t, called)
	assert.False(t, app.isLoggedIn())
}

func TestLogin_FailureLeavesLoggedOut(t *testing.T) {
	stub := &stubAPI{
		loginFn: func(models.LoginRequest) (*models.LoginResponse, error) {
			return nil, api.ErrUnauthorized
		},
	}

	app := newTestApp(t, stub)
	stubInput(t, []string{"detective1"}, "wrong-password")
	collectOutput(t)

	require.Error(t, app.Login(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Empty(t, app.session.Token())
}

func TestUnlockClue_PrintsBackendRejection(t *testing.T) {
	stub := &stubAPI{
		unlockFn: func(string) (*models.Clue, error) {
			return nil, &api.APIError{Status: 400, Message: "insufficient points"}
		},
	}

	app := newTestApp(t, stub)
	lines := collectOutput(t)

	require.Error(t, app.UnlockClue(context.Background(), "clue-1"))
	assert.Contains(t, strings.Join(*lines, ""), "insufficient points")
}

func TestAdminDelete_ConfirmationMismatchAborts(t *testing.T) {
	stub := &stubAPI{}

	app := newTestApp(t, stub)
	stubInput(t, []string{"something-else"}, "")
	collectOutput(t)

	require.NoError(t, app.AdminDelete(context.Background(), "case-1"))
	assert.Empty(t, stub.deleted)
}

func TestAdminDelete_ConfirmedDeletes(t *testing.T) {
	stub := &stubAPI{}

	app := newTestApp(t, stub)
	stubInput(t, []string{"case-1"}, "")
	collectOutput(t)

	require.NoError(t, app.AdminDelete(context.Background(), "case-1"))
	assert.Equal(t, []string{"case-1"}, stub.deleted)
}
