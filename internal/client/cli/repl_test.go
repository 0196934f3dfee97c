package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
	args  []string
}

func (f *fakeExec) record(call string, args ...string) error {
	f.calls = append(f.calls, call)
	f.args = append(f.args, args...)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Profile(ctx context.Context) error { return f.record("profile") }
func (f *fakeExec) Refresh(ctx context.Context) error { return f.record("refresh") }
func (f *fakeExec) Cases(ctx context.Context) error   { return f.record("cases") }
func (f *fakeExec) CaseDetail(ctx context.Context, caseID string) error {
	return f.record("case", caseID)
}
func (f *fakeExec) Progress(ctx context.Context, caseID string) error {
	return f.record("progress", caseID)
}
func (f *fakeExec) SaveProgress(ctx context.Context, caseID string) error {
	return f.record("save", caseID)
}
func (f *fakeExec) SubmitAnswer(ctx context.Context, caseID string) error {
	return f.record("submit", caseID)
}
func (f *fakeExec) SubmitInference(ctx context.Context, caseID string) error {
	return f.record("infer", caseID)
}
func (f *fakeExec) Suspects(ctx context.Context, caseID string) error {
	return f.record("suspects", caseID)
}
func (f *fakeExec) SuspectDetail(ctx context.Context, suspectID string) error {
	return f.record("suspect", suspectID)
}
func (f *fakeExec) UnlockClue(ctx context.Context, clueID string) error {
	return f.record("unlock", clueID)
}
func (f *fakeExec) Leaderboard(ctx context.Context) error { return f.record("leaderboard") }
func (f *fakeExec) Chat(ctx context.Context) error        { return f.record("chat") }
func (f *fakeExec) AdminCreate(ctx context.Context, file string) error {
	return f.record("admin-create", file)
}
func (f *fakeExec) AdminUpdate(ctx context.Context, caseID, file string) error {
	return f.record("admin-update", caseID, file)
}
func (f *fakeExec) AdminDelete(ctx context.Context, caseID string) error {
	return f.record("admin-delete", caseID)
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"cases",
		"case c1",
		"unlock clue-9",
		"leaderboard",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "cases", "case", "unlock", "leaderboard"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgumentsArePassedThrough(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("case c42\nsuspect s7\nadmin-update c42 draft.json\nquit\n")
	exec := &fakeExec{loggedIn: true, admin: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"c42", "s7", "c42", "draft.json"}
	if len(exec.args) != len(want) {
		t.Fatalf("unexpected args: %v", exec.args)
	}
	for i := range want {
		if exec.args[i] != want[i] {
			t.Fatalf("arg %d: got %q, want %q", i, exec.args[i], want[i])
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("case\nunlock\nadmin-update c1\nquit\n")
	exec := &fakeExec{loggedIn: true, admin: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_AdminCommandsHiddenFromRegularUsers(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("admin-create draft.json\nadmin-delete c1\nexit\n")
	exec := &fakeExec{loggedIn: true, admin: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("admin commands should not dispatch for non-admins: %v", exec.calls)
	}
}
