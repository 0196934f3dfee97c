package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"casefile/internal/client/session"
	"casefile/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for a username, email and password (entered twice) and
// creates an account. A successful registration logs the user straight in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	if err := validateUsername(username); err != nil {
		printlnFn(err.Error())
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if err := validatePassword(string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	confirm, err := getPassword("Repeat password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	if !bytes.Equal(password, confirm) {
		printlnFn("Passwords do not match")
		return errors.New("passwords do not match")
	}

	if err := a.session.Register(ctx, username, email, string(password)); err != nil {
		if errors.Is(err, session.ErrFlowInProgress) {
			printlnFn("Another sign-in is already in progress")
			return err
		}
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", username))
	return nil
}

// Login prompts for credentials and authenticates via the session
// controller. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	usernameOrEmail, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, usernameOrEmail, string(password)); err != nil {
		if errors.Is(err, session.ErrFlowInProgress) {
			printlnFn("Another sign-in is already in progress")
			return err
		}
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in.")
	return nil
}

// Logout ends the session. The controller tears down the chat connection and
// clears the persisted credential; this never fails from the user's side.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Profile shows the cached account snapshot.
func (a *App) Profile(ctx context.Context) error {
	snap := a.session.Snapshot()
	if snap.User == nil {
		printlnFn("Profile not loaded yet; try 'refresh'")
		return nil
	}
	u := snap.User
	printlnFn(fmt.Sprintf("%s <%s>", u.Username, u.Email))
	printlnFn(fmt.Sprintf("  role: %s  points: %d  cases solved: %d", u.Role, u.Points, u.TotalCasesSolved))
	printlnFn(fmt.Sprintf("  member since: %s", u.JoinedAt.Format("2006-01-02")))
	return nil
}

// Refresh re-fetches the profile from the backend. Point balances change
// server-side on every unlock and solve, so this is the way to catch up.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.session.RefreshUser(ctx); err != nil {
		printlnFn("Refresh failed:", err.Error())
		return err
	}
	return a.Profile(ctx)
}
