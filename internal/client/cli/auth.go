package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/wip-project/wipcli/internal/client/signup"
	"github.com/wip-project/wipcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend.
// On success the session is persisted and the user stays logged in across
// restarts. The password byte slice is wiped before returning. Failures are
// reported to the user; backend messages are shown verbatim, transport
// failures as a generic connection error.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.SignIn(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in.")
	return nil
}

// Register walks the user through the registration steps: basic info, email
// verification, company info. Typing "back" at the code or company prompts
// returns to the previous step with earlier input preserved. Validation
// failures re-prompt the current step.
func (a *App) Register(ctx context.Context) error {
	var state any = signup.BasicInfo{}

	for {
		switch s := state.(type) {

		case signup.BasicInfo:
			next, err := a.promptBasicInfo(s)
			if err != nil {
				return err
			}
			awaiting, err := next.Next()
			if err != nil {
				printlnFn(err.Error())
				state = next
				continue
			}
			if err := a.auth.SendVerificationCode(ctx, awaiting.Email()); err != nil {
				printlnFn("Could not send verification code:", err.Error())
				return err
			}
			printlnFn(fmt.Sprintf("A verification code was sent to %s", awaiting.Email()))
			state = awaiting

		case signup.AwaitingCode:
			code, err := getSimpleText(a.reader, "Enter the 6-digit code (or 'back')", os.Stdout)
			if err != nil {
				return err
			}
			if code == "back" {
				state = s.Back()
				continue
			}
			company, err := s.Verify(code)
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			if err := a.auth.VerifyCode(ctx, s.Email(), code); err != nil {
				printlnFn("Code rejected:", err.Error())
				continue
			}
			state = company

		case signup.CompanyInfo:
			name, err := getSimpleText(a.reader, "Company name (or 'back')", os.Stdout)
			if err != nil {
				return err
			}
			if name == "back" {
				state = s.Back()
				continue
			}
			date, err := getSimpleText(a.reader, "Company creation date (YYYY-MM-DD)", os.Stdout)
			if err != nil {
				return err
			}
			done, err := s.Complete(name, date)
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			state = done

		case signup.Completed:
			if err := a.auth.SignUp(ctx, s.Request()); err != nil {
				printlnFn("Registration failed:", err.Error())
				return err
			}
			printlnFn("Registration complete. You are now logged in.")
			return nil
		}
	}
}

func (a *App) promptBasicInfo(prev signup.BasicInfo) (signup.BasicInfo, error) {
	name, err := getSimpleText(a.reader, "Your name", os.Stdout)
	if err != nil {
		return prev, err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return prev, err
	}
	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return prev, err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return prev, err
	}
	defer common.WipeByteArray(confirm)

	return signup.BasicInfo{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}, nil
}

// Logout clears the session and its persisted state. Safe to call when
// already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
