// Package services contains the application services of the WIP client.
// This file defines the auth gateway: sign-in, sign-up with email
// verification, profile updates and logout, all writing through to the
// session.
package services

import (
	"context"
	"fmt"
	"io"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/client/session"
	"github.com/wip-project/wipcli/internal/common"
	"github.com/wip-project/wipcli/internal/logging"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - SignIn / SignUp: authenticate against the backend, normalize the
//     response into the canonical user, persist it and update the session.
//     Expected failures (bad credentials, validation, connection loss,
//     contract violations) come back as error values fit for direct display;
//     nothing is persisted on failure.
//   - SendVerificationCode / VerifyCode: the email-verification collaborator
//     endpoints used by the registration flow.
//   - UpdateProfile / UploadProfilePicture: bearer-authenticated mutations
//     scoped to the current user; both require an authenticated session and
//     fail before any request without one.
//   - Logout: clears the session and its persisted state; idempotent.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, req api.SignUpRequest) error
	SendVerificationCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) error
	UploadProfilePicture(ctx context.Context, filename string, file io.Reader) error
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	sess   *session.Session
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session.
func NewAuthService(client api.Client, sess *session.Session, log logging.Logger) AuthService {
	return &authService{client: client, sess: sess, log: log}
}

// SignIn authenticates with email and password. An HTTP 200 without a user
// id is a backend contract violation: it surfaces as an error and the
// session store stays untouched, so no ghost session without identity can
// ever be created.
func (a *authService) SignIn(ctx context.Context, email, password string) error {
	body, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	u, err := models.UserFromAuthResponse(body, email)
	if err != nil {
		a.log.Error(ctx, "sign-in response rejected", "err", err)
		return err
	}

	if err := a.sess.SetUser(ctx, u); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	a.log.Info(ctx, "signed in", "user_id", u.ID)
	return nil
}

// SignUp registers a new account. The verification code in req must already
// have been accepted via VerifyCode; the backend re-checks it. The assigned
// id may arrive under "id" or "userId"; both are accepted.
func (a *authService) SignUp(ctx context.Context, req api.SignUpRequest) error {
	body, err := a.client.SignUp(ctx, req)
	if err != nil {
		return err
	}

	u, err := models.UserFromAuthResponse(body, req.Email)
	if err != nil {
		a.log.Error(ctx, "sign-up response rejected", "err", err)
		return err
	}

	if err := a.sess.SetUser(ctx, u); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	a.log.Info(ctx, "registered", "user_id", u.ID)
	return nil
}

func (a *authService) SendVerificationCode(ctx context.Context, email string) error {
	return a.client.SendVerificationCode(ctx, email)
}

func (a *authService) VerifyCode(ctx context.Context, email, code string) error {
	return a.client.VerifyCode(ctx, email, code)
}

// UpdateProfile sends the complete profile record for the current user and
// replaces the session user with the backend's response. The stored token is
// carried over when the response omits it.
func (a *authService) UpdateProfile(ctx context.Context, update api.ProfileUpdate) error {
	cur := a.sess.Current()
	if cur == nil {
		return fmt.Errorf("cannot update profile: %w", common.ErrNotAuthenticated)
	}
	update.ID = cur.ID

	body, err := a.client.UpdateProfile(ctx, cur.Token, update)
	if err != nil {
		return err
	}
	return a.replaceSessionUser(ctx, body, cur)
}

// UploadProfilePicture sends the picture as a multipart body and replaces
// the session user with the backend's response.
func (a *authService) UploadProfilePicture(ctx context.Context, filename string, file io.Reader) error {
	cur := a.sess.Current()
	if cur == nil {
		return fmt.Errorf("cannot upload picture: %w", common.ErrNotAuthenticated)
	}

	body, err := a.client.UploadProfilePicture(ctx, cur.Token, cur.ID, filename, file)
	if err != nil {
		return err
	}
	return a.replaceSessionUser(ctx, body, cur)
}

func (a *authService) replaceSessionUser(ctx context.Context, body []byte, cur *models.User) error {
	u, err := models.UserFromAuthResponse(body, cur.Email)
	if err != nil {
		a.log.Error(ctx, "profile response rejected", "err", err)
		return err
	}
	if u.Token == "" {
		u.Token = cur.Token
	}
	if err := a.sess.SetUser(ctx, u); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

// Logout clears the in-memory session and the persisted user and token.
// Calling it when already logged out still succeeds.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.sess.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}
