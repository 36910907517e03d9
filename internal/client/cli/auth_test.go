package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wip-project/wipcli/internal/client/api"
)

// stubInputs replaces the interactive input seams with queues. Each prompt
// consumes the next queued value; an exhausted queue yields EOF.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	signInEmail    string
	signInPassword string
	signInErr      error

	sentTo   []string
	sendErr  error
	verified []string
	verErr   error

	signUpReq *api.SignUpRequest
	signUpErr error

	profile    *api.ProfileUpdate
	profileErr error

	uploadName string
	uploadErr  error

	logoutN int
}

func (f *fakeAuth) SignIn(_ context.Context, email, password string) error {
	f.signInEmail, f.signInPassword = email, password
	return f.signInErr
}
func (f *fakeAuth) SignUp(_ context.Context, req api.SignUpRequest) error {
	f.signUpReq = &req
	return f.signUpErr
}
func (f *fakeAuth) SendVerificationCode(_ context.Context, email string) error {
	f.sentTo = append(f.sentTo, email)
	return f.sendErr
}
func (f *fakeAuth) VerifyCode(_ context.Context, email, code string) error {
	f.verified = append(f.verified, email+":"+code)
	return f.verErr
}
func (f *fakeAuth) UpdateProfile(_ context.Context, update api.ProfileUpdate) error {
	f.profile = &update
	return f.profileErr
}
func (f *fakeAuth) UploadProfilePicture(_ context.Context, filename string, _ io.Reader) error {
	f.uploadName = filename
	return f.uploadErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutN++
	return nil
}

func newAuthApp(f *fakeAuth) *App {
	return &App{auth: f, reader: bufio.NewReader(strings.NewReader(""))}
}

func TestLogin_Success(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"ann@example.com"}, []string{"secret1"})

	f := &fakeAuth{}
	a := newAuthApp(f)
	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, "ann@example.com", f.signInEmail)
	require.Equal(t, "secret1", f.signInPassword)
}

func TestLogin_FailureReported(t *testing.T) {
	lines := silencePrintln(t)
	stubInputs(t, []string{"ann@example.com"}, []string{"wrong"})

	f := &fakeAuth{signInErr: errors.New("Invalid credentials")}
	a := newAuthApp(f)
	require.Error(t, a.Login(context.Background()))

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Invalid credentials") {
			found = true
		}
	}
	require.True(t, found, "backend message not surfaced: %v", *lines)
}

func TestRegister_FullFlow(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"Ann", "ann@example.com", "123456", "Acme", "2020-05-01"},
		[]string{"secret1", "secret1"})

	f := &fakeAuth{}
	a := newAuthApp(f)
	require.NoError(t, a.Register(context.Background()))

	require.Equal(t, []string{"ann@example.com"}, f.sentTo)
	require.Equal(t, []string{"ann@example.com:123456"}, f.verified)

	require.NotNil(t, f.signUpReq)
	require.Equal(t, "Ann", f.signUpReq.Name)
	require.Equal(t, "ann@example.com", f.signUpReq.Email)
	require.Equal(t, "secret1", f.signUpReq.Password)
	require.Equal(t, "123456", f.signUpReq.VerificationCode)
	require.Equal(t, "Acme", f.signUpReq.CompanyName)
	require.Equal(t, "2020-05-01", f.signUpReq.CreationDate)
}

func TestRegister_PasswordMismatchReprompts(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"Ann", "ann@example.com", "Ann", "ann@example.com", "123456", "Acme", "2020-05-01"},
		[]string{"secret1", "other11", "secret1", "secret1"})

	f := &fakeAuth{}
	a := newAuthApp(f)
	require.NoError(t, a.Register(context.Background()))

	// the code is sent only after the basic step validates
	require.Equal(t, []string{"ann@example.com"}, f.sentTo)
	require.NotNil(t, f.signUpReq)
}

func TestRegister_BadCodeRejectedLocally(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"Ann", "ann@example.com", "12ab56", "123456", "Acme", "2020-05-01"},
		[]string{"secret1", "secret1"})

	f := &fakeAuth{}
	a := newAuthApp(f)
	require.NoError(t, a.Register(context.Background()))

	// malformed code never reaches the backend
	require.Equal(t, []string{"ann@example.com:123456"}, f.verified)
}

func TestRegister_BackFromCodeStep(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"Ann", "ann@example.com", "back", "Joan", "joan@example.com", "123456", "Acme", "2020-05-01"},
		[]string{"secret1", "secret1", "secret1", "secret1"})

	f := &fakeAuth{}
	a := newAuthApp(f)
	require.NoError(t, a.Register(context.Background()))

	require.Equal(t, []string{"ann@example.com", "joan@example.com"}, f.sentTo)
	require.Equal(t, "Joan", f.signUpReq.Name)
}

func TestLogout(t *testing.T) {
	silencePrintln(t)

	f := &fakeAuth{}
	a := newAuthApp(f)
	require.NoError(t, a.Logout(context.Background()))
	require.NoError(t, a.Logout(context.Background()))
	require.Equal(t, 2, f.logoutN)
}
