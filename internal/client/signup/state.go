// Package signup models the multi-step registration flow as explicit tagged
// states with named transitions. Each state carries exactly the fields its
// step collects, so an invalid intermediate state (e.g. company info without
// a verified code) cannot be constructed. Backward transitions are
// unrestricted; forward transitions validate.
package signup

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/common"
)

const minPasswordLen = 6

// CodeLen is the exact length of the email verification code.
const CodeLen = 6

var (
	ErrNameRequired         = fmt.Errorf("%w: name is required", common.ErrValidation)
	ErrEmailRequired        = fmt.Errorf("%w: email is required", common.ErrValidation)
	ErrPasswordRequired     = fmt.Errorf("%w: password is required", common.ErrValidation)
	ErrPasswordTooShort     = fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	ErrPasswordMismatch     = fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	ErrCodeFormat           = fmt.Errorf("%w: verification code must be %d digits", common.ErrValidation, CodeLen)
	ErrCompanyNameRequired  = fmt.Errorf("%w: company name is required", common.ErrValidation)
	ErrCreationDateRequired = fmt.Errorf("%w: creation date is required", common.ErrValidation)
)

// BasicInfo is the first step: identity and credentials.
type BasicInfo struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Next validates the basic fields and advances to the verification step.
// The caller is expected to have requested a code for the email before or
// right after this transition.
func (b BasicInfo) Next() (AwaitingCode, error) {
	switch {
	case strings.TrimSpace(b.Name) == "":
		return AwaitingCode{}, ErrNameRequired
	case strings.TrimSpace(b.Email) == "":
		return AwaitingCode{}, ErrEmailRequired
	case b.Password == "":
		return AwaitingCode{}, ErrPasswordRequired
	case len(b.Password) < minPasswordLen:
		return AwaitingCode{}, ErrPasswordTooShort
	case b.Password != b.ConfirmPassword:
		return AwaitingCode{}, ErrPasswordMismatch
	}
	return AwaitingCode{basic: b}, nil
}

// AwaitingCode is the second step: a verification code has been sent to the
// email and must be entered.
type AwaitingCode struct {
	basic BasicInfo
}

// Email returns the address the code was sent to.
func (a AwaitingCode) Email() string { return a.basic.Email }

// Verify checks the code format and advances to the company-info step. The
// backend's acceptance of the code is the caller's responsibility (the
// verify-code endpoint); this transition only enforces the 6-digit shape.
func (a AwaitingCode) Verify(code string) (CompanyInfo, error) {
	code = strings.TrimSpace(code)
	if len(code) != CodeLen {
		return CompanyInfo{}, ErrCodeFormat
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return CompanyInfo{}, ErrCodeFormat
		}
	}
	return CompanyInfo{basic: a.basic, code: code}, nil
}

// Back returns to the basic-info step, keeping what was entered.
func (a AwaitingCode) Back() BasicInfo { return a.basic }

// CompanyInfo is the third step: company name and founding date.
type CompanyInfo struct {
	basic BasicInfo
	code  string
}

// Complete validates the company fields and produces the terminal state.
func (c CompanyInfo) Complete(companyName, creationDate string) (Completed, error) {
	if strings.TrimSpace(companyName) == "" {
		return Completed{}, ErrCompanyNameRequired
	}
	if strings.TrimSpace(creationDate) == "" {
		return Completed{}, ErrCreationDateRequired
	}
	return Completed{
		basic:        c.basic,
		code:         c.code,
		companyName:  companyName,
		creationDate: creationDate,
	}, nil
}

// Back returns to the verification step.
func (c CompanyInfo) Back() AwaitingCode { return AwaitingCode{basic: c.basic} }

// Completed holds everything the registration endpoint needs.
type Completed struct {
	basic        BasicInfo
	code         string
	companyName  string
	creationDate string
}

// Request assembles the sign-up payload with all six fields.
func (c Completed) Request() api.SignUpRequest {
	return api.SignUpRequest{
		Name:             c.basic.Name,
		Email:            c.basic.Email,
		Password:         c.basic.Password,
		VerificationCode: c.code,
		CompanyName:      c.companyName,
		CreationDate:     c.creationDate,
	}
}
