// Package models defines the client-side records exchanged with the WIP
// backend: users, products, suppliers, orders and educational contents.
package models

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/wip-project/wipcli/internal/common"
)

// User is the canonical user record held by the session. Every optional
// field is always present (empty string when the backend omits it); Token is
// the opaque bearer token issued on sign-in or sign-up. CreationDate is the
// company founding date, not the account creation date.
type User struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	CompanyName        string `json:"companyName"`
	CreationDate       string `json:"creationDate"`
	ProfilePicturePath string `json:"profilePicturePath"`
	Preferences        string `json:"preferences"`
	Token              string `json:"token"`
}

// authPayload mirrors the loose shape of the backend auth responses. The id
// arrives under either "id" or "userId" depending on the endpoint, and every
// other field may be absent, null or empty.
type authPayload struct {
	ID                 *int64 `json:"id"`
	UserID             *int64 `json:"userId"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	CompanyName        string `json:"companyName"`
	CreationDate       string `json:"creationDate"`
	ProfilePicturePath string `json:"profilePicturePath"`
	Preferences        string `json:"preferences"`
	Token              string `json:"token"`
}

// UserFromAuthResponse normalizes a raw auth response body into a canonical
// User. The backend reports the assigned id under "id" on sign-in and under
// "userId" on sign-up; both are accepted. A body carrying neither is a
// contract violation and yields common.ErrMissingUserID wrapped with the keys
// actually received, so the defect is diagnosable from the message alone.
//
// loginEmail is the email the user submitted; it backfills the Email field
// when the response omits it.
func UserFromAuthResponse(body []byte, loginEmail string) (*User, error) {
	var p authPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decoding auth response: %w", err)
	}

	var id int64
	switch {
	case p.ID != nil:
		id = *p.ID
	case p.UserID != nil:
		id = *p.UserID
	default:
		return nil, fmt.Errorf("%w: response keys %v", common.ErrMissingUserID, payloadKeys(body))
	}

	email := p.Email
	if email == "" {
		email = loginEmail
	}

	return &User{
		ID:                 id,
		Name:               p.Name,
		Email:              email,
		CompanyName:        p.CompanyName,
		CreationDate:       p.CreationDate,
		ProfilePicturePath: p.ProfilePicturePath,
		Preferences:        p.Preferences,
		Token:              p.Token,
	}, nil
}

// payloadKeys lists the top-level keys of a JSON object body, sorted, for use
// in diagnostics. Undecodable bodies yield an empty list.
func payloadKeys(body []byte) []string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
