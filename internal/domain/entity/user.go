package entity

import (
	"net/http"
	"time"
)

// MaxAuthUsers caps a single identity listing.
const MaxAuthUsers = 1000

// Principal is the verified caller attached to a request.
type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

type ProviderInfo struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	ProviderID  string `json:"providerId"`
}

type AuthUser struct {
	UID            string         `json:"uid"`
	Email          string         `json:"email,omitempty"`
	DisplayName    string         `json:"displayName,omitempty"`
	PhotoURL       string         `json:"photoURL,omitempty"`
	EmailVerified  bool           `json:"emailVerified"`
	Disabled       bool           `json:"disabled"`
	CreationTime   *string        `json:"creationTime"`
	LastSignInTime *string        `json:"lastSignInTime"`
	ProviderData   []ProviderInfo `json:"providerData"`

	LastSignInAt time.Time `json:"-"`
}

// SetMetadata fills the rendered timestamps from epoch milliseconds. Zero
// means the event never happened and renders as null.
func (u *AuthUser) SetMetadata(createdMillis, lastSignInMillis int64) {
	u.CreationTime = httpDate(createdMillis)
	u.LastSignInTime = httpDate(lastSignInMillis)
	if lastSignInMillis > 0 {
		u.LastSignInAt = time.UnixMilli(lastSignInMillis).UTC()
	} else {
		u.LastSignInAt = time.Time{}
	}
}

func httpDate(millis int64) *string {
	if millis <= 0 {
		return nil
	}
	s := time.UnixMilli(millis).UTC().Format(http.TimeFormat)
	return &s
}

// CombinedUser is an identity record joined with its progress document.
type CombinedUser struct {
	AuthUser
	Progress map[string]interface{} `json:"progress"`
}
