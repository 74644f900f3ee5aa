package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"admindash/internal/domain/entity"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken checks signature, expiry and revocation-independent claims of
// an ID token and returns the caller it identifies.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*entity.Principal, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	principal := &entity.Principal{UID: result.UID}
	if email, ok := result.Claims["email"].(string); ok {
		principal.Email = email
	}
	return principal, nil
}

// ListUsers pages through the identity store until max records are read.
func (f *FirebaseAuthClient) ListUsers(ctx context.Context, max int) ([]*entity.AuthUser, error) {
	iter := f.client.Users(ctx, "")

	users := make([]*entity.AuthUser, 0)
	for len(users) < max {
		record, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		users = append(users, toAuthUser(record.UserRecord))
	}
	return users, nil
}

func toAuthUser(record *auth.UserRecord) *entity.AuthUser {
	user := &entity.AuthUser{
		EmailVerified: record.EmailVerified,
		Disabled:      record.Disabled,
		ProviderData:  make([]entity.ProviderInfo, 0, len(record.ProviderUserInfo)),
	}
	if record.UserInfo != nil {
		user.UID = record.UID
		user.Email = record.Email
		user.DisplayName = record.DisplayName
		user.PhotoURL = record.PhotoURL
	}

	var created, lastSignIn int64
	if record.UserMetadata != nil {
		created = record.UserMetadata.CreationTimestamp
		lastSignIn = record.UserMetadata.LastLogInTimestamp
	}
	user.SetMetadata(created, lastSignIn)

	for _, info := range record.ProviderUserInfo {
		if info == nil {
			continue
		}
		user.ProviderData = append(user.ProviderData, entity.ProviderInfo{
			UID:         info.UID,
			DisplayName: info.DisplayName,
			Email:       info.Email,
			PhoneNumber: info.PhoneNumber,
			PhotoURL:    info.PhotoURL,
			ProviderID:  info.ProviderID,
		})
	}
	return user
}
