package repository

import "context"

type AdminRepository interface {
	// IsAdmin reports whether uid has an admin record with isAdmin == true.
	// A missing record is not an error.
	IsAdmin(ctx context.Context, uid string) (bool, error)
}
