package entity

import "time"

const (
	FeedbackCollection   = "feedback"
	RecycleBinCollection = "recycleBin"

	FeedbackListLimit = 100

	FeedbackStatusNew      = "new"
	FeedbackStatusRead     = "read"
	FeedbackStatusResolved = "resolved"

	DefaultFeedbackUserName = "Anonymous"

	FieldStatus     = "status"
	FieldTimestamp  = "timestamp"
	FieldUpdatedAt  = "updatedAt"
	FieldRecycledAt = "recycledAt"
	FieldExpiresAt  = "expiresAt"
	FieldRestoredAt = "restoredAt"
)

// DefaultRecycleRetention is how long a resolved feedback stays restorable.
const DefaultRecycleRetention = 30 * 24 * time.Hour

type Feedback struct {
	UserID    string    `json:"userId" firestore:"userId"`
	Message   string    `json:"message" firestore:"message"`
	UserName  string    `json:"userName" firestore:"userName"`
	UserEmail string    `json:"userEmail" firestore:"userEmail"`
	Status    string    `json:"status" firestore:"status"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}

// IsAdminSettableStatus reports whether status may be set through the plain
// status update. Resolution has its own operation.
func IsAdminSettableStatus(status string) bool {
	return status == FeedbackStatusNew || status == FeedbackStatusRead
}
