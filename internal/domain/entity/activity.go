package entity

import "time"

const (
	ActivityCollection = "activities"
	ActivityListLimit  = 20
)

type Activity struct {
	UserID    string    `json:"userId" firestore:"userId"`
	Type      string    `json:"type" firestore:"type"`
	Details   string    `json:"details" firestore:"details"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}
