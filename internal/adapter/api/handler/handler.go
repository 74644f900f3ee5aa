package handler

import (
	"context"

	"admindash/internal/domain/entity"
	"admindash/internal/usecase"
)

type ActivityService interface {
	Create(ctx context.Context, input usecase.CreateActivityInput) (string, error)
	ListRecent(ctx context.Context) ([]map[string]interface{}, error)
	ListByUser(ctx context.Context, userID string) ([]map[string]interface{}, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, input usecase.SubmitFeedbackInput) (string, error)
	List(ctx context.Context) ([]map[string]interface{}, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Resolve(ctx context.Context, id string) error
	ListRecycled(ctx context.Context) ([]map[string]interface{}, error)
	Restore(ctx context.Context, id string) error
}

type UserService interface {
	LearnProgress(ctx context.Context) ([]entity.LearnProgress, error)
	ListProgress(ctx context.Context) ([]map[string]interface{}, error)
	GetProgress(ctx context.Context, userID string) (map[string]interface{}, error)
	ListAuthUsers(ctx context.Context) ([]*entity.AuthUser, error)
	Combined(ctx context.Context) ([]entity.CombinedUser, error)
	DisplayNameChanges(ctx context.Context) ([]map[string]interface{}, error)
}

type AnalyticsService interface {
	Summary(ctx context.Context) (*entity.AnalyticsSummary, error)
	Leaderboard(ctx context.Context) ([]map[string]interface{}, error)
}

type SystemService interface {
	ListCollections(ctx context.Context) ([]string, error)
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Activity  *ActivityHandler
	Feedback  *FeedbackHandler
	User      *UserHandler
	Analytics *AnalyticsHandler
}

func New(
	activity ActivityService,
	feedback FeedbackService,
	users UserService,
	analytics AnalyticsService,
	system SystemService,
) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(system),
		Activity:  NewActivityHandler(activity),
		Feedback:  NewFeedbackHandler(feedback),
		User:      NewUserHandler(users),
		Analytics: NewAnalyticsHandler(analytics),
	}
}

type successResponse struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId,omitempty"`
	Status     string `json:"status,omitempty"`
	Message    string `json:"message,omitempty"`
}
