package usecase

import (
	"context"
	"strings"

	"admindash/internal/domain/entity"
	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
	"admindash/pkg/logger"
)

type AnalyticsUseCase struct {
	identity     IdentityProvider
	progressRepo repository.ProgressRepository
}

func NewAnalyticsUseCase(identity IdentityProvider, progressRepo repository.ProgressRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		identity:     identity,
		progressRepo: progressRepo,
	}
}

func (uc *AnalyticsUseCase) Summary(ctx context.Context) (*entity.AnalyticsSummary, error) {
	users, err := uc.identity.ListUsers(ctx, entity.MaxAuthUsers)
	if err != nil {
		return nil, errors.Wrap(err)
	}

	docs, err := uc.progressRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err)
	}

	summary := Summarize(docs)
	summary.TotalUsers = len(users)
	return summary, nil
}

// Summarize folds progress documents into totals, maxima and averages.
// Missing or non-numeric fields count as zero.
func Summarize(docs []*entity.Document) *entity.AnalyticsSummary {
	s := &entity.AnalyticsSummary{TotalUsersWithProgress: len(docs)}

	for _, doc := range docs {
		level := doc.Number("level")
		score := doc.Number("score")

		s.TotalLevel += level
		s.TotalXP += score
		s.TotalChests += doc.Number("chestsOpened")
		s.TotalStreaks += doc.Number("streakDays")
		if level > s.MaxLevel {
			s.MaxLevel = level
		}
		if score > s.MaxXP {
			s.MaxXP = score
		}
	}

	if s.TotalUsersWithProgress > 0 {
		s.AvgLevel = s.TotalLevel / float64(s.TotalUsersWithProgress)
		s.AvgXP = s.TotalXP / float64(s.TotalUsersWithProgress)
	}
	return s
}

// Leaderboard returns every progress document by level, highest first, each
// carrying a resolved displayName.
func (uc *AnalyticsUseCase) Leaderboard(ctx context.Context) ([]map[string]interface{}, error) {
	docs, err := uc.progressRepo.ListByLevel(ctx)
	if err != nil {
		return nil, errors.Wrap(err)
	}

	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		name := ResolveDisplayName(doc)
		logger.Debug("User %s: displayName=%q", doc.ID, name)

		entry := doc.Fields("userId")
		entry["displayName"] = name
		out = append(out, entry)
	}
	return out, nil
}

// ResolveDisplayName picks, in order: changeName, displayName, the local part
// of email, "Player " plus the first six characters of the id, "Unknown".
// Names equal to the strings "undefined" or "null" are treated as unset.
func ResolveDisplayName(doc *entity.Document) string {
	if name, ok := usableName(doc, "changeName"); ok {
		return name
	}
	if name, ok := usableName(doc, "displayName"); ok {
		return name
	}
	if email, ok := doc.String("email"); ok && strings.Contains(email, "@") {
		if local := strings.SplitN(email, "@", 2)[0]; local != "" {
			return local
		}
	}
	if doc.ID != "" {
		id := []rune(doc.ID)
		if len(id) > 6 {
			id = id[:6]
		}
		return "Player " + string(id)
	}
	return "Unknown"
}

func usableName(doc *entity.Document, key string) (string, bool) {
	raw, ok := doc.String(key)
	if !ok || raw == "undefined" || raw == "null" {
		return "", false
	}
	name := strings.TrimSpace(raw)
	return name, name != ""
}
