package usecase

import (
	"context"
	"sort"

	"admindash/internal/domain/entity"
	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
)

// UserUseCase joins identity records with the progress collection.
type UserUseCase struct {
	identity     IdentityProvider
	progressRepo repository.ProgressRepository
	nameChanges  repository.DisplayNameChangeRepository
}

func NewUserUseCase(
	identity IdentityProvider,
	progressRepo repository.ProgressRepository,
	nameChanges repository.DisplayNameChangeRepository,
) *UserUseCase {
	return &UserUseCase{
		identity:     identity,
		progressRepo: progressRepo,
		nameChanges:  nameChanges,
	}
}

func (uc *UserUseCase) ListAuthUsers(ctx context.Context) ([]*entity.AuthUser, error) {
	users, err := uc.identity.ListUsers(ctx, entity.MaxAuthUsers)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return users, nil
}

func (uc *UserUseCase) LearnProgress(ctx context.Context) ([]entity.LearnProgress, error) {
	users, progress, err := uc.usersWithProgress(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.LearnProgress, 0, len(users))
	for _, user := range users {
		doc, ok := progress[user.UID]
		if !ok {
			doc = entity.NewDocument(user.UID, nil)
		}

		displayName := user.DisplayName
		if displayName == "" {
			displayName = user.Email
		}
		if displayName == "" {
			displayName = user.UID
		}

		rows = append(rows, entity.LearnProgress{
			UserID:             user.UID,
			DisplayName:        displayName,
			LearnedAlphabetAll: doc.Truthy("learnedAlphabetAll"),
			LearnedNumbersAll:  doc.Truthy("learnedNumbersAll"),
			LearnedColoursAll:  doc.Truthy("learnedColoursAll"),
			LearnedFruitsAll:   doc.Truthy("learnedFruitsAll"),
			LearnedAnimalsAll:  doc.Truthy("learnedAnimalsAll"),
			LearnedVerbsAll:    doc.Truthy("learnedVerbsAll"),
		})
	}
	return rows, nil
}

func (uc *UserUseCase) ListProgress(ctx context.Context) ([]map[string]interface{}, error) {
	docs, err := uc.progressRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err)
	}

	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, renderProgress(doc))
	}
	return out, nil
}

func (uc *UserUseCase) GetProgress(ctx context.Context, userID string) (map[string]interface{}, error) {
	if userID == "" {
		return nil, errors.BadRequest("userId is required.", nil)
	}

	doc, err := uc.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return renderProgress(doc), nil
}

// Combined returns every identity record with its progress document attached,
// most recent sign-in first. Users who never signed in sort last.
func (uc *UserUseCase) Combined(ctx context.Context) ([]entity.CombinedUser, error) {
	users, progress, err := uc.usersWithProgress(ctx)
	if err != nil {
		return nil, err
	}

	combined := make([]entity.CombinedUser, 0, len(users))
	for _, user := range users {
		row := entity.CombinedUser{AuthUser: *user}
		if doc, ok := progress[user.UID]; ok {
			row.Progress = doc.Data
		}
		combined = append(combined, row)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return signInMillis(combined[i].AuthUser) > signInMillis(combined[j].AuthUser)
	})
	return combined, nil
}

func (uc *UserUseCase) DisplayNameChanges(ctx context.Context) ([]map[string]interface{}, error) {
	docs, err := uc.nameChanges.ListRecent(ctx, entity.DisplayNameChangeListLimit)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return documentsWithKey(docs, "id"), nil
}

func (uc *UserUseCase) usersWithProgress(ctx context.Context) ([]*entity.AuthUser, map[string]*entity.Document, error) {
	users, err := uc.identity.ListUsers(ctx, entity.MaxAuthUsers)
	if err != nil {
		return nil, nil, errors.Wrap(err)
	}

	docs, err := uc.progressRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err)
	}

	progress := make(map[string]*entity.Document, len(docs))
	for _, doc := range docs {
		progress[doc.ID] = doc
	}
	return users, progress, nil
}

func renderProgress(doc *entity.Document) map[string]interface{} {
	out := doc.Fields("userId")
	out["lastStreakUtc"] = isoField(doc, "lastStreakUtc")
	return out
}

func signInMillis(user entity.AuthUser) int64 {
	if user.LastSignInAt.IsZero() {
		return 0
	}
	return user.LastSignInAt.UnixMilli()
}
