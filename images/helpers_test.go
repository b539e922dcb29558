package images

import (
	"io"
	"log/slog"
	"testing"

	"recipebook/models"

	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type managerFixture struct {
	manager    *Manager[*models.Recipe]
	records    *MockRecordStore[*models.Recipe]
	store      *MockObjectStore
	transcoder *MockTranscoder
}

func setupManager(t *testing.T, opts ...ManagerOption) managerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	records := NewMockRecordStore[*models.Recipe](ctrl)
	store := NewMockObjectStore(ctrl)
	transcoder := NewMockTranscoder(ctrl)

	opts = append([]ManagerOption{WithManagerLogger(discardLogger)}, opts...)
	return managerFixture{
		manager:    NewManager[*models.Recipe](records, store, transcoder, opts...),
		records:    records,
		store:      store,
		transcoder: transcoder,
	}
}

func newRecipe(id, ownerID uint, info models.RecipeInfo) *models.Recipe {
	recipe := &models.Recipe{ID: id, OwnerID: ownerID}
	recipe.SetInfo(info)
	return recipe
}
