package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"recipebook/adapters/upload"
	"recipebook/api/openapi"
	"recipebook/images"
	"recipebook/models"
)

func createRecipe(t *testing.T, s testServer, accessToken, name string) openapi.Recipe {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/recipes", accessToken, openapi.CreateRecipeRequest{
		Info: openapi.CreateInfo{Name: name, Content: lo.ToPtr("<p>step one</p><script>alert(1)</script>")},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[openapi.Recipe](t, rec)
}

func TestRecipes_CRUD(t *testing.T) {
	s := setupServer(t)
	accessToken := s.signUp(t, "cook@example.com")

	recipe := createRecipe(t, s, accessToken, "Com Tam")
	assert.Equal(t, "Com Tam", recipe.Info.Name)
	assert.Equal(t, "<p>step one</p>", *recipe.Info.Content)
	assert.Nil(t, recipe.Info.Image)
	assert.False(t, recipe.IsDone)

	t.Run("list", func(t *testing.T) {
		createRecipe(t, s, accessToken, "Pho Bo")
		rec := s.do(t, http.MethodGet, "/recipes", accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		recipes := decode[[]openapi.Recipe](t, rec)
		require.Len(t, recipes, 2)
		assert.Equal(t, "Com Tam", recipes[0].Info.Name)
		assert.Equal(t, "Pho Bo", recipes[1].Info.Name)
	})

	t.Run("get", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, fmt.Sprintf("/recipes/%d", recipe.ID), accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, recipe.ID, decode[openapi.Recipe](t, rec).ID)
	})

	t.Run("patch keeps image", func(t *testing.T) {
		key := fmt.Sprintf("images/%d-com-tam-abcd1234.avif", recipe.ID)
		_, err := s.impl.recipes.UpdateInfo(context.Background(), recipe.OwnerID, recipe.ID, models.InfoPatch{Image: &key})
		require.NoError(t, err)

		reminder := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		rec := s.do(t, http.MethodPatch, fmt.Sprintf("/recipes/%d", recipe.ID), accessToken, openapi.UpdateRecipeRequest{
			Info:     &openapi.UpdateInfo{Name: lo.ToPtr("Com Tam Suon")},
			Reminder: &reminder,
			IsDone:   lo.ToPtr(true),
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		updated := decode[openapi.Recipe](t, rec)
		assert.Equal(t, "Com Tam Suon", updated.Info.Name)
		assert.Equal(t, "<p>step one</p>", *updated.Info.Content)
		assert.Equal(t, key, lo.FromPtr(updated.Info.Image))
		assert.True(t, updated.IsDone)
		require.NotNil(t, updated.Reminder)
		assert.True(t, reminder.Equal(*updated.Reminder))
	})

	t.Run("patch with blank name", func(t *testing.T) {
		rec := s.do(t, http.MethodPatch, fmt.Sprintf("/recipes/%d", recipe.ID), accessToken, openapi.UpdateRecipeRequest{
			Info: &openapi.UpdateInfo{Name: lo.ToPtr("  ")},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other users cannot see it", func(t *testing.T) {
		otherToken := s.signUp(t, "other@example.com")
		path := fmt.Sprintf("/recipes/%d", recipe.ID)

		for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
			rec := s.do(t, method, path, otherToken, openapi.UpdateRecipeRequest{})
			assert.Equal(t, http.StatusNotFound, rec.Code, method)
			assert.Equal(t, recipeNotFound, decode[openapi.ErrorResponse](t, rec).Message)
		}
	})

	t.Run("non numeric id", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/recipes/abc", accessToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed (numeric string is expected)", decode[openapi.ErrorResponse](t, rec).Message)
	})

	t.Run("missing info", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/recipes", accessToken, map[string]any{"is_done": true})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name should not be empty", decode[openapi.ErrorResponse](t, rec).Message)
	})

	t.Run("name too long", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/recipes", accessToken, openapi.CreateRecipeRequest{
			Info: openapi.CreateInfo{Name: string(bytes.Repeat([]byte("a"), 256))},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name must be shorter than or equal to 255 characters", decode[openapi.ErrorResponse](t, rec).Message)
	})

	t.Run("delete", func(t *testing.T) {
		path := fmt.Sprintf("/recipes/%d", recipe.ID)
		rec := s.do(t, http.MethodDelete, path, accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.do(t, http.MethodGet, path, accessToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/recipes", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRecipes_Image(t *testing.T) {
	s := setupServer(t)
	accessToken := s.signUp(t, "photo@example.com")
	recipe := createRecipe(t, s, accessToken, "Banh Trang")
	imagePath := fmt.Sprintf("/recipes/%d/image", recipe.ID)
	encoded := images.Encoded{Data: []byte("avif"), ContentType: "image/avif", Extension: "avif"}

	t.Run("placeholder without image", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, imagePath, accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testPlaceholderURL, rec.Body.String())
	})

	t.Run("no image uploaded", func(t *testing.T) {
		rec := s.upload(t, imagePath, accessToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No image uploaded", decode[openapi.ErrorResponse](t, rec).Message)
	})

	t.Run("not multipart", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, imagePath, accessToken, map[string]any{"image": "dish.jpg"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No image uploaded", decode[openapi.ErrorResponse](t, rec).Message)
	})

	t.Run("not an image", func(t *testing.T) {
		rec := s.upload(t, imagePath, accessToken, []byte("%PDF-1.7\n"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid image type: application/pdf", decode[openapi.ErrorResponse](t, rec).Message)
	})

	t.Run("over the size limit", func(t *testing.T) {
		data := append(bytes.Clone(jpegHeader), make([]byte, upload.MaxImageSize+1-int64(len(jpegHeader)))...)

		rec := s.upload(t, imagePath, accessToken, data)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "reach limit of 4.77 MB", decode[openapi.ErrorResponse](t, rec).Message)
	})

	t.Run("storage error is passed through", func(t *testing.T) {
		s.transcoder.EXPECT().Transcode(jpegHeader, gomock.Any()).Return(encoded, nil)
		s.store.EXPECT().
			Upload(gomock.Any(), gomock.Any(), encoded.Data, gomock.Any()).
			Return("", errors.New("The bucket you tried to upload to is full"))

		rec := s.upload(t, imagePath, accessToken, jpegHeader)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The bucket you tried to upload to is full", decode[openapi.ErrorResponse](t, rec).Message)

		stored, err := s.impl.recipes.FindOwned(context.Background(), recipe.OwnerID, recipe.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.GetInfo().Image)
	})

	var key string
	t.Run("upload", func(t *testing.T) {
		s.transcoder.EXPECT().Transcode(jpegHeader, gomock.Any()).Return(encoded, nil)
		s.store.EXPECT().
			Upload(gomock.Any(), gomock.Any(), encoded.Data, images.UploadOptions{ContentType: "image/avif", Overwrite: true}).
			DoAndReturn(func(_ context.Context, key string, _ []byte, _ images.UploadOptions) (string, error) {
				return key, nil
			})

		rec := s.upload(t, imagePath, accessToken, jpegHeader)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		info := decode[openapi.Recipe](t, rec).Info
		key = lo.FromPtr(info.Image)
		assert.Regexp(t, fmt.Sprintf(`^images/%d-banh-trang-[0-9a-z]{8}\.avif$`, recipe.ID), key)
		assert.Equal(t, "Banh Trang", info.Name)
		assert.Equal(t, "<p>step one</p>", *info.Content)
	})

	t.Run("signed url", func(t *testing.T) {
		s.store.EXPECT().
			SignedURL(gomock.Any(), key, time.Hour).
			Return("https://bucket.example.com/"+key+"?sig=1", nil)

		rec := s.do(t, http.MethodGet, imagePath, accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://bucket.example.com/"+key+"?sig=1", rec.Body.String())
	})

	t.Run("placeholder when signing fails", func(t *testing.T) {
		s.store.EXPECT().SignedURL(gomock.Any(), key, gomock.Any()).Return("", errors.New("NoSuchKey"))

		rec := s.do(t, http.MethodGet, imagePath, accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testPlaceholderURL, rec.Body.String())
	})

	t.Run("not found before transcoding", func(t *testing.T) {
		rec := s.upload(t, "/recipes/9999/image", accessToken, jpegHeader)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, recipeNotFound, decode[openapi.ErrorResponse](t, rec).Message)
	})
}

func TestSavedRecipes(t *testing.T) {
	s := setupServer(t)
	accessToken := s.signUp(t, "saver@example.com")

	rec := s.do(t, http.MethodPost, "/saved-recipes", accessToken, openapi.CreateSavedRecipeRequest{
		Info: openapi.CreateInfo{Name: "Mi Quang"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	saved := decode[openapi.SavedRecipe](t, rec)
	assert.Equal(t, "Mi Quang", saved.Info.Name)

	basePath := fmt.Sprintf("/saved-recipes/%d", saved.ID)

	t.Run("upload then rename keeps image", func(t *testing.T) {
		encoded := images.Encoded{Data: []byte("avif"), ContentType: "image/avif", Extension: "avif"}
		s.transcoder.EXPECT().Transcode(jpegHeader, gomock.Any()).Return(encoded, nil)
		s.store.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ []byte, _ images.UploadOptions) (string, error) {
				return key, nil
			})

		rec := s.upload(t, basePath+"/image", accessToken, jpegHeader)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		key := lo.FromPtr(decode[openapi.SavedRecipe](t, rec).Info.Image)
		assert.Regexp(t, fmt.Sprintf(`^images/%d-mi-quang-[0-9a-z]{8}\.avif$`, saved.ID), key)

		rec = s.do(t, http.MethodPatch, basePath, accessToken, openapi.UpdateSavedRecipeRequest{
			Info: &openapi.UpdateInfo{Content: lo.ToPtr("turmeric noodles")},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		info := decode[openapi.SavedRecipe](t, rec).Info
		assert.Equal(t, "Mi Quang", info.Name)
		assert.Equal(t, "turmeric noodles", *info.Content)
		assert.Equal(t, key, lo.FromPtr(info.Image))
	})

	t.Run("list", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/saved-recipes", accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]openapi.SavedRecipe](t, rec), 1)
	})

	t.Run("delete", func(t *testing.T) {
		rec := s.do(t, http.MethodDelete, basePath, accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.do(t, http.MethodGet, basePath+"/image", accessToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, savedRecipeNotFound, decode[openapi.ErrorResponse](t, rec).Message)
	})
}
