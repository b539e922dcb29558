package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipebook/api/openapi"
	"recipebook/images"
	"recipebook/repository"
)

const testPlaceholderURL = "https://placehold.co/300x300"

// jpegHeader 足以讓內容偵測判斷為 image/jpeg
var jpegHeader = []byte("\xFF\xD8\xFF\xE0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")

type testServer struct {
	impl       *ServerImpl
	handler    http.Handler
	db         *gorm.DB
	store      *images.MockObjectStore
	transcoder *images.MockTranscoder
}

func setupServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.Open(repository.DriverSQLite, ":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ctrl := gomock.NewController(t)
	store := images.NewMockObjectStore(ctrl)
	transcoder := images.NewMockTranscoder(ctrl)

	impl, err := NewServer(ServerConfig{
		Auth: AuthConfig{
			Secret: "test-secret",
			Issuer: "recipebook-test",
			Expire: time.Hour,
		},
		Image: ImageConfig{PlaceholderURL: testPlaceholderURL},
	}, Dependencies{
		DB:          db,
		ObjectStore: store,
		Transcoder:  transcoder,
	})
	require.NoError(t, err)
	t.Cleanup(impl.Close)

	return testServer{
		impl:       impl,
		handler:    impl.Handler(),
		db:         db,
		store:      store,
		transcoder: transcoder,
	}
}

func (s testServer) do(t *testing.T, method, path, accessToken string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// upload 以 multipart 送出 image 欄位，data 為 nil 時不附檔案
func (s testServer) upload(t *testing.T, path, accessToken string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if data != nil {
		part, err := writer.CreateFormFile("image", "dish.jpg")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	} else {
		require.NoError(t, writer.WriteField("note", "no file"))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// signUp 註冊並登入，回傳 access token
func (s testServer) signUp(t *testing.T, email string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/auth/register", "", openapi.RegisterRequest{
		Name:     "Tester",
		Email:    email,
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/auth/login", "", openapi.LoginRequest{
		Email:    email,
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp openapi.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.AccessToken
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
