package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"recipebook/adapters/upload"
	"recipebook/api/openapi"
	"recipebook/images"
)

var errMalformedMultipart = errors.New("invalid multipart form")

type invalidImageTypeError struct {
	mimeType string
}

func (e *invalidImageTypeError) Error() string {
	return fmt.Sprintf("Invalid image type: %s", e.mimeType)
}

// errorResponder 將 handler 留在 c.Errors 的錯誤轉成 JSON 回應
// 綁定失敗為 400，其餘視為伺服器錯誤
func errorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if c.Writer.Status() == http.StatusBadRequest || isRequestError(err) {
			c.JSON(http.StatusBadRequest, openapi.ErrorResponse{Message: requestErrorMessage(err)})
			return
		}
		slog.Error("Unexpected error",
			slog.String("request_id", c.GetString(contextKeyRequestID)),
			slog.String("path", c.FullPath()),
			slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, openapi.ErrorResponse{Message: "Internal server error"})
	}
}

// handleParamError 處理路徑參數綁定失敗，目前只有數字 id
func handleParamError(c *gin.Context, err error, statusCode int) {
	slog.Debug("Fail to bind parameter", slog.String("path", c.FullPath()), slog.Any("error", err))
	c.JSON(statusCode, openapi.ErrorResponse{Message: "Validation failed (numeric string is expected)"})
}

func isRequestError(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.Is(err, http.ErrNotMultipart) ||
		errors.Is(err, http.ErrMissingBoundary) ||
		errors.As(err, &maxBytesErr)
}

func requestErrorMessage(err error) string {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
		return "No image uploaded"
	case errors.As(err, &maxBytesErr):
		return (&upload.ReachLimitError{MaxBytes: upload.MaxImageSize}).Error()
	default:
		return validationMessage(err)
	}
}

// uploadErrorMessage 回傳圖片上傳失敗時的訊息，ok 為 false 代表不是請求本身的問題
func uploadErrorMessage(err error) (string, bool) {
	var uploadErr *images.UploadError
	var typeErr *invalidImageTypeError
	var limitErr *upload.ReachLimitError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, images.ErrNoImage):
		return "No image uploaded", true
	case errors.As(err, &uploadErr):
		return uploadErr.Message, true
	case errors.Is(err, images.ErrInvalidImage):
		return "Invalid image", true
	case errors.As(err, &limitErr):
		return limitErr.Error(), true
	case errors.As(err, &maxBytesErr):
		return (&upload.ReachLimitError{MaxBytes: upload.MaxImageSize}).Error(), true
	case errors.As(err, &typeErr):
		return typeErr.Error(), true
	case errors.Is(err, errMalformedMultipart):
		return "Invalid multipart form", true
	default:
		return "", false
	}
}

// validationMessage 將 binding 錯誤整理成可讀的訊息
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Invalid request body"
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s should not be empty", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be longer than or equal to %s characters", field, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(messages, ", ")
}
