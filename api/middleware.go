package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recipebook/api/openapi"
	"recipebook/api/token"
)

const (
	requestIDHeader = "X-Request-ID"

	contextKeyRequestID = "requestID"
	contextKeyClaims    = "claims"
	contextKeyUserID    = "userID"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(c.Request.Context(), level, "request",
			slog.String("request_id", c.GetString(contextKeyRequestID)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)))
	}
}

// limitBody 限制請求本文大小
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// authenticate 驗證 Authorization: Bearer <token>，成功後將 claims 放入 context
// 只有宣告 BearerAuth 的路由會檢查
func (impl *ServerImpl) authenticate() openapi.MiddlewareFunc {
	return func(c *gin.Context) {
		const op = "authenticate"

		if _, ok := c.Get(openapi.BearerAuthScopes); !ok {
			return
		}

		// 檢查是否有提供 access token
		tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, openapi.ErrorResponse{Message: "Unauthorized"})
			return
		}

		// 解析並驗證 access token
		claims, err := impl.tokens.Parse(tokenString)
		if err != nil {
			slog.Debug("Fail to parse and validate JWT", slog.String("op", op), slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, openapi.ErrorResponse{Message: "Unauthorized"})
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			slog.Warn("Token subject is not a user id", slog.String("op", op), slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, openapi.ErrorResponse{Message: "Unauthorized"})
			return
		}

		c.Set(contextKeyClaims, claims)
		c.Set(contextKeyUserID, userID)
	}
}

// ctx 為 handler 收到的 *gin.Context，以字串 key 讀取 authenticate 設定的值
func currentClaims(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(contextKeyClaims).(*token.Claims)
	return claims
}

func currentUserID(ctx context.Context) uint {
	userID, _ := ctx.Value(contextKeyUserID).(uint)
	return userID
}
