package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"recipebook/adapters/upload"
	"recipebook/api/openapi"
)

// multipart 邊界與欄位標頭需要的額外空間
const multipartOverhead = 1 << 20

var _ openapi.StrictServerInterface = (*ServerImpl)(nil)

// Handler 建立所有 HTTP 路由，路由與參數綁定由 openapi.yaml 產生
func (impl *ServerImpl) Handler() http.Handler {
	router := gin.New()
	// handler 收到的 context 需要沿用請求的取消訊號
	router.ContextWithFallback = true
	router.Use(gin.Recovery(), requestID(), requestLogger())

	if len(impl.config.CORS.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     impl.config.CORS.AllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(limitBody(upload.MaxImageSize+multipartOverhead), errorResponder())

	router.GET("/openapi.json", impl.getOpenAPI)
	openapi.RegisterHandlersWithOptions(router, openapi.NewStrictHandler(impl, nil), openapi.GinServerOptions{
		Middlewares:  []openapi.MiddlewareFunc{impl.authenticate()},
		ErrorHandler: handleParamError,
	})

	return router
}

func (impl *ServerImpl) getOpenAPI(c *gin.Context) {
	const op = "getOpenAPI"

	swagger, err := openapi.GetSwagger()
	if err != nil {
		slog.Error("Fail to load embedded openapi spec", slog.String("op", op), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, openapi.ErrorResponse{Message: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, swagger)
}
