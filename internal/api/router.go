package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jiyoon/drambook/internal/analysis"
	"github.com/jiyoon/drambook/internal/api/handler"
	"github.com/jiyoon/drambook/internal/api/middleware"
	"github.com/jiyoon/drambook/internal/auth"
	"github.com/jiyoon/drambook/internal/config"
	"github.com/jiyoon/drambook/internal/repository"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Analyzer *analysis.Service
	Kakao    *auth.KakaoClient
	Sessions *auth.SessionStore
	Users    *repository.UserRepository
	Records  *repository.RecordRepository
	Products *repository.ProductRepository
}

// SetupRouter configures the Gin router with all routes.
func SetupRouter(deps *Deps) *gin.Engine {
	switch deps.Config.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(deps.Config.Server.CORS))

	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(
		deps.Kakao, deps.Sessions, deps.Users, deps.Records,
		deps.Config.Session.CookieName, deps.Config.Session.CookieSecure,
	)
	recordHandler := handler.NewRecordHandler(deps.Records, deps.Users)
	analysisHandler := handler.NewAnalysisHandler(deps.Analyzer, deps.Records)
	keywordHandler := handler.NewKeywordHandler(deps.Users, deps.Records)
	productHandler := handler.NewProductHandler(deps.Products)

	r.GET("/health", healthHandler.Health)

	// OAuth endpoints live outside the authenticated group
	r.GET("/login/kakao", authHandler.LoginKakao)
	r.GET("/oauth/kakao/callback", authHandler.KakaoCallback)
	r.POST("/logout", authHandler.Logout)

	requireAuth := middleware.Auth(deps.Sessions, deps.Config.Session.CookieName)

	v1 := r.Group("/api/v1", requireAuth)
	{
		v1.GET("/me", authHandler.Me)

		v1.GET("/records", recordHandler.List)
		v1.POST("/records", recordHandler.Create)
		v1.PUT("/records/:id", recordHandler.Update)
		v1.DELETE("/records/:id", recordHandler.Delete)
		v1.POST("/records/:id/keywords", keywordHandler.AddRecordKeyword)

		v1.GET("/products", productHandler.List)

		v1.GET("/analysis/trend", analysisHandler.Trend)
		v1.GET("/analysis/taste", analysisHandler.Taste)
		v1.GET("/analysis/wordcloud/mine", analysisHandler.MyWordcloud)
		v1.GET("/analysis/wordcloud/community", analysisHandler.CommunityWordcloud)
		v1.GET("/analysis/wordcloud/product", analysisHandler.ProductWordcloud)

		v1.GET("/keywords", keywordHandler.ListUserKeywords)
		v1.POST("/keywords", keywordHandler.AddUserKeyword)
	}

	return r
}
