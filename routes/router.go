package routes

import (
	"slices"
	"time"

	"github.com/Kariqs/vastra-api/controllers"
	"github.com/Kariqs/vastra-api/limiter"
	"github.com/Kariqs/vastra-api/middlewares"
	"github.com/Kariqs/vastra-api/services"
	"github.com/Kariqs/vastra-api/store"
	"github.com/Kariqs/vastra-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Dependencies are the collaborators the HTTP layer is built from.
// LoginLimiter and Images are optional.
type Dependencies struct {
	Store        store.Store
	Tokens       *utils.TokenMaker
	Images       utils.ImageStore
	LoginLimiter limiter.Limiter
	Logger       zerolog.Logger
	CORSOrigins  []string
}

var defaultCORSOrigins = []string{"http://localhost:4200"}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	switch {
	case len(origins) == 0:
		config.AllowOrigins = defaultCORSOrigins
	case slices.Contains(origins, "*"):
		config.AllowAllOrigins = true
	default:
		config.AllowOrigins = origins
	}
	return config
}

func SetupRouter(deps Dependencies) *gin.Engine {
	controllers.UseJSONFieldNames()

	server := gin.New()
	server.Use(middlewares.RequestLogger(deps.Logger))
	server.Use(cors.New(corsConfig(deps.CORSOrigins)))

	requireAuth := middlewares.RequireAuth(deps.Tokens)
	var limitLogin gin.HandlerFunc
	if deps.LoginLimiter != nil {
		limitLogin = middlewares.RateLimit(deps.LoginLimiter, deps.Logger)
	}

	DefaultRoutes(server)

	api := server.Group("/api")
	AuthRoutes(api, controllers.NewAuthController(services.NewAuthService(deps.Store, deps.Tokens), deps.Logger), limitLogin)
	CategoryRoutes(api, controllers.NewCategoryController(services.NewCategoryService(deps.Store), deps.Logger), requireAuth)
	ProductRoutes(api, controllers.NewProductController(services.NewProductService(deps.Store), deps.Images, deps.Logger), requireAuth)
	CartRoutes(api, controllers.NewCartController(services.NewCartService(deps.Store), deps.Logger), requireAuth)
	OrderRoutes(api, controllers.NewOrderController(services.NewOrderService(deps.Store), deps.Logger), requireAuth)
	UserRoutes(api, controllers.NewUserController(services.NewUserService(deps.Store), deps.Logger), requireAuth)

	return server
}
