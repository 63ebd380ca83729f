package routes // Router setup layer.

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lewis3ai/INFOA1test/handlers"
	"github.com/Lewis3ai/INFOA1test/middlewares"
	"github.com/Lewis3ai/INFOA1test/services"
	"github.com/Lewis3ai/INFOA1test/utils"
)

// Setup attaches middlewares and registers all endpoints. The auth
// guard is composed once into the protected group rather than repeated
// per handler.
func Setup(
	r *gin.Engine,
	authSvc services.AuthService,
	colSvc services.CollectionService,
	tokens *utils.TokenManager,
	cookieName string,
	cookieTTL time.Duration,
	cookieSecure bool,
) {
	r.Use(middlewares.RequestLogger(), middlewares.Recovery())

	ah := handlers.NewAuthHandler(authSvc, cookieName, cookieTTL, cookieSecure)
	ch := handlers.NewCollectionHandler(colSvc)

	// Public endpoints.
	r.GET("/", ah.Index)
	r.POST("/signup", ah.Signup)
	r.POST("/login", ah.Login)
	r.GET("/logout", ah.Logout) // token optional; just clears the cookie

	// Protected collection endpoints.
	protected := r.Group("/mypokemon")
	protected.Use(middlewares.Auth(tokens, authSvc, cookieName))

	protected.POST("", ch.Save)
	protected.GET("", ch.List)
	protected.GET("/:id", ch.Get)
	protected.PUT("", ch.Rename)
	protected.DELETE("", ch.Release)
}
