package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/handler"
	"github.com/todotask/backend/internal/middleware"
)

// Handlers collects everything the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	Tasks    *handler.TaskHandler
	Export   *handler.ExportHandler
	Activity *handler.ActivityHandler
	AI       *handler.AIHandler
}

// Register attaches all routes to the Echo instance.  jwtSecret guards
// the protected groups; limiter (may be a no-op) throttles the
// unauthenticated auth endpoints; cache (may be a no-op) fronts the
// analytics endpoint.
func Register(e *echo.Echo, h Handlers, jwtSecret string, limiter, cache echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Unauthenticated auth operations.  These are the brute-force
	// surface, so the rate limiter sits in front of them.
	auth := e.Group("/auth", limiter)
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/forgot-password", h.Auth.ForgotPassword)
	auth.POST("/reset-password", h.Auth.ResetPassword)

	// Protected auth operations under the same prefix.
	authed := e.Group("/auth", middleware.JWTAuth(jwtSecret))
	authed.GET("/me", h.Auth.Me)
	authed.PUT("/update", h.Auth.UpdateProfile)
	authed.PUT("/change-password", h.Auth.ChangePassword)
	authed.POST("/logout", h.Auth.Logout)

	// Task routes.  Echo matches static segments before the :id
	// parameter, so /tasks/analytics and friends are safe alongside
	// /tasks/:id.
	tasks := e.Group("/tasks", middleware.JWTAuth(jwtSecret))
	tasks.POST("", h.Tasks.Create)
	tasks.GET("", h.Tasks.List)
	tasks.GET("/analytics", h.Tasks.Analytics, cache)
	tasks.GET("/overdue", h.Tasks.Overdue)
	tasks.GET("/upcoming", h.Tasks.Upcoming)
	tasks.GET("/:id", h.Tasks.Get)
	tasks.PUT("/:id", h.Tasks.Update)
	tasks.DELETE("/:id", h.Tasks.Delete)
	tasks.PUT("/status/:id", h.Tasks.UpdateStatus)

	// Export endpoints authenticate via ?token= so browsers can follow
	// the download links directly; they live outside the JWT group.
	e.GET("/tasks/export/csv", h.Export.CSV)
	e.GET("/tasks/export/pdf", h.Export.PDF)

	// Activity log.
	activity := e.Group("/activity", middleware.JWTAuth(jwtSecret))
	activity.GET("", h.Activity.List)

	// Voice assistant; stateless keyword matching, no auth needed.
	e.POST("/voice/command", handler.VoiceCommand)

	// AI productivity summary.
	ai := e.Group("/ai", middleware.JWTAuth(jwtSecret))
	ai.GET("/summary", h.AI.Summary)
}
