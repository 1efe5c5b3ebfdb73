package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"taskmanager/internal/config"
	"taskmanager/internal/handler"
)

// Register wires routes and middleware. authMiddleware guards the task and logout routes.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *zap.Logger,
	authMiddleware echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
) {
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler(e, logger)

	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/users", userHandler.ListUsers)

	// Secured routes (require a bearer token)
	secured := e.Group("", authMiddleware)
	secured.POST("/logout", authHandler.Logout)
	secured.GET("/tasks", taskHandler.ListTasks)
	secured.POST("/tasks", taskHandler.CreateTask)
	secured.PUT("/tasks/:id", taskHandler.UpdateTask)
	secured.DELETE("/tasks/:id", taskHandler.DeleteTask)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

// errorHandler logs server-side failures before delegating to echo's default handler.
func errorHandler(e *echo.Echo, logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
