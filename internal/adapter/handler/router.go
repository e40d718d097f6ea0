package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/cnmi-csc/busybee/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	minutesHandler *Minutes
	storageHandler *Storage
	gatherer       prometheus.Gatherer
	started        time.Time
}

// NewRouter creates a new router with all handlers. A nil gatherer disables /metrics.
func NewRouter(cfg *config.Config, minutesHandler *Minutes, storageHandler *Storage, gatherer prometheus.Gatherer) *Router {
	return &Router{
		cfg:            cfg,
		minutesHandler: minutesHandler,
		storageHandler: storageHandler,
		gatherer:       gatherer,
		started:        time.Now(),
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if rt.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := e.Group("/v1")
	rt.setupMinutesRoutes(v1)
	rt.setupDocumentRoutes(v1)
}

// setupMinutesRoutes configures transcript and recording processing routes
func (rt *Router) setupMinutesRoutes(g *echo.Group) {
	h := rt.minutesHandler
	if h == nil {
		g.Any("/minutes*", rt.notImplemented)
		g.Any("/recordings", rt.notImplemented)
		return
	}
	g.POST("/minutes", h.Process)
	g.POST("/minutes/preview", h.Preview)
	g.POST("/recordings", h.UploadRecording)
	g.POST("/names/normalize", h.Normalize)
	g.GET("/templates/:kind", h.Template)
}

// setupDocumentRoutes configures document listing and storage routes
func (rt *Router) setupDocumentRoutes(g *echo.Group) {
	docs := g.Group("/documents")
	if rt.minutesHandler != nil {
		docs.GET("", rt.minutesHandler.Documents)
		docs.GET("/history", rt.minutesHandler.History)
		docs.POST("/classify", rt.minutesHandler.Classify)
	}
	if rt.storageHandler != nil {
		docs.GET("/:folder/:filename/url", rt.storageHandler.FileURL)
		g.GET("/storage/info", rt.storageHandler.Info)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	llm := config.ProviderNone
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
		if rt.cfg.LLMEnabled() {
			llm = rt.cfg.LLM.Provider
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
		"llm":         llm,
		"uptime":      time.Since(rt.started).Round(time.Second).String(),
	})
}
