package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// internalErrorDetail is the only thing a client sees on an unexpected
// failure; full detail goes to the log.
const internalErrorDetail = "An unexpected error occurred. Please try again later."

const requestIDHeader = "X-Request-ID"

// Server exposes the question-answering pipeline over HTTP.
type Server struct {
	agent     cdpagent.QuestionAnswerer
	catalog   *cdpagent.Catalog
	logger    *slog.Logger
	staticDir string

	router *gin.Engine
	srv    *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStaticDir sets the directory served under /static and holding the
// landing page. Defaults to "static".
func WithStaticDir(dir string) ServerOption {
	return func(s *Server) {
		s.staticDir = dir
	}
}

// NewServer creates a Server routing to the given pipeline and catalog.
func NewServer(catalog *cdpagent.Catalog, agent cdpagent.QuestionAnswerer, opts ...ServerOption) *Server {
	s := &Server{
		agent:     agent,
		catalog:   catalog,
		logger:    slog.Default(),
		staticDir: "static",
	}
	for _, opt := range opts {
		opt(s)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(s.requestID())
	r.Use(s.requestLogger())
	r.Use(gin.CustomRecovery(s.handlePanic))
	r.Use(cors.Default())

	r.POST("/ask", s.handleAsk)
	r.GET("/supported-cdps", s.handleSupportedCDPs)
	r.GET("/health", s.handleHealth)
	r.GET("/", s.handleIndex)
	r.Static("/static", s.staticDir)

	s.router = r
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until Shutdown is called.
// A server closed by Shutdown returns nil.
func (s *Server) ListenAndServe(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "question is required"})
		return
	}

	answer, err := s.agent.Answer(c.Request.Context(), req.Question)
	if err != nil {
		s.logger.Error("unhandled error answering question",
			"error", err,
			"request_id", c.GetString(requestIDHeader),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": internalErrorDetail})
		return
	}

	c.JSON(http.StatusOK, answer)
}

func (s *Server) handleSupportedCDPs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cdps": s.catalog.CDPs()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": Version})
}

func (s *Server) handleIndex(c *gin.Context) {
	index := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Index file not found"})
		return
	}
	c.File(index)
}

// handlePanic logs the full panic detail and answers with a generic 500.
func (s *Server) handlePanic(c *gin.Context, err any) {
	s.logger.Error("unhandled panic",
		"error", err,
		"path", c.Request.URL.Path,
		"request_id", c.GetString(requestIDHeader),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": internalErrorDetail})
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
			"request_id", c.GetString(requestIDHeader),
		)
	}
}
