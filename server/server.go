package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"

	"github.com/maddiravi/academia-analyzer-agent/pipeline"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	// DefaultWorkers bounds how many documents are analyzed concurrently.
	// Each analysis holds the whole document and its embeddings in memory.
	DefaultWorkers = 4
)

// Config holds the HTTP server settings.
type Config struct {
	// Addr is the listen address, for example ":8080".
	Addr string

	// UploadDir receives uploaded documents for the duration of their
	// analysis. Files are removed once the run finishes.
	UploadDir string

	// Workers caps concurrent analyses. Zero means DefaultWorkers.
	Workers int
}

// Server exposes the analysis pipeline over HTTP. Uploads are analyzed on a
// bounded worker pool; requests beyond the pool's capacity wait, and the
// handler reports overload when the pool is shut down.
type Server struct {
	cfg      Config
	pipeline *pipeline.Pipeline
	pool     *ants.Pool
	logger   *slog.Logger
}

// New creates a server around an already-constructed pipeline.
func New(cfg Config, p *pipeline.Pipeline) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:      cfg,
		pipeline: p,
		pool:     pool,
		logger:   slog.Default().With("component", "server"),
	}, nil
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	router.GET("/healthz", s.handleHealth)
	router.POST("/api/analyze", s.handleAnalyze)
	return router
}

// Run serves HTTP until the listener fails.
func (s *Server) Run() error {
	s.logger.Info("listening", "addr", s.cfg.Addr)
	return s.Router().Run(s.cfg.Addr)
}

// Close releases the worker pool. In-flight analyses finish; new submissions
// are rejected.
func (s *Server) Close() {
	s.pool.Release()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
