// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes PDF conversion over HTTP: an upload form, a
// document info endpoint, and single and batch conversion endpoints
// that stream results back as downloads.
// Implements: prd004-upload-api (R1-R4);
//
//	docs/ARCHITECTURE § Upload API.
package server

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdfbridge/internal/convert"
	"github.com/pdiddy/pdfbridge/pkg/types"
)

//go:embed index.html
var indexHTML []byte

// InfoSource reads document properties for the info endpoint.
type InfoSource interface {
	Info(path string) (*types.DocumentInfo, error)
}

// Server handles upload, conversion, and info requests. Uploads land
// in per-request temp directories that are removed when the response
// is written.
type Server struct {
	cfg  types.Config
	conv *convert.Converter
	info InfoSource
	log  *logrus.Logger
}

// New builds a Server around a converter and an info source.
func New(cfg types.Config, conv *convert.Converter, info InfoSource, log *logrus.Logger) *Server {
	return &Server{cfg: cfg, conv: conv, info: info, log: log}
}

// Router builds the HTTP routes. Split out from Run so tests can
// drive the handlers without a listening socket.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	maxBody := s.cfg.Server.MaxUploadMB << 20
	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)
		c.Next()
	})

	router.GET("/", s.index)
	router.GET("/health", s.health)

	api := router.Group("/api")
	api.POST("/pdf-info", s.pdfInfo)
	api.POST("/convert-single", s.convertSingle)
	api.POST("/convert-batch", s.convertBatch)

	return router
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	addr := s.cfg.Server.Addr()
	s.log.Infof("listening on %s (engine: %s)", addr, s.conv.Engine().Name())
	return s.Router().Run(addr)
}

func (s *Server) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "engine": s.conv.Engine().Name()})
}
