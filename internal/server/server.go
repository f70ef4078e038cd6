// Package server wires the HTTP boundary: routes, request validation,
// middleware, and the mapping from the failure taxonomy to status codes.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"toolbridge/internal/config"
	"toolbridge/internal/executor"
	"toolbridge/internal/helper"
	"toolbridge/internal/model"
	"toolbridge/internal/probe"
	"toolbridge/internal/tools"
	"toolbridge/internal/tools/dig"
	"toolbridge/internal/tools/nikto"
	"toolbridge/internal/tools/nmap"
	"toolbridge/internal/tools/nslookup"
	"toolbridge/internal/tools/sqlmap"
	"toolbridge/internal/tools/whatweb"
	"toolbridge/internal/tools/wpscan"
	"toolbridge/internal/tools/xsser"
)

// Tool dispatch seams, overridable in tests.
var (
	runNmap     = nmap.Run
	runSqlmap   = sqlmap.Run
	runNikto    = nikto.Run
	runWhatweb  = whatweb.Run
	runNslookup = nslookup.Run
	runDig      = dig.Run
	runXSS      = xsser.Run
	runWPScan   = wpscan.Run
	checkProbes = probe.Check
)

func Run(cfg *config.Config) error {
	srv := &http.Server{
		Addr:           cfg.Server.Addr,
		Handler:        NewRouter(cfg),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   0, // scans run for minutes
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	logrus.WithField("addr", srv.Addr).Info("server listening")
	return srv.ListenAndServe()
}

func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	s := &service{cfg: cfg}

	router.GET("/", s.rootHandler)
	router.GET("/health", s.healthHandler)

	scan := router.Group("/scan")
	scan.POST("/nmap", s.nmapHandler)
	scan.POST("/sqlmap", s.sqlmapHandler)
	scan.POST("/nikto", s.niktoHandler)
	scan.POST("/whatweb", s.whatwebHandler)
	scan.POST("/nslookup", s.nslookupHandler)
	scan.POST("/dig", s.digHandler)
	scan.POST("/xsser", s.xsserHandler)
	scan.POST("/wpscan", s.wpscanHandler)

	return router
}

type service struct {
	cfg *config.Config
}

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := uuid.New().String()
		ctx.Set("request_id", id)
		ctx.Header("X-Request-ID", id)
		ctx.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		logrus.WithFields(logrus.Fields{
			"request_id": ctx.GetString("request_id"),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	}
}

func (s *service) rootHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Security Tools API",
		"endpoints": gin.H{
			"nmap":     "/scan/nmap",
			"sqlmap":   "/scan/sqlmap",
			"nikto":    "/scan/nikto",
			"whatweb":  "/scan/whatweb",
			"nslookup": "/scan/nslookup",
			"dig":      "/scan/dig",
			"xsser":    "/scan/xsser",
			"wpscan":   "/scan/wpscan",
			"health":   "/health",
		},
	})
}

func (s *service) healthHandler(ctx *gin.Context) {
	targets := probe.Targets(s.cfg.Tools.XSSPython)
	status := checkProbes(ctx.Request.Context(), targets, s.cfg.Tools.ProbeTimeout())
	ctx.JSON(http.StatusOK, status)
}

func (s *service) nmapHandler(ctx *gin.Context) {
	var req model.NmapRequest
	if !bind(ctx, &req) {
		return
	}
	if err := helper.ValidateNmapRequest(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := runNmap(ctx.Request.Context(), req, s.cfg.Tools.Timeout(nmap.Name))
	if err != nil {
		writeToolError(ctx, nmap.Name, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (s *service) sqlmapHandler(ctx *gin.Context) {
	var req model.SqlmapRequest
	if !bind(ctx, &req) {
		return
	}
	if err := helper.ValidateSqlmapRequest(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := runSqlmap(ctx.Request.Context(), req, s.cfg.Tools.Timeout(sqlmap.Name))
	if err != nil {
		writeToolError(ctx, sqlmap.Name, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (s *service) niktoHandler(ctx *gin.Context) {
	var req model.NiktoRequest
	if !bind(ctx, &req) {
		return
	}
	if err := helper.ValidateNiktoRequest(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := runNikto(ctx.Request.Context(), req, s.cfg.Tools.Timeout(nikto.Name))
	if err != nil {
		writeToolError(ctx, nikto.Name, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (s *service) whatwebHandler(ctx *gin.Context) {
	var req model.WhatwebRequest
	if !bind(ctx, &req) {
		return
	}
	if err := helper.ValidateWhatwebRequest(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := runWhatweb(ctx.Request.Context(), req, s.cfg.Tools.Timeout(whatweb.Name))
	if err != nil {
		writeToolError(ctx, whatweb.Name, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (s *service) nslookupHandler(ctx *gin.Context) {
	var req model.NslookupRequest
	if !bind(ctx, &req) {
		return
	}
	if err := helper.ValidateNslookupRequest(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := runNslookup(ctx.Request.Context(), req, s.cfg.Tools.Timeout(nslookup.Name))
	if err != nil {
		writeToolError(ctx, nslookup.Name, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (s *service) digHandler(ctx *gin.Context) {
	var req model.DigRequest
	if !bind(ctx, &req) {
		return
	}
	if err := helper.ValidateDigRequest(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := runDig(ctx.Request.Context(), req, s.cfg.Tools.Timeout(dig.Name))
	if err != nil {
		writeToolError(ctx, dig.Name, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (s *service) xsserHandler(ctx *gin.Context) {
	var req model.XSSRequest
	if !bind(ctx, &req) {
		return
	}
	if err := helper.ValidateXSSRequest(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	opts := xsser.Options{
		Python:         s.cfg.Tools.XSSPython,
		Script:         s.cfg.Tools.XSSScript,
		RequestTimeout: s.cfg.Tools.XSSRequestTimeoutSec,
	}
	result, err := runXSS(ctx.Request.Context(), req, opts, s.cfg.Tools.Timeout(xsser.Name))
	if err != nil {
		writeToolError(ctx, xsser.Name, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (s *service) wpscanHandler(ctx *gin.Context) {
	var req model.WPScanRequest
	if !bind(ctx, &req) {
		return
	}
	if err := helper.ValidateWPScanRequest(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := runWPScan(ctx.Request.Context(), req, s.cfg.Tools.Timeout(wpscan.Name))
	if err != nil {
		writeToolError(ctx, wpscan.Name, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func bind(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		badRequest(ctx, err)
		return false
	}
	return true
}

func badRequest(ctx *gin.Context, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": ctx.GetString("request_id"),
		"path":       ctx.Request.URL.Path,
	}).Warnf("invalid request: %v", err)
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// writeToolError maps the failure taxonomy onto HTTP statuses: timeout 408,
// tool-reported failure 400 with stderr detail, start failure 500.
func writeToolError(ctx *gin.Context, tool string, err error) {
	entry := logrus.WithFields(logrus.Fields{
		"request_id": ctx.GetString("request_id"),
		"tool":       tool,
	})

	var (
		startErr *executor.StartError
		toolErr  *tools.ToolError
	)
	switch {
	case errors.Is(err, tools.ErrTimeout):
		entry.Warn("scan timed out")
		ctx.JSON(http.StatusRequestTimeout, gin.H{"error": tool + " scan timed out"})
	case errors.As(err, &toolErr):
		entry.Warnf("tool reported failure: exit code %d", toolErr.ExitCode)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  fmt.Sprintf("%s scan failed", tool),
			"detail": toolErr.Stderr,
		})
	case errors.As(err, &startErr):
		entry.Errorf("failed to start tool: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to run %s", tool)})
	default:
		entry.Errorf("scan failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%s scan failed", tool)})
	}
}
