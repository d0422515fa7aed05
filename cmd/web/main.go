package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"garment-studio-bot/internal/config"
	"garment-studio-bot/internal/gemini"
	"garment-studio-bot/internal/httpclient"
	"garment-studio-bot/internal/studio"
)

// The web binary is a stateless API over the engine: callers keep their own
// result collection and merge batches client-side.
type server struct {
	engine         *studio.Engine
	logger         *slog.Logger
	requestTimeout time.Duration
}

type artifactsResponse struct {
	Artifacts []studio.Artifact `json:"artifacts"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(false)
	if err != nil {
		panic(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    cfg.HTTPTimeout,
	})

	gem := gemini.New(gemini.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		APIVersion: cfg.GeminiAPIVersion,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	s := &server{
		engine: studio.NewEngine(studio.Options{
			Generator:     gem,
			Logger:        logger,
			MaxConcurrent: cfg.MaxConcurrent,
		}),
		logger:         logger,
		requestTimeout: cfg.RequestTimeout,
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.MaxMultipartMemory = 25 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/api/generate", s.handleGenerate)
	router.POST("/api/reviews", s.handleReviews)
	router.POST("/api/correct", s.handleCorrect)

	logger.Info("web started", "addr", cfg.WebAddr)
	if err := router.Run(cfg.WebAddr); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func (s *server) handleGenerate(c *gin.Context) {
	source, ok := s.formAsset(c, "image")
	if !ok {
		return
	}

	category := studio.Category(strings.TrimSpace(c.PostForm("category")))
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	ctx, cancel := s.jobContext(c)
	defer cancel()

	artifacts, err := s.engine.GenerateCategory(ctx, source, category, studio.RenderContext{
		Overlay: strings.TrimSpace(c.PostForm("slogan")),
	})
	if err != nil {
		s.logger.Error("category generation failed", "category", category, "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
		return
	}

	c.JSON(http.StatusOK, artifactsResponse{Artifacts: artifacts})
}

func (s *server) handleReviews(c *gin.Context) {
	source, ok := s.formAsset(c, "image")
	if !ok {
		return
	}

	req := studio.ReviewRequest{
		Situations: parseSituations(c.PostForm("situations")),
		Language:   strings.TrimSpace(c.PostForm("language")),
		AgeBracket: strings.TrimSpace(c.PostForm("age")),
		Gender:     strings.TrimSpace(c.PostForm("gender")),
	}
	if req.Language == "" {
		req.Language = "uk"
	}
	if req.AgeBracket == "" {
		req.AgeBracket = "30-40"
	}
	if len(req.Situations) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one situation is required"})
		return
	}

	ctx, cancel := s.jobContext(c)
	defer cancel()

	artifacts, err := s.engine.GenerateReviews(ctx, source, req)
	if err != nil {
		s.logger.Error("review generation failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
		return
	}

	c.JSON(http.StatusOK, artifactsResponse{Artifacts: artifacts})
}

func (s *server) handleCorrect(c *gin.Context) {
	source, ok := s.formAsset(c, "source")
	if !ok {
		return
	}
	current, ok := s.formAsset(c, "current")
	if !ok {
		return
	}

	feedback := strings.TrimSpace(c.PostForm("feedback"))
	if feedback == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "feedback is required"})
		return
	}

	correctionCount, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("correction_count")))
	original := studio.Artifact{
		ImageURL:        "data:" + current.MimeType + ";base64," + current.DataBase64,
		Category:        studio.Category(strings.TrimSpace(c.PostForm("category"))),
		Variant:         strings.TrimSpace(c.PostForm("variant")),
		Description:     strings.TrimSpace(c.PostForm("description")),
		CorrectionCount: correctionCount,
	}
	if original.CorrectionsExhausted() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "correction limit reached"})
		return
	}

	ctx, cancel := s.jobContext(c)
	defer cancel()

	corrected, err := s.engine.Correct(ctx, source, original, feedback)
	if err != nil {
		s.logger.Error("correction failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "correction failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artifact": corrected})
}

func (s *server) formAsset(c *gin.Context, field string) (studio.SourceAsset, bool) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + field})
		return studio.SourceAsset{}, false
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read " + field})
		return studio.SourceAsset{}, false
	}

	return studio.SourceAsset{
		DataBase64: base64.StdEncoding.EncodeToString(raw),
		MimeType:   detectMime(header, raw),
	}, true
}

func (s *server) jobContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.requestTimeout)
}

func detectMime(header *multipart.FileHeader, raw []byte) string {
	mimeType := strings.TrimSpace(header.Header.Get("Content-Type"))
	if strings.Contains(mimeType, ";") {
		mimeType = strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(raw)
	}
	if strings.Contains(mimeType, ";") {
		mimeType = strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = "image/jpeg"
	}
	return mimeType
}

// parseSituations accepts either a JSON string array or a semicolon list.
func parseSituations(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var fromJSON []string
	if err := json.Unmarshal([]byte(raw), &fromJSON); err == nil {
		raw = strings.Join(fromJSON, ";")
	}

	var out []string
	for _, s := range strings.Split(raw, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"dur_ms", time.Since(start).Milliseconds(),
		)
	}
}
