package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"impact-finance/backend/internal/catalog"
	"impact-finance/backend/internal/explain"
	"impact-finance/backend/internal/scoring"
	"impact-finance/backend/internal/similarity"
)

// Config defines server dependencies.
type Config struct {
	DBPath             string
	InvestmentDataPath string
	AllowedOrigins     []string
	SilentDB           bool
	AIConfig           explain.Config
	DisableAI          bool
}

// Server wires HTTP handlers with the loaded catalog and the scoring engine.
type Server struct {
	db             *catalog.Database
	catalog        *catalog.Catalog
	engine         *scoring.Engine
	similarity     *similarity.Index
	explainer      explain.Explainer
	allowedOrigins []string
	investmentPath string
}

const explainTimeout = 10 * time.Second

// NewServer constructs the API server: the catalog is seeded and loaded, the
// similarity index built and the engine assembled before any request is
// served, so every handler reads frozen state.
func NewServer(cfg Config) (*Server, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("db path required")
	}
	if cfg.InvestmentDataPath == "" {
		return nil, errors.New("investment data path required")
	}

	db, err := catalog.Open(cfg.DBPath, cfg.SilentDB)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(db, cfg.InvestmentDataPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	docs := make([]similarity.Document, 0, len(cat.Charities()))
	for _, charity := range cat.Charities() {
		docs = append(docs, similarity.Document{ID: charity.ID, Text: charity.FeatureText()})
	}
	sim := similarity.Build(docs)
	logrus.WithFields(logrus.Fields{
		"documents": sim.Len(),
		"terms":     sim.VocabularySize(),
	}).Info("similarity index built")

	var explainer explain.Explainer
	if cfg.DisableAI {
		logrus.Info("AI reason enrichment disabled via configuration")
	} else if client, err := explain.NewClient(cfg.AIConfig); err == nil {
		explainer = explain.WithFallback(client, explain.TemplateExplainer{})
		logrus.WithField("model", cfg.AIConfig.Model).Info("AI reason enrichment enabled")
	} else if errors.Is(err, explain.ErrDisabled) {
		logrus.Info("AI reason enrichment disabled - no API key configured")
	} else {
		return nil, fmt.Errorf("explain client: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"charities": len(cat.Charities()),
		"products":  len(cat.Products()),
	}).Info("catalog loaded")

	return &Server{
		db:             db,
		catalog:        cat,
		engine:         scoring.NewEngine(cat, scoring.NewRandomNoise()),
		similarity:     sim,
		explainer:      explainer,
		allowedOrigins: cfg.AllowedOrigins,
		investmentPath: cfg.InvestmentDataPath,
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	ml := r.Group("/api/ml")
	{
		ml.GET("/donations/recommendations/:userID", s.handleDonationRecommendations)
		ml.POST("/investments/recommendations", s.handleInvestmentRecommendations)
		ml.GET("/investments/options", s.handleInvestmentOptions)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"charities":            len(s.catalog.Charities()),
		"investment_products":  len(s.catalog.Products()),
		"similarity_documents": s.similarity.Len(),
		"similarity_terms":     s.similarity.VocabularySize(),
		"investment_data_path": s.investmentPath,
	})
}

func (s *Server) handleDonationRecommendations(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userID"))
	if userID == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("user id is required"))
		return
	}

	numRecs := scoring.DefaultRecommendationCount
	if raw := strings.TrimSpace(c.Query("count")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.renderError(c, http.StatusBadRequest, fmt.Errorf("invalid count: %s", raw))
			return
		}
		numRecs = parsed
	}

	start := time.Now()
	recs, err := s.engine.DonationRecommendations(userID, numRecs)
	if err != nil {
		if errors.Is(err, scoring.ErrUserNotFound) {
			s.renderError(c, http.StatusNotFound, fmt.Errorf("user %s not found", userID))
			return
		}
		logrus.WithError(err).WithField("user", userID).Error("generate donation recommendations")
		s.renderError(c, http.StatusInternalServerError, errors.New("failed to generate recommendations"))
		return
	}

	if len(recs) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No new recommendations at this time."})
		return
	}

	dtos := make([]DonationRecommendationDTO, 0, len(recs))
	for _, rec := range recs {
		dto := DonationFromResult(rec)
		dto.PrimaryReason = s.narrate(c.Request.Context(), explain.Input{
			ItemName:        rec.Charity.Name,
			Category:        rec.Charity.Category,
			MatchScore:      rec.MatchScore,
			ConfidenceLevel: rec.ConfidenceLevel,
			Reasons:         rec.SecondaryReasons,
			Kind:            explain.KindDonation,
		}, dto.PrimaryReason)
		dtos = append(dtos, dto)
	}

	logrus.WithFields(logrus.Fields{
		"user":     userID,
		"count":    len(dtos),
		"duration": time.Since(start),
	}).Debug("donation recommendations served")
	c.JSON(http.StatusOK, dtos)
}

func (s *Server) handleInvestmentRecommendations(c *gin.Context) {
	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	id := strings.TrimSpace(req.UserProfile.ID)
	if id == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("userProfile.id is required"))
		return
	}

	// Profile resolution happens here; the matcher never looks up profiles.
	profile, ok := s.catalog.User(id)
	if !ok {
		s.renderError(c, http.StatusNotFound, fmt.Errorf("user %s not found", id))
		return
	}

	start := time.Now()
	recs := s.engine.InvestmentRecommendations(profile)
	dtos := make([]InvestmentRecommendationDTO, 0, len(recs))
	for _, rec := range recs {
		dto := InvestmentFromResult(rec)
		dto.PrimaryReason = s.narrate(c.Request.Context(), explain.Input{
			ItemName:        rec.Product.Name,
			Category:        rec.Product.Category,
			MatchScore:      rec.MatchScore,
			ConfidenceLevel: rec.ConfidenceLevel,
			Reasons:         rec.SecondaryReasons,
			Kind:            explain.KindInvestment,
		}, dto.PrimaryReason)
		dtos = append(dtos, dto)
	}

	logrus.WithFields(logrus.Fields{
		"user":     id,
		"count":    len(dtos),
		"duration": time.Since(start),
	}).Debug("investment recommendations served")
	c.JSON(http.StatusOK, dtos)
}

func (s *Server) handleInvestmentOptions(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Products())
}

// narrate replaces the templated reason with an AI narrative when enrichment
// is configured; any failure keeps the template.
func (s *Server) narrate(ctx context.Context, in explain.Input, fallback string) string {
	if s.explainer == nil || !s.explainer.Enabled() {
		return fallback
	}
	ctx, cancel := context.WithTimeout(ctx, explainTimeout)
	defer cancel()
	narrative, err := s.explainer.Explain(ctx, in)
	if err != nil {
		logrus.WithError(err).Debug("reason enrichment failed")
		return fallback
	}
	return narrative
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
