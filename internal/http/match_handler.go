package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"scientist-twin/internal/domain"
	"scientist-twin/internal/repository"
	"scientist-twin/internal/service"
)

// MatchHandler serves match results and the feedback endpoints around them.
type MatchHandler struct {
	logger   *zap.Logger
	quizSvc  *service.QuizService
	engine   *service.MatchingEngine
	feedback repository.FeedbackRepository
}

func NewMatchHandler(
	logger *zap.Logger,
	quizSvc *service.QuizService,
	engine *service.MatchingEngine,
	feedback repository.FeedbackRepository,
) *MatchHandler {
	return &MatchHandler{
		logger:   logger,
		quizSvc:  quizSvc,
		engine:   engine,
		feedback: feedback,
	}
}

// GetMatches handles GET /matches. The quiz must be complete; results are
// recorded as recently shown so a retake surfaces fresh scientists.
func (h *MatchHandler) GetMatches(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	session, err := h.quizSvc.Session(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("load session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}

	profile, err := h.quizSvc.BuildProfile(session)
	if err != nil {
		if errors.Is(err, service.ErrQuizIncomplete) {
			c.JSON(http.StatusConflict, gin.H{"error": "quiz incomplete"})
			return
		}
		h.logger.Error("build profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build profile"})
		return
	}

	results := h.engine.FullMatches(c.Request.Context(), profile, session.Domain, session.RecentlyShown, 0)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	if _, err := h.quizSvc.RecordShown(sessionID, names); err != nil {
		h.logger.Warn("record shown failed", zap.Error(err))
	}

	h.recordFeedback(sessionID, "play", topMatchName(results))

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"matches":    results,
	})
}

// Like handles POST /matches/like.
func (h *MatchHandler) Like(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	var req struct {
		Scientist string `json:"scientist" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid like request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.recordFeedback(sessionID, "like", req.Scientist)
	c.JSON(http.StatusCreated, gin.H{"liked": req.Scientist})
}

// Count handles GET /scientists/count.
func (h *MatchHandler) Count(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.engine.PoolSize()})
}

// recordFeedback stores an event best-effort; analytics gaps are preferable
// to failing the user's request.
func (h *MatchHandler) recordFeedback(sessionID, kind, scientist string) {
	if h.feedback == nil {
		return
	}
	event := domain.FeedbackEvent{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Scientist: scientist,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.feedback.Create(ctx, event); err != nil {
		h.logger.Warn("record feedback failed", zap.Error(err), zap.String("kind", kind))
	}
}

func topMatchName(results []domain.MatchResult) string {
	if len(results) == 0 {
		return ""
	}
	return results[0].Name
}
