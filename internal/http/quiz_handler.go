package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scientist-twin/internal/service"
)

// QuizHandler holds dependencies for the quiz progression endpoints.
type QuizHandler struct {
	logger   *zap.Logger
	quizSvc  *service.QuizService
	tokenSvc *service.TokenService
}

func NewQuizHandler(logger *zap.Logger, quizSvc *service.QuizService, tokenSvc *service.TokenService) *QuizHandler {
	return &QuizHandler{
		logger:   logger,
		quizSvc:  quizSvc,
		tokenSvc: tokenSvc,
	}
}

// StartQuiz handles POST /quiz/start.
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	var req struct {
		Domain string `json:"domain"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid start quiz request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, question, err := h.quizSvc.Start(req.Domain)
	if err != nil {
		h.logger.Error("start quiz failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start quiz"})
		return
	}

	token, err := h.tokenSvc.Issue(session.ID)
	if err != nil {
		h.logger.Error("issue session token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start quiz"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":      token,
		"session_id": session.ID,
		"question":   question,
		"total":      len(service.Questions()),
	})
}

// Answer handles POST /quiz/answer.
func (h *QuizHandler) Answer(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	var req struct {
		Option *int `json:"option" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, next, done, err := h.quizSvc.Answer(sessionID, *req.Option)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("record answer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record answer"})
		return
	}

	if done {
		c.JSON(http.StatusOK, gin.H{
			"done":     true,
			"answered": len(session.Answers),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"done":     false,
		"answered": len(session.Answers),
		"question": next,
	})
}

// Retake handles POST /quiz/retake: answers are cleared but the session and
// its recently-shown list survive, so the next run avoids repeat matches.
func (h *QuizHandler) Retake(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	session, err := h.quizSvc.Reset(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("reset quiz failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"question":   service.Questions()[0],
		"total":      len(service.Questions()),
	})
}
