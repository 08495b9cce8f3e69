package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scientist-twin/internal/service"
)

// NewRouter wires the gin engine with middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	tokenSvc *service.TokenService,
	quizH *QuizHandler,
	matchH *MatchHandler,
	analyticsH *AnalyticsHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	quiz := r.Group("/quiz")
	quiz.POST("/start", quizH.StartQuiz)

	quizAuth := quiz.Group("")
	quizAuth.Use(SessionAuthMiddleware(tokenSvc))
	quizAuth.POST("/answer", quizH.Answer)
	quizAuth.POST("/retake", quizH.Retake)

	matches := r.Group("/matches")
	matches.Use(SessionAuthMiddleware(tokenSvc))
	matches.GET("", matchH.GetMatches)
	matches.POST("/like", matchH.Like)

	r.GET("/scientists/count", matchH.Count)
	r.GET("/analytics", analyticsH.Summary)

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
