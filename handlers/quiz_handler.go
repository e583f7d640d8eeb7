package handlers

import (
	"errors"
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	quizService *services.QuizService
	logger      *zap.Logger
}

func NewQuizHandler(quizService *services.QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		logger:      logger,
	}
}

// NextQuestion handles POST /quizzes. "question" is null once every
// question of the category has been played.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req services.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isMalformedBody(err) || isValidationError(err) {
			AbortWithError(c, http.StatusBadRequest)
			return
		}
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	categoryID := req.QuizCategory.ID.Int()
	question, err := h.quizService.NextQuestion(c.Request.Context(), categoryID, req.PreviousQuestions)
	if err != nil {
		if !errors.Is(err, services.ErrNoQuestions) && !errors.Is(err, services.ErrCategoryNotFound) {
			h.logger.Error("next quiz question", zap.Int("category", categoryID), zap.Error(err))
		}
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}
