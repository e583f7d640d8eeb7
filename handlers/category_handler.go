package handlers

import (
	"errors"
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		logger:          logger,
	}
}

// GetCategories handles GET /categories.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("list categories", zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// GetCategoryQuestions handles GET /categories/:id/questions. An unknown
// category is reported as 422; an empty page is a normal result.
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	category, questions, err := h.questionService.QuestionsByCategory(c.Request.Context(), int(id))
	if err != nil {
		if !errors.Is(err, services.ErrCategoryNotFound) {
			h.logger.Error("list category questions", zap.Uint("category", id), zap.Error(err))
		}
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        services.Paginate(questions, pageParam(c), services.QuestionsPerPage),
		"total_questions":  len(questions),
		"current_category": category.Type,
	})
}
