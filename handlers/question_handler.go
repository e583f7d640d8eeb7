package handlers

import (
	"errors"
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	logger          *zap.Logger
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		logger:          logger,
	}
}

// GetQuestions handles GET /questions. A page with no questions is a 404.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questionService.ListQuestions(ctx)
	if err != nil {
		h.logger.Error("list questions", zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	page := services.Paginate(questions, pageParam(c), services.QuestionsPerPage)
	if len(page) == 0 {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		h.logger.Error("list categories", zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"total_questions":  len(questions),
		"categories":       categories,
		"current_category": []string{},
		"questions":        page,
	})
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	err := h.questionService.DeleteQuestion(c.Request.Context(), id)
	if errors.Is(err, services.ErrQuestionNotFound) {
		AbortWithError(c, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("delete question", zap.Uint("id", id), zap.Error(err))
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question successfully deleted",
	})
}

// PostQuestions handles POST /questions: a search when searchTerm is set,
// otherwise the creation of a new question.
func (h *QuestionHandler) PostQuestions(c *gin.Context) {
	var req services.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isMalformedBody(err) {
			AbortWithError(c, http.StatusBadRequest)
			return
		}
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	if req.IsSearch() {
		h.searchQuestions(c, req.SearchTerm)
		return
	}
	h.createQuestion(c, &req)
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string) {
	questions, err := h.questionService.SearchQuestions(c.Request.Context(), term)
	if err != nil {
		h.logger.Error("search questions", zap.String("term", term), zap.Error(err))
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       questions,
		"total_questions": len(questions),
	})
}

func (h *QuestionHandler) createQuestion(c *gin.Context, req *services.QuestionRequest) {
	ctx := c.Request.Context()

	question, err := h.questionService.CreateQuestion(ctx, req)
	if err != nil {
		if !errors.Is(err, services.ErrCategoryNotFound) {
			h.logger.Error("create question", zap.Error(err))
		}
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	questions, err := h.questionService.ListQuestions(ctx)
	if err != nil {
		h.logger.Error("list questions after create", zap.Error(err))
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created":         question.ID,
		"questions":       services.Paginate(questions, pageParam(c), services.QuestionsPerPage),
		"total_questions": len(questions),
	})
}
