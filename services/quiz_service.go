package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"trivia/metrics"
	"trivia/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AllCategories selects the whole question pool in a quiz.
const AllCategories = 0

type QuizService struct {
	db         *gorm.DB
	categories *CategoryService
	metrics    *metrics.Metrics
	logger     *zap.Logger
	intn       func(n int) int
}

func NewQuizService(db *gorm.DB, categories *CategoryService, m *metrics.Metrics, logger *zap.Logger) *QuizService {
	return &QuizService{
		db:         db,
		categories: categories,
		metrics:    m,
		logger:     logger,
		intn:       rand.IntN,
	}
}

// QuizRequest is the body of POST /quizzes. Both fields must be present;
// an empty previous_questions list is fine.
type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

type QuizCategory struct {
	ID   models.FlexInt `json:"id"`
	Type string         `json:"type,omitempty"`
}

// NextQuestion draws a random question of the category that is not in
// previous. It returns (nil, nil) once every candidate has been shown and
// ErrNoQuestions when the category has no questions at all.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []uint) (*models.Question, error) {
	query := s.db.WithContext(ctx).Order("id")
	if categoryID != AllCategories {
		category, err := s.categories.GetCategory(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		query = query.Where("category = ?", category.ID)
	}

	var pool []models.Question
	if err := query.Find(&pool).Error; err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}
	if len(pool) == 0 {
		s.metrics.ObserveQuizDraw(metrics.DrawEmpty)
		return nil, ErrNoQuestions
	}

	remaining := unseen(pool, previous)
	if len(remaining) == 0 {
		s.metrics.ObserveQuizDraw(metrics.DrawExhausted)
		s.logger.Debug("quiz pool exhausted",
			zap.Int("category", categoryID),
			zap.Int("pool", len(pool)))
		return nil, nil
	}

	s.metrics.ObserveQuizDraw(metrics.DrawServed)
	next := remaining[s.intn(len(remaining))]
	return &next, nil
}

func unseen(pool []models.Question, previous []uint) []models.Question {
	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]models.Question, 0, len(pool))
	for _, question := range pool {
		if _, ok := seen[question.ID]; !ok {
			remaining = append(remaining, question)
		}
	}
	return remaining
}
