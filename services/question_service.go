package services

import (
	"context"
	"fmt"
	"strings"

	"trivia/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

type DeletedEvent struct {
	ID uint `json:"id"`
}

// EventPublisher fans question changes out to live listeners.
type EventPublisher interface {
	Publish(eventType string, payload any)
}

type QuestionService struct {
	db         *gorm.DB
	categories *CategoryService
	events     EventPublisher
	logger     *zap.Logger
}

// NewQuestionService wires question reads and writes. events may be nil.
func NewQuestionService(db *gorm.DB, categories *CategoryService, events EventPublisher, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		db:         db,
		categories: categories,
		events:     events,
		logger:     logger,
	}
}

// QuestionRequest is the body of POST /questions. A non-empty SearchTerm
// selects search mode and every other field is ignored.
type QuestionRequest struct {
	Question   string         `json:"question"`
	Answer     string         `json:"answer"`
	Category   models.FlexInt `json:"category"`
	Difficulty models.FlexInt `json:"difficulty"`
	SearchTerm string         `json:"searchTerm"`
}

func (r *QuestionRequest) IsSearch() bool {
	return r.SearchTerm != ""
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}
	if err := s.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// SearchQuestions matches term case-insensitively anywhere in the question text.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	questions := []models.Question{}
	err := s.db.WithContext(ctx).
		Where("LOWER(question) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

// QuestionsByCategory returns the category and its questions ordered by id.
func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID int) (*models.Category, []models.Question, error) {
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions := []models.Question{}
	err = s.db.WithContext(ctx).
		Where("category = ?", category.ID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, nil, fmt.Errorf("list questions of category %d: %w", categoryID, err)
	}
	return category, questions, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, req *QuestionRequest) (*models.Question, error) {
	category, err := s.categories.GetCategory(ctx, req.Category.Int())
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   category.ID,
		Difficulty: req.Difficulty.Int(),
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	s.logger.Info("question created", zap.Uint("id", question.ID), zap.Uint("category", question.Category))
	if s.events != nil {
		s.events.Publish(EventQuestionCreated, question)
	}
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}

	s.logger.Info("question deleted", zap.Uint("id", id))
	if s.events != nil {
		s.events.Publish(EventQuestionDeleted, DeletedEvent{ID: id})
	}
	return nil
}
