package services

import (
	"context"
	"errors"
	"fmt"

	"trivia/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryCacher stores the category mapping between requests.
type CategoryCacher interface {
	Get(ctx context.Context) (map[uint]string, bool, error)
	Set(ctx context.Context, categories map[uint]string) error
	Invalidate(ctx context.Context) error
}

var defaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

type CategoryService struct {
	db     *gorm.DB
	cache  CategoryCacher
	logger *zap.Logger
}

// NewCategoryService wires the category reads. cache may be nil.
func NewCategoryService(db *gorm.DB, cache CategoryCacher, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// ListCategories returns the id -> label mapping. Cache failures are
// logged and the database is used instead.
func (s *CategoryService) ListCategories(ctx context.Context) (map[uint]string, error) {
	if s.cache != nil {
		categories, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("category cache read failed", zap.Error(err))
		} else if ok {
			return categories, nil
		}
	}

	var rows []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := models.CategoryMap(rows)

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	if id < 1 {
		return nil, ErrCategoryNotFound
	}

	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &category, nil
}

// SeedDefaults inserts the stock categories into an empty table.
func (s *CategoryService) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.Category, 0, len(defaultCategories))
	for _, label := range defaultCategories {
		rows = append(rows, models.Category{Type: label})
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("category cache invalidation failed", zap.Error(err))
		}
	}
	s.logger.Info("seeded default categories", zap.Int("count", len(rows)))
	return nil
}
