package services

import (
	"context"
	"testing"

	"trivia/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, labels ...string) []models.Category {
	t.Helper()

	rows := make([]models.Category, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, models.Category{Type: label})
	}
	require.NoError(t, db.Create(&rows).Error)
	return rows
}

func seedQuestions(t *testing.T, db *gorm.DB, category uint, texts ...string) []models.Question {
	t.Helper()

	rows := make([]models.Question, 0, len(texts))
	for _, text := range texts {
		rows = append(rows, models.Question{Question: text, Answer: "answer", Category: category, Difficulty: 1})
	}
	require.NoError(t, db.Create(&rows).Error)
	return rows
}

type fakeCache struct {
	data    map[uint]string
	gets    int
	sets    int
	getErr  error
	cleared bool
}

func (f *fakeCache) Get(context.Context) (map[uint]string, bool, error) {
	f.gets++
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.data, f.data != nil, nil
}

func (f *fakeCache) Set(_ context.Context, categories map[uint]string) error {
	f.sets++
	f.data = categories
	return nil
}

func (f *fakeCache) Invalidate(context.Context) error {
	f.cleared = true
	f.data = nil
	return nil
}

type recordedEvent struct {
	eventType string
	payload   any
}

type fakePublisher struct {
	events []recordedEvent
}

func (f *fakePublisher) Publish(eventType string, payload any) {
	f.events = append(f.events, recordedEvent{eventType: eventType, payload: payload})
}

func newCategoryService(t *testing.T, db *gorm.DB, cache CategoryCacher) *CategoryService {
	return NewCategoryService(db, cache, zaptest.NewLogger(t))
}
