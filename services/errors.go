package services

import "errors"

var (
	ErrQuestionNotFound   = errors.New("question not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrNoQuestions        = errors.New("no questions available")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
