package models

type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer" gorm:"not null"`
	Category   uint   `json:"category" gorm:"not null;index"`
	Difficulty int    `json:"difficulty" gorm:"not null"`
}
