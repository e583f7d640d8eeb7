package models

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"not null"`
}

// CategoryMap turns a category list into the id -> label mapping the API returns.
func CategoryMap(categories []Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, category := range categories {
		m[category.ID] = category.Type
	}
	return m
}
