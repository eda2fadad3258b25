package domain

import "time"

type ServiceCategory string

const (
	CategoryBridal     ServiceCategory = "bridal"
	CategorySocial     ServiceCategory = "social"
	CategoryMatureSkin ServiceCategory = "mature_skin"
	CategoryHairstyle  ServiceCategory = "hairstyle"
	CategoryOther      ServiceCategory = "other"
)

type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Price       float64         `json:"price" validate:"gte=0"`
	Duration    int             `json:"duration" validate:"gte=0"` // minutes
	Category    ServiceCategory `json:"category" validate:"required"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
