package ledger_model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site, Vendor and Category are owned by the master data service. They are
// migrated here only so references can be checked and joined.

type Site struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SiteName  string    `json:"site_name" gorm:"not null"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type Vendor struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

type Category struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CategoryName string    `json:"category_name" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
