package model

import (
	"time"

	"github.com/google/uuid"
)

// PictureModel mirrors the 'pictures' table. Camera metadata columns are
// nullable; search predicates distinguish NULL from a present value.
type PictureModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title                 string    `gorm:"type:varchar(255);not null"`
	Description           *string   `gorm:"type:text"`
	PhysicalPath          string    `gorm:"type:varchar(500);not null"`
	Width                 int       `gorm:"not null"`
	Height                int       `gorm:"not null"`
	ISO                   *string   `gorm:"column:iso;type:varchar(50)"`
	CameraModel           *string   `gorm:"type:varchar(255)"`
	Flash                 *bool
	DelayTimeMilliseconds *float64
	FocusDistance         *string    `gorm:"type:varchar(50)"`
	Created               time.Time  `gorm:"not null;index"`
	ShootingDate          *time.Time `gorm:"index"`
	UserID                uuid.UUID  `gorm:"type:uuid;not null;index"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (PictureModel) TableName() string {
	return "pictures"
}
