package model

// RoleModel mirrors the 'roles' table. Roles are a small fixed set seeded by
// migration, so the primary key is a plain integer.
type RoleModel struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
