package models

type User struct {
	UserID uint64 `gorm:"column:user_id;primarykey" json:"user_id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	Email  string `gorm:"type:varchar(255);not null" json:"email"`
}

// TableName keeps the legacy table name
func (User) TableName() string {
	return "user_table"
}
