package model

import "time"

// User maps onto the usuarios table. Guest checkouts create rows with an
// empty password hash; those accounts cannot log in until they register.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:nombre;type:varchar(100);uniqueIndex;not null" json:"nombre"`
	Email     *string   `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Phone     string    `gorm:"column:telefono;type:varchar(20);uniqueIndex;not null" json:"telefono"`
	Address   string    `gorm:"column:direccion;type:varchar(255)" json:"direccion"`
	Password  string    `gorm:"column:password;type:varchar(255)" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "usuarios" }
