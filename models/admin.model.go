package models

type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"column:name;size:100" json:"name"`
	Email    string `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password;not null" json:"-"`
}

func (Admin) TableName() string {
	return "admin"
}

func (a *Admin) PasswordHash() string { return a.Password }

func (a *Admin) Identity() interface{} { return a.ID }
