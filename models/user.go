package models

// User is keyed by display name, as in the historical users table.
type User struct {
	Nom      string `json:"nom" gorm:"column:nom;primaryKey;size:25"`
	Login    string `json:"login" gorm:"column:login;uniqueIndex;size:100"`
	Password string `json:"-" gorm:"column:password;not null;size:255"`
	Droit    string `json:"droit" gorm:"column:droit;size:30"`
}

func (User) TableName() string {
	return "users"
}
