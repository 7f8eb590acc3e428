package domain

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"column:nome_completo;not null" json:"nome_completo"`
	Email     string    `gorm:"column:email;unique;not null" json:"email"`
	Phone     string    `gorm:"column:telefone" json:"telefone,omitempty"`
	Password  string    `gorm:"column:senha;not null" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"column:criado_em" json:"criado_em"`
}

func (User) TableName() string {
	return "usuarios"
}
