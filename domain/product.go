package domain

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:nome;not null" json:"nome"`
	Description string    `gorm:"column:descricao" json:"descricao"`
	Price       float64   `gorm:"column:preco;not null" json:"preco"`
	ImageURL    string    `gorm:"column:imagem_url" json:"imagem_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:criado_em" json:"criado_em"`
}

func (Product) TableName() string {
	return "produtos"
}
