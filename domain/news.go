package domain

import "time"

type News struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"column:titulo;not null" json:"titulo"`
	Content     string    `gorm:"column:conteudo" json:"conteudo"`
	ImageURL    string    `gorm:"column:imagem_url" json:"imagem_url,omitempty"`
	PublishedAt time.Time `gorm:"column:data" json:"data"`
}

func (News) TableName() string {
	return "noticias"
}
