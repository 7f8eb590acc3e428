package domain

import "time"

// SupportInteraction captures both support requests and quote requests
// submitted through the public contact form.
type SupportInteraction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Protocol        string    `gorm:"column:protocolo" json:"protocolo"`
	Name            string    `gorm:"column:nome" json:"nome"`
	Email           string    `gorm:"column:email" json:"email"`
	Phone           string    `gorm:"column:telefone" json:"telefone,omitempty"`
	Message         string    `gorm:"column:mensagem" json:"mensagem"`
	InteractionType string    `gorm:"column:tipo_interacao" json:"tipo_interacao"`
	ServiceName     string    `gorm:"column:servico_nome" json:"servico_nome,omitempty"`
	CreatedAt       time.Time `gorm:"column:criado_em" json:"criado_em"`
}

func (SupportInteraction) TableName() string {
	return "interacoes"
}
