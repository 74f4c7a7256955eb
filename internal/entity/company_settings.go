package entity

import "time"

// CompanySettings is a single-row table keyed on id = 1. The check
// constraint in the migration keeps it that way.
const CompanySettingsID = 1

type CompanySettings struct {
	ID int `gorm:"primaryKey" json:"id"`

	NomeFantasia      *string `gorm:"type:text" json:"nome_fantasia"`
	RazaoSocial       *string `gorm:"type:text" json:"razao_social"`
	CNPJ              *string `gorm:"column:cnpj;type:text" json:"cnpj"`
	InscricaoEstadual *string `gorm:"type:text" json:"inscricao_estadual"`
	Creci             *string `gorm:"type:text" json:"creci"`

	CEP         *string `gorm:"column:cep;type:text" json:"cep"`
	Logradouro  *string `gorm:"type:text" json:"logradouro"`
	Numero      *string `gorm:"type:text" json:"numero"`
	Complemento *string `gorm:"type:text" json:"complemento"`
	Bairro      *string `gorm:"type:text" json:"bairro"`
	Cidade      *string `gorm:"type:text" json:"cidade"`
	UF          *string `gorm:"column:uf;type:text" json:"uf"`

	Email     *string `gorm:"type:text" json:"email"`
	Telefone  *string `gorm:"type:text" json:"telefone"`
	Instagram *string `gorm:"type:text" json:"instagram"`
	Facebook  *string `gorm:"type:text" json:"facebook"`
	Tiktok    *string `gorm:"type:text" json:"tiktok"`
	Whatsapp  *string `gorm:"type:text" json:"whatsapp"`
	Logo      *string `gorm:"type:text" json:"logo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanySettings) TableName() string {
	return "company_settings"
}
