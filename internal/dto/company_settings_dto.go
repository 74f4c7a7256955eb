package dto

import "imobia/internal/entity"

type CompanySettingsRequest struct {
	NomeFantasia      *string `json:"nome_fantasia"`
	RazaoSocial       *string `json:"razao_social"`
	CNPJ              *string `json:"cnpj"`
	InscricaoEstadual *string `json:"inscricao_estadual"`
	Creci             *string `json:"creci"`

	CEP         *string `json:"cep"`
	Logradouro  *string `json:"logradouro"`
	Numero      *string `json:"numero"`
	Complemento *string `json:"complemento"`
	Bairro      *string `json:"bairro"`
	Cidade      *string `json:"cidade"`
	UF          *string `json:"uf"`

	Email     *string `json:"email" validate:"omitempty,email"`
	Telefone  *string `json:"telefone"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Tiktok    *string `json:"tiktok"`
	Whatsapp  *string `json:"whatsapp"`
	Logo      *string `json:"logo"`
}

func (r CompanySettingsRequest) ToEntity() *entity.CompanySettings {
	return &entity.CompanySettings{
		ID:                entity.CompanySettingsID,
		NomeFantasia:      r.NomeFantasia,
		RazaoSocial:       r.RazaoSocial,
		CNPJ:              r.CNPJ,
		InscricaoEstadual: r.InscricaoEstadual,
		Creci:             r.Creci,
		CEP:               r.CEP,
		Logradouro:        r.Logradouro,
		Numero:            r.Numero,
		Complemento:       r.Complemento,
		Bairro:            r.Bairro,
		Cidade:            r.Cidade,
		UF:                r.UF,
		Email:             r.Email,
		Telefone:          r.Telefone,
		Instagram:         r.Instagram,
		Facebook:          r.Facebook,
		Tiktok:            r.Tiktok,
		Whatsapp:          r.Whatsapp,
		Logo:              r.Logo,
	}
}
