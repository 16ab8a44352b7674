package models

import "github.com/megui/backend/internal/domain/company"

// CompanyModel maps the company aggregate to the empresas table.
type CompanyModel struct {
	AggregateModel
	RazonSocial  string `gorm:"not null"`
	RUC          string `gorm:"column:ruc;uniqueIndex;not null;size:11"`
	Direccion    string
	Telefono     string
	Email        string
	LogoKey      string
	LogoFilename string
}

// TableName returns the table name for CompanyModel
func (CompanyModel) TableName() string {
	return "empresas"
}

// ToDomain converts the model to a domain Company
func (m *CompanyModel) ToDomain() *company.Company {
	c := &company.Company{
		RazonSocial:  m.RazonSocial,
		RUC:          m.RUC,
		Direccion:    m.Direccion,
		Telefono:     m.Telefono,
		Email:        m.Email,
		LogoKey:      m.LogoKey,
		LogoFilename: m.LogoFilename,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// CompanyModelFromDomain builds the model from a domain Company
func CompanyModelFromDomain(c *company.Company) *CompanyModel {
	m := &CompanyModel{
		RazonSocial:  c.RazonSocial,
		RUC:          c.RUC,
		Direccion:    c.Direccion,
		Telefono:     c.Telefono,
		Email:        c.Email,
		LogoKey:      c.LogoKey,
		LogoFilename: c.LogoFilename,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
