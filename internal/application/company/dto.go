package company

import (
	"time"
)

// CreateCompanyRequest represents a request to register an empresa
type CreateCompanyRequest struct {
	RazonSocial string `json:"razon_social" binding:"required,min=1,max=200"`
	RUC         string `json:"ruc" binding:"required,ruc"`
	Direccion   string `json:"direccion" binding:"max=300"`
	Telefono    string `json:"telefono" binding:"max=30"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
}

// UpdateContactRequest updates the contact fields of an empresa
type UpdateContactRequest struct {
	Direccion string `json:"direccion" binding:"max=300"`
	Telefono  string `json:"telefono" binding:"max=30"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
}

// SetLogoRequest records the stored logo of an empresa
type SetLogoRequest struct {
	LogoKey      string `json:"logo_key" binding:"required,max=500"`
	LogoFilename string `json:"logo_filename" binding:"required,max=200"`
}

// ListCompaniesRequest represents a request to list empresas
type ListCompaniesRequest struct {
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}

// CompanyResponse represents an empresa response
type CompanyResponse struct {
	ID           string    `json:"id"`
	RazonSocial  string    `json:"razon_social"`
	RUC          string    `json:"ruc"`
	Direccion    string    `json:"direccion,omitempty"`
	Telefono     string    `json:"telefono,omitempty"`
	Email        string    `json:"email,omitempty"`
	LogoKey      string    `json:"logo_key,omitempty"`
	LogoFilename string    `json:"logo_filename,omitempty"`
	HasLogo      bool      `json:"has_logo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListCompaniesResponse represents a paginated list of empresas
type ListCompaniesResponse struct {
	Items []CompanyResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}
