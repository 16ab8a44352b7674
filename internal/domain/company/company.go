// Package company holds the Empresa master data used as letterhead
// information on printed documents.
package company

import (
	"strings"

	"github.com/megui/backend/internal/domain/shared"
)

// Company represents an empresa: the legal entity whose letterhead and
// logo appear on generated documents.
type Company struct {
	shared.BaseAggregateRoot
	RazonSocial  string
	RUC          string
	Direccion    string
	Telefono     string
	Email        string
	LogoKey      string // object-storage key of the logo image, empty if none
	LogoFilename string // original filename, used as a PNG/JPEG format hint
}

// NewCompany creates a new company after validating its identity fields.
func NewCompany(razonSocial, ruc string) (*Company, error) {
	razonSocial = strings.TrimSpace(razonSocial)
	if razonSocial == "" {
		return nil, shared.NewDomainError("INVALID_RAZON_SOCIAL", "Razon social cannot be empty")
	}
	if err := ValidateRUC(ruc); err != nil {
		return nil, err
	}

	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RazonSocial:       razonSocial,
		RUC:               ruc,
	}, nil
}

// SetContact updates the optional contact fields.
func (c *Company) SetContact(direccion, telefono, email string) {
	c.Direccion = strings.TrimSpace(direccion)
	c.Telefono = strings.TrimSpace(telefono)
	c.Email = strings.TrimSpace(email)
}

// SetLogo records the stored logo object key and its filename hint.
func (c *Company) SetLogo(key, filename string) error {
	if key == "" {
		return shared.NewDomainError("INVALID_LOGO", "Logo key cannot be empty")
	}
	ext := strings.ToLower(filename)
	if !strings.HasSuffix(ext, ".png") && !strings.HasSuffix(ext, ".jpg") && !strings.HasSuffix(ext, ".jpeg") {
		return shared.NewDomainError("INVALID_LOGO", "Logo must be a PNG or JPEG file")
	}
	c.LogoKey = key
	c.LogoFilename = filename
	return nil
}

// HasLogo reports whether a logo has been configured.
func (c *Company) HasLogo() bool {
	return c.LogoKey != ""
}

// rucWeights are the SUNAT modulus-11 check weights for the first ten digits.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// ValidateRUC checks that the RUC is an 11-digit SUNAT taxpayer number
// with a valid type prefix and modulus-11 check digit.
func ValidateRUC(ruc string) error {
	if len(ruc) != 11 {
		return shared.NewDomainError("INVALID_RUC", "RUC must have 11 digits")
	}
	for _, r := range ruc {
		if r < '0' || r > '9' {
			return shared.NewDomainError("INVALID_RUC", "RUC must contain only digits")
		}
	}
	switch ruc[:2] {
	case "10", "15", "17", "20":
	default:
		return shared.NewDomainError("INVALID_RUC", "RUC has an unknown taxpayer type prefix")
	}

	sum := 0
	for i, w := range rucWeights {
		sum += int(ruc[i]-'0') * w
	}
	check := 11 - sum%11
	if check >= 10 {
		check -= 10
	}
	if check != int(ruc[10]-'0') {
		return shared.NewDomainError("INVALID_RUC", "RUC check digit does not match")
	}
	return nil
}
