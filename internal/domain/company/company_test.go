package company_test

import (
	"testing"

	"github.com/megui/backend/internal/domain/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	c, err := company.NewCompany("Pesquera Atlantis S.A.C.", "20100070970")
	require.NoError(t, err)
	assert.Equal(t, "Pesquera Atlantis S.A.C.", c.RazonSocial)
	assert.Equal(t, "20100070970", c.RUC)
	assert.False(t, c.HasLogo())
}

func TestNewCompany_EmptyName(t *testing.T) {
	_, err := company.NewCompany("  ", "20100070970")
	assert.Error(t, err)
}

func TestValidateRUC(t *testing.T) {
	tests := []struct {
		name    string
		ruc     string
		wantErr bool
	}{
		{"valid 20-prefix", "20100070970", false},
		{"valid 20-prefix sunat", "20131312955", false},
		{"too short", "2010007097", true},
		{"non-numeric", "2010007097A", true},
		{"bad prefix", "30100070970", true},
		{"bad check digit", "20100070971", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := company.ValidateRUC(tt.ruc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetLogo(t *testing.T) {
	c, err := company.NewCompany("Pesquera Atlantis S.A.C.", "20100070970")
	require.NoError(t, err)

	require.NoError(t, c.SetLogo("logos/atlantis.png", "atlantis.png"))
	assert.True(t, c.HasLogo())

	assert.Error(t, c.SetLogo("", "atlantis.png"))
	assert.Error(t, c.SetLogo("logos/atlantis.gif", "atlantis.gif"))
}
