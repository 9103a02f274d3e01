package fiscal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"facturalo/internal/domain"
	"facturalo/internal/fiscal"
)

func TestTagTaxLines_Classification(t *testing.T) {
	lines := []domain.TaxLine{
		{Name: "IRPF", Rate: json.Number("-15")},
		{Name: "Retención IRPF 7%", Rate: json.Number("-7")},
		{Name: "IVA 21%", Rate: json.Number("21")},
		{Name: "vat", Rate: json.Number("10")},
		{Name: "Recargo de equivalencia", Rate: json.Number("5.2")},
	}

	tagged := fiscal.TagTaxLines(lines)
	assert.Len(t, tagged, 5)
	assert.Equal(t, domain.TaxKindIRPF, tagged[0].Kind)
	assert.Equal(t, domain.TaxKindIRPF, tagged[1].Kind)
	assert.Equal(t, domain.TaxKindVAT, tagged[2].Kind)
	assert.Equal(t, domain.TaxKindVAT, tagged[3].Kind)
	assert.Equal(t, domain.TaxKindOther, tagged[4].Kind)
}

func TestTagTaxLines_ParsesRates(t *testing.T) {
	tagged := fiscal.TagTaxLines([]domain.TaxLine{
		{Name: "IRPF", Rate: json.Number("-15")},
		{Name: "IVA", Rate: json.Number("21.5")},
	})

	assert.False(t, tagged[0].Malformed)
	assert.True(t, tagged[0].Rate.IsNegative())
	assert.Equal(t, "-15", tagged[0].Rate.String())
	assert.Equal(t, "21.5", tagged[1].Rate.String())
}

func TestTagTaxLines_MalformedRateCoercedToZero(t *testing.T) {
	tagged := fiscal.TagTaxLines([]domain.TaxLine{
		{Name: "IRPF", Rate: json.Number("quince")},
		{Name: "IRPF", Rate: json.Number("")},
	})

	for _, line := range tagged {
		assert.True(t, line.Malformed)
		assert.True(t, line.Rate.IsZero())
	}
}

func TestTagTaxLines_Empty(t *testing.T) {
	assert.Empty(t, fiscal.TagTaxLines(nil))
}
