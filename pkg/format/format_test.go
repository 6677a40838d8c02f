package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/commodities-api/pkg/format"
)

func TestMoney_SeparadorDeMiles(t *testing.T) {
	f := format.New("en")
	assert.Equal(t, "1,234,567.00", f.Money(decimal.NewFromInt(1234567)))
	assert.Equal(t, "700.00", f.Money(decimal.NewFromInt(700)))
	assert.Equal(t, "0.50", f.Money(decimal.RequireFromString("0.5")))
}

func TestQuantity_EnterosSinDecimales(t *testing.T) {
	f := format.New("en")
	assert.Equal(t, "1,500", f.Quantity(decimal.NewFromInt(1500)))
	assert.Equal(t, "2.250", f.Quantity(decimal.RequireFromString("2.25")))
}

func TestNew_EtiquetaInvalida_UsaIngles(t *testing.T) {
	f := format.New("!!")
	assert.Equal(t, "12,000", f.Count(12000))
}
