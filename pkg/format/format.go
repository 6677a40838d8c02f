// Package format formatea cantidades y montos con separador de miles según el idioma.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter imprime números localizados.
type Formatter struct {
	p *message.Printer
}

// New construye un formatter para la etiqueta BCP 47 indicada ("en", "es-CO"...).
// Una etiqueta inválida cae a inglés.
func New(tag string) *Formatter {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.English
	}
	return &Formatter{p: message.NewPrinter(lang)}
}

// Money formatea con dos decimales y separador de miles: 1234567 → "1,234,567.00".
func (f *Formatter) Money(d decimal.Decimal) string {
	return f.p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Quantity formatea sin decimales si el valor es entero, con hasta tres en otro caso.
func (f *Formatter) Quantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return f.p.Sprintf("%d", d.IntPart())
	}
	return f.p.Sprintf("%.3f", d.Round(3).InexactFloat64())
}

// Count formatea un entero con separador de miles.
func (f *Formatter) Count(n int) string {
	return f.p.Sprintf("%d", n)
}
