package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"euro", 1234.5, "EUR", "€1,234.50"},
		{"dollar", 5, "USD", "$5.00"},
		{"pound", 99.999, "GBP", "£100.00"},
		{"negative drops sign", -5, "USD", "$5.00"},
		{"lowercase code", 10, "usd", "$10.00"},
		{"unknown code prefixes", 10, "PLN", "PLN 10.00"},
		{"empty defaults to euro", 2.5, "", "€2.50"},
		{"grouping", 1000000, "EUR", "€1,000,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount, tt.currency))
		})
	}
}

func TestCurrencySignSymmetry(t *testing.T) {
	assert.Equal(t, Currency(5, "USD"), Currency(-5, "USD"))
}

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"iso timestamp", "2024-03-05T10:30:00", "5 Mar 2024"},
		{"rfc3339", "2024-03-05T10:30:00Z", "5 Mar 2024"},
		{"date only", "2024-12-01", "1 Dec 2024"},
		{"space separated", "2024-03-05 10:30:00", "5 Mar 2024"},
		{"empty", "", "N/A"},
		{"unparseable passthrough", "yesterday", "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.value))
		})
	}
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, "5 Mar 2024, 10:30", DateTime("2024-03-05T10:30:00"))
	assert.Equal(t, "N/A", DateTime(""))
	assert.Equal(t, "soon", DateTime("soon"))
}

func TestMaskAccount(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"long number", "PL12345678901234", "••••1234"},
		{"eight digits", "12345678", "••••5678"},
		{"four digits unmasked", "1234", "1234"},
		{"short unmasked", "12", "12"},
		{"empty", "", "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskAccount(tt.number))
		})
	}
}

func TestHumanizeType(t *testing.T) {
	assert.Equal(t, "Foreign Currency", HumanizeType("FOREIGN_CURRENCY"))
	assert.Equal(t, "Checking", HumanizeType("CHECKING"))
	assert.Equal(t, "Account", HumanizeType(""))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Completed", Capitalize("COMPLETED"))
	assert.Equal(t, "Pending", Capitalize("pending"))
	assert.Equal(t, "", Capitalize(""))
}

func TestID(t *testing.T) {
	assert.Equal(t, "#42", ID(42))
}
