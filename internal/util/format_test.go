package util

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₹0"},
		{"small", 500, "₹500"},
		{"thousands", 1250, "₹1,250"},
		{"lakh grouping", 123456, "₹1,23,456"},
		{"crore grouping", 12345678, "₹1,23,45,678"},
		{"rounds paise", 999.5, "₹1,000"},
		{"negative", -1, "—"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.amount); got != tt.want {
				t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatPlanDuration(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{30, "1 Month"},
		{90, "3 Months"},
		{180, "6 Months"},
		{365, "1 Year"},
		{45, "45 Days"},
	}
	for _, tt := range tests {
		if got := FormatPlanDuration(tt.days); got != tt.want {
			t.Errorf("FormatPlanDuration(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestFormatOptional(t *testing.T) {
	if got := FormatOptional(nil); got != "—" {
		t.Errorf("FormatOptional(nil) = %q, want dash", got)
	}
	empty := ""
	if got := FormatOptional(&empty); got != "—" {
		t.Errorf("FormatOptional(empty) = %q, want dash", got)
	}
	v := "front desk"
	if got := FormatOptional(&v); got != "front desk" {
		t.Errorf("FormatOptional = %q", got)
	}
}
