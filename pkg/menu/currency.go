package menu

import "strconv"

// Currencies is the fixed currency catalog shared across documents.
var Currencies = []Currency{
	{Code: "SAR", Symbol: "ر.س", Name: "Saudi Riyal", Flag: "🇸🇦"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", Flag: "🇦🇪"},
	{Code: "KWD", Symbol: "د.ك", Name: "Kuwaiti Dinar", Flag: "🇰🇼"},
	{Code: "QAR", Symbol: "ر.ق", Name: "Qatari Riyal", Flag: "🇶🇦"},
	{Code: "BHD", Symbol: "د.ب", Name: "Bahraini Dinar", Flag: "🇧🇭"},
	{Code: "OMR", Symbol: "ر.ع", Name: "Omani Rial", Flag: "🇴🇲"},
	{Code: "EGP", Symbol: "ج.م", Name: "Egyptian Pound", Flag: "🇪🇬"},
	{Code: "JOD", Symbol: "د.أ", Name: "Jordanian Dinar", Flag: "🇯🇴"},
	{Code: "USD", Symbol: "$", Name: "US Dollar", Flag: "🇺🇸"},
	{Code: "EUR", Symbol: "€", Name: "Euro", Flag: "🇪🇺"},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Flag: "🇬🇧"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira", Flag: "🇹🇷"},
}

// DefaultCurrency is used for new projects.
var DefaultCurrency = Currencies[0]

// CurrencyByCode looks up a currency from the catalog.
// Returns DefaultCurrency, false when the code is unknown.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return DefaultCurrency, false
}

// FormatPrice renders the price fragment shared by every renderer: an
// optional "<flag> " prefix when showFlag is set and the currency has a
// flag glyph, then the price, then " <symbol>".
//
// Example: FormatPrice(25, sar, true) == "🇸🇦 25 ر.س".
func FormatPrice(price float64, c Currency, showFlag bool) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if showFlag && c.Flag != "" {
		return c.Flag + " " + s + " " + c.Symbol
	}
	return s + " " + c.Symbol
}
