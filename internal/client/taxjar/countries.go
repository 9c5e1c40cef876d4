package taxjar

// Supported country codes (ISO 3166-1 alpha-2)
const (
	UnitedStates  = "US"
	Canada        = "CA"
	Australia     = "AU"
	Austria       = "AT"
	Belgium       = "BE"
	Bulgaria      = "BG"
	Croatia       = "HR"
	Cyprus        = "CY"
	CzechRepublic = "CZ"
	Denmark       = "DK"
	Estonia       = "EE"
	Finland       = "FI"
	France        = "FR"
	Germany       = "DE"
	Greece        = "GR"
	Hungary       = "HU"
	Ireland       = "IE"
	Italy         = "IT"
	Latvia        = "LV"
	Lithuania     = "LT"
	Luxembourg    = "LU"
	Malta         = "MT"
	Netherlands   = "NL"
	Poland        = "PL"
	Portugal      = "PT"
	Romania       = "RO"
	Slovakia      = "SK"
	Slovenia      = "SI"
	Spain         = "ES"
	Sweden        = "SE"
	UnitedKingdom = "GB"
)

// NonEUCountries are the supported countries reported with a combined rate
var NonEUCountries = []string{UnitedStates, Canada, Australia}

// EUCountries are the supported countries reported with a VAT standard rate.
// TaxJar still groups GB with them.
var EUCountries = []string{
	Austria, Belgium, Bulgaria, Croatia, Cyprus, CzechRepublic, Denmark, Estonia, Finland, France, Germany, Greece,
	Hungary, Ireland, Italy, Latvia, Lithuania, Luxembourg, Malta, Netherlands, Poland, Portugal, Romania,
	Slovakia, Slovenia, Spain, Sweden, UnitedKingdom,
}

var (
	euCountrySet  = make(map[string]bool, len(EUCountries))
	allCountrySet = make(map[string]bool, len(NonEUCountries)+len(EUCountries))
)

func init() {
	for _, country := range NonEUCountries {
		allCountrySet[country] = true
	}
	for _, country := range EUCountries {
		euCountrySet[country] = true
		allCountrySet[country] = true
	}
}

// IsValidCountry reports whether country is exactly one of the supported codes.
// Matching is case sensitive and does not trim whitespace.
func IsValidCountry(country string) bool {
	return allCountrySet[country]
}

// IsCountryEu reports whether country is one of the EU codes
func IsCountryEu(country string) bool {
	return euCountrySet[country]
}

// SupportedCountries returns every supported code, non-EU first. The slice is a copy.
func SupportedCountries() []string {
	countries := make([]string, 0, len(NonEUCountries)+len(EUCountries))
	countries = append(countries, NonEUCountries...)
	return append(countries, EUCountries...)
}
