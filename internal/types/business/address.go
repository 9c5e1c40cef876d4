package business

// Address represents a postal address used for tax lookups.
// Every field except PostalCode is optional; blank values are treated as absent.
type Address struct {
	Country       string `json:"country,omitempty"`
	State         string `json:"state,omitempty"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
}

// Customer identifies the buyer a tax lookup is performed for.
// It is accepted by the tax service but does not yet change any result.
type Customer struct {
	ID            string `json:"id,omitempty"`
	ExemptionType string `json:"exemption_type,omitempty"`
}
