package customer

// Customer is keyed by phone number, which acts as the natural unique
// identifier. The record is upserted on every completed checkout, so it
// always carries the last-known name and address.
type Customer struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PhoneLength is the exact number of digits a phone key has. The checkout
// prefill only fires on full-length input.
const PhoneLength = 10
