package settings

// DeliverySetting is the single global configuration document. The admin
// dashboard toggles it; checkout reads it to decide whether the delivery
// charge applies.
type DeliverySetting struct {
	IsFreeDelivery bool `json:"isFreeDelivery"`
}
