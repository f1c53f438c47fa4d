package domain

// ShopInfo is the singleton contact card of the shop. Whatsapp carries the
// country code (919876543210), Phone is the display/dial form.
type ShopInfo struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Whatsapp     string `json:"whatsapp"`
	Phone        string `json:"phone"`
	GoogleMapURL string `json:"googleMapUrl"`
}
