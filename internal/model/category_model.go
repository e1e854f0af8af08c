package model

// Category groups products on the kiosk menu. Icon is a symbolic icon
// name resolved by the UI, never interpreted here.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
