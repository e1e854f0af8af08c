package model

// Product is a sellable menu item. Price is a canonical decimal string
// with two fractional digits (numeric column in the DB), never a float.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	CategoryID  string  `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
}
