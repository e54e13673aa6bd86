package catalog

type HomePage struct {
	Store           string   `json:"store"`
	DefaultCategory string   `json:"default_category"`
	Categories      []string `json:"categories"`
	Links           Links    `json:"links"`
}

type Links struct {
	Products string `json:"products"`
	Product  string `json:"product"`
}

// ProductsPage carries the selected category alongside the listing.
type ProductsPage struct {
	Category string    `json:"category"`
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}
