package catalog

import (
	"errors"
	"slices"
	"sync"
)

const DefaultCategory = "mobiles"

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

// seed is built on first use and never written afterwards.
var seed = sync.OnceValue(func() []Product {
	return []Product{
		{ID: 1, Name: "Samsung Galaxy S24 Ultra", Price: 124999, Rating: 4.5, Image: "/images/samsung-s24.jpg", Category: DefaultCategory},
		{ID: 2, Name: "iPhone 15 Pro Max", Price: 159900, Rating: 4.7, Image: "/images/iphone-15.jpg", Category: DefaultCategory},
		{ID: 3, Name: "OnePlus 12", Price: 64999, Rating: 4.4, Image: "/images/oneplus-12.jpg", Category: DefaultCategory},
		{ID: 4, Name: "Google Pixel 8 Pro", Price: 106999, Rating: 4.6, Image: "/images/pixel-8.jpg", Category: DefaultCategory},
		{ID: 5, Name: "Xiaomi 14 Pro", Price: 79999, Rating: 4.3, Image: "/images/xiaomi-14.jpg", Category: DefaultCategory},
		{ID: 6, Name: "Vivo X100 Pro", Price: 89999, Rating: 4.5, Image: "/images/vivo-x100.jpg", Category: DefaultCategory},
	}
})

// Seed returns a copy of the built-in product set in insertion order.
func Seed() []Product {
	return slices.Clone(seed())
}
