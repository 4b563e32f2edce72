// Package catalog holds the demo product data the storefront shows. The
// assistant only cares about spec titles and detail texts; the rest is
// what the product page renders around them.
package catalog

// Spec is one technical specification entry of a product.
type Spec struct {
	Title   string `json:"title"`
	Details string `json:"detailText"`
}

type Product struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Image   string  `json:"image"`
	Specs   []Spec  `json:"specs"`
}

// Demo carries per-demo presentation settings.
type Demo struct {
	Title      string `json:"title"`
	ThemeColor string `json:"themeColor"`
	Welcome    string `json:"welcome"`
}

func MobileShopDemo() Demo {
	return Demo{
		Title:      "Mobile E-Shop Chat",
		ThemeColor: "#3B82F6",
		Welcome:    "Welcome to our mobile shop! Ask about any technical specs.",
	}
}

// MobileShopProduct returns the flagship phone shown by the mobile shop demo.
func MobileShopProduct() Product {
	return Product{
		Name:    "Samsung Galaxy S24 Ultra",
		Price:   1299.99,
		Rating:  4.8,
		Reviews: 152,
		Image:   "/samsung-s24-ultra.jpg",
		Specs: []Spec{
			{
				Title:   "Display",
				Details: "6.8-inch Dynamic AMOLED 2X display with QHD+ resolution (3120 x 1440 pixels), 120Hz refresh rate, and 2600 nits peak brightness.",
			},
			{
				Title:   "Processor & Memory",
				Details: "Powered by Qualcomm Snapdragon 8 Gen 3 with 12GB of RAM and 256GB internal storage (UFS 4.0).",
			},
			{
				Title:   "Camera System",
				Details: "Quad rear cameras featuring a 200MP wide sensor, 50MP periscope telephoto (5x optical zoom), 10MP telephoto (3x optical zoom), and 12MP ultra-wide; 12MP front selfie camera with advanced video capabilities (8K, 4K, Full HD).",
			},
			{
				Title:   "Battery & Charging",
				Details: "Non-removable 5000mAh Li-Ion battery with support for 45W wired fast charging and 15W wireless charging for extended usage.",
			},
			{
				Title:   "Build & Design",
				Details: "Features a premium titanium frame with Corning Gorilla Armor glass on both front and back, and is rated IP68 for dust and water resistance (up to 1.5m for 30 minutes).",
			},
			{
				Title:   "Software & AI Features",
				Details: "Runs Android 14 with One UI 6.1 and includes advanced Galaxy AI functionalities such as Circle to Search, Chat Assist, and real-time translation tools.",
			},
		},
	}
}
