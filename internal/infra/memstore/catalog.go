package memstore

import (
	"github.com/shopspring/decimal"

	"storefront-api/internal/domain/catalog"
)

// NewSeedCatalog builds the fixed demo catalog. The catalog is read-only
// configuration external to the cart core; it is loaded once at startup
// and never mutated.
func NewSeedCatalog() *catalog.Catalog {
	return catalog.NewCatalog(seedProducts())
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Price:       price("99.99"),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
			Description: "High-quality wireless headphones with noise cancellation",
			Brand:       "AudioMax",
			Category:    "Electronics",
			InStock:     true, StockQuantity: 50,
			Features: []string{
				"Active Noise Cancellation",
				"30-hour battery life",
				"Bluetooth 5.0",
				"Built-in microphone",
				"Comfortable over-ear design",
			},
			Specifications: map[string]string{
				"Battery Life": "30 hours",
				"Connectivity": "Bluetooth 5.0",
				"Weight":       "250g",
				"Color":        "Black",
				"Warranty":     "2 years",
			},
			Rating: 4.5, ReviewCount: 128,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Price:       price("699.99"),
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500&h=500&fit=crop",
			Description: "Latest smartphone with advanced camera and performance",
			Brand:       "TechPhone",
			Category:    "Electronics",
			InStock:     true, StockQuantity: 25,
			Features: []string{
				"6.7-inch OLED Display",
				"Triple Camera System",
				"5G Connectivity",
				"128GB Storage",
				"Face Recognition",
			},
			Specifications: map[string]string{
				"Screen Size": "6.7 inches",
				"Storage":     "128GB",
				"RAM":         "8GB",
				"Camera":      "48MP + 12MP + 8MP",
				"Battery":     "4500mAh",
			},
			Rating: 4.3, ReviewCount: 89,
		},
		{
			ID:          "3",
			Name:        "Laptop",
			Price:       price("1299.99"),
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=500&fit=crop",
			Description: "Powerful gaming laptop with high-end graphics",
			Brand:       "GamePro",
			Category:    "Electronics",
			InStock:     true, StockQuantity: 15,
			Features: []string{
				"Intel i7 Processor",
				"16GB RAM",
				"1TB SSD",
				"NVIDIA RTX 4060",
				"15.6-inch 144Hz Display",
			},
			Specifications: map[string]string{
				"Processor": "Intel Core i7-13700H",
				"Graphics":  "NVIDIA RTX 4060 8GB",
				"RAM":       "16GB DDR5",
				"Storage":   "1TB NVMe SSD",
				"Display":   "15.6\" 144Hz IPS",
			},
			Rating: 4.7, ReviewCount: 67,
		},
		{
			ID:          "4",
			Name:        "Smart Watch",
			Price:       price("249.99"),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
			Description: "Feature-rich smartwatch with health monitoring",
			Brand:       "FitTech",
			Category:    "Wearables",
			InStock:     true, StockQuantity: 100,
			Features: []string{
				"Heart Rate Monitor",
				"Sleep Tracking",
				"GPS",
				"Water Resistant",
				"7-day battery life",
			},
			Specifications: map[string]string{
				"Display":          "1.3-inch AMOLED",
				"Battery":          "7 days",
				"Water Resistance": "5 ATM",
				"Connectivity":     "Bluetooth 5.2",
				"Compatibility":    "iOS & Android",
			},
			Rating: 4.2, ReviewCount: 203,
		},
		{
			ID:          "5",
			Name:        "Tablet",
			Price:       price("449.99"),
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=500&h=500&fit=crop",
			Description: "10-inch tablet perfect for work and entertainment",
			Brand:       "TabPlus",
			Category:    "Electronics",
			InStock:     true, StockQuantity: 30,
			Features: []string{
				"10-inch Retina Display",
				"64GB Storage",
				"8MP Camera",
				"All-day battery",
				"Stylus Support",
			},
			Specifications: map[string]string{
				"Screen Size": "10.1 inches",
				"Storage":     "64GB",
				"RAM":         "4GB",
				"Camera":      "8MP Rear, 5MP Front",
				"Battery":     "7000mAh",
			},
			Rating: 4.4, ReviewCount: 156,
		},
		{
			ID:          "6",
			Name:        "Camera",
			Price:       price("799.99"),
			Image:       "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=500&h=500&fit=crop",
			Description: "Professional DSLR camera for photography enthusiasts",
			Brand:       "PhotoPro",
			Category:    "Electronics",
			InStock:     true, StockQuantity: 20,
			Features: []string{
				"24.2MP Full Frame Sensor",
				"4K Video Recording",
				"5-Axis Image Stabilization",
				"Wi-Fi & Bluetooth",
				"Weather-Sealed Body",
			},
			Specifications: map[string]string{
				"Sensor":       "24.2MP Full Frame",
				"Video":        "4K at 30fps",
				"ISO Range":    "100-51200",
				"Autofocus":    "693-point phase detection",
				"Connectivity": "Wi-Fi, Bluetooth",
			},
			Rating: 4.6, ReviewCount: 89,
		},
		{
			ID:          "7",
			Name:        "Gaming Console",
			Price:       price("499.99"),
			Image:       "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=500&h=500&fit=crop",
			Description: "Next-gen gaming console with 4K gaming support",
			Brand:       "GameBox",
			Category:    "Electronics",
			InStock:     true, StockQuantity: 35,
			Features: []string{
				"4K Gaming at 120fps",
				"1TB SSD Storage",
				"Ray Tracing Support",
				"Backward Compatibility",
				"8K Media Support",
			},
			Specifications: map[string]string{
				"Storage":                "1TB SSD",
				"Resolution":             "4K at 120Hz",
				"Backward Compatibility": "Yes",
				"Controller":             "Wireless with haptic feedback",
				"Media":                  "8K video playback",
			},
			Rating: 4.8, ReviewCount: 234,
		},
		{
			ID:          "8",
			Name:        "Bluetooth Speaker",
			Price:       price("89.99"),
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&h=500&fit=crop",
			Description: "Portable Bluetooth speaker with crystal clear sound",
			Brand:       "SoundWave",
			Category:    "Electronics",
			InStock:     true, StockQuantity: 75,
			Features: []string{
				"360° Surround Sound",
				"24-hour Battery Life",
				"IPX7 Waterproof",
				"PartySync Technology",
				"Built-in Microphone",
			},
			Specifications: map[string]string{
				"Battery":      "24 hours",
				"Waterproof":   "IPX7",
				"Connectivity": "Bluetooth 5.0",
				"Drivers":      "Dual 10W",
				"Weight":       "0.9kg",
			},
			Rating: 4.3, ReviewCount: 167,
		},
	}
}
