package domain

const (
	DefaultAdminID = "admin-1"
	dayMillis      = int64(86400000)
)

func DefaultShopInfo() ShopInfo {
	return ShopInfo{
		Name:         "Mobile Hospital",
		Address:      "Shop No. 12, Main Market Road, Near City Square, New Delhi - 110001",
		Whatsapp:     "919876543210",
		Phone:        "+91 98765-43210",
		GoogleMapURL: "https://www.google.com/maps/search/?api=1&query=Delhi+Main+Market",
	}
}

func DefaultAdmin(name, phone, password string) User {
	return User{
		ID:          DefaultAdminID,
		Name:        name,
		PhoneNumber: phone,
		Password:    password,
		Role:        RoleAdmin,
	}
}

func DefaultBanners() []Banner {
	return []Banner{
		{
			ID:       "1",
			Title:    "Smartphone Dhamaka Sale",
			Subtitle: "Exchange your old phone & get up to ₹10,000 off*",
			Bg:       "bg-gradient-to-r from-blue-700 to-indigo-800",
			Image:    "https://images.unsplash.com/photo-1556656793-062ff987b50c?auto=format&fit=crop&q=80&w=400&h=200",
			Tag:      "BEST OFFERS",
		},
		{
			ID:       "2",
			Title:    "Accessories Bonanza",
			Subtitle: "Premium Covers & Chargers starting @ ₹99 only",
			Bg:       "bg-gradient-to-r from-orange-500 to-red-600",
			Image:    "https://images.unsplash.com/photo-1583394838336-acd977736f90?auto=format&fit=crop&q=80&w=400&h=200",
			Tag:      "FLAT 50% OFF",
		},
		{
			ID:       "3",
			Title:    "Certified Refurbished",
			Subtitle: "7-Point Quality Check Passed on every mobile",
			Bg:       "bg-gradient-to-r from-emerald-600 to-teal-700",
			Image:    "https://images.unsplash.com/photo-1512428559087-560fa5ceab42?auto=format&fit=crop&q=80&w=400&h=200",
			Tag:      "TRUSTED QUALITY",
		},
	}
}

// DefaultProducts is the starter catalog, newest first relative to nowMillis.
func DefaultProducts(nowMillis int64) []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Apple iPhone 13 Pro (Graphite, 128 GB)",
			Price:       45000,
			Condition:   ConditionLikeNew,
			Category:    CategoryMobile,
			Description: "Graphite color, No scratches, with original box. 100% Battery Health.",
			Specs:       Specs{RAM: "6GB", Storage: "128GB"},
			Image:       "https://images.unsplash.com/photo-1632661674596-df8be070a5c5?auto=format&fit=crop&q=80&w=400&h=300",
			CreatedAt:   nowMillis,
		},
		{
			ID:          "2",
			Name:        "SAMSUNG Galaxy S21 Ultra 5G (Phantom Black, 256 GB)",
			Price:       32000,
			Condition:   ConditionGood,
			Category:    CategoryMobile,
			Description: "Phantom Black, slightly used on edges. Stunning camera quality.",
			Specs:       Specs{RAM: "12GB", Storage: "256GB"},
			Image:       "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?auto=format&fit=crop&q=80&w=400&h=300",
			CreatedAt:   nowMillis - dayMillis,
		},
		{
			ID:          "3",
			Name:        "Apple 20W USB-C Power Adapter",
			Price:       1500,
			Condition:   ConditionLikeNew,
			Category:    CategoryAccessories,
			Description: "Original Apple 20W Adapter with 3 months shop warranty.",
			Specs:       Specs{Type: "Type-C"},
			Image:       "https://images.unsplash.com/photo-1619119155257-269c27632644?auto=format&fit=crop&q=80&w=400&h=300",
			CreatedAt:   nowMillis - 2*dayMillis,
		},
		{
			ID:          "4",
			Name:        "Realme Buds Air 3 Neo Bluetooth Headset",
			Price:       2200,
			Condition:   ConditionAverage,
			Category:    CategoryAccessories,
			Description: "Noise cancelling working fine. Compact charging case.",
			Specs:       Specs{Type: "Wireless"},
			Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?auto=format&fit=crop&q=80&w=400&h=300",
			CreatedAt:   nowMillis - 3*dayMillis,
		},
	}
}
