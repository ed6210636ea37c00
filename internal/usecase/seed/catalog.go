package seed

type categoryFixture struct {
	Name  string `validate:"required,max=50"`
	Count int64  `validate:"gte=0"`
}

type productFixture struct {
	Name        string `validate:"required,max=100"`
	Price       float64
	Image       string `validate:"required,url,max=500"`
	Category    string `validate:"required,max=50"`
	Description string
}

var defaultCategories = []categoryFixture{
	{Name: "New Arrivals", Count: 127},
	{Name: "Summer Collection", Count: 89},
	{Name: "Winter Essentials", Count: 93},
	{Name: "Accessories", Count: 154},
}

var defaultProducts = []productFixture{
	{
		Name:        "Classic White Sneakers",
		Price:       89.99,
		Description: "Timeless white sneakers crafted from premium leather. Perfect for layering in any season.",
		Image:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&q=80&w=600",
		Category:    "Outdoor",
	},
	{
		Name:        "Classic T-shirt",
		Price:       89.99,
		Description: "Timeless white t-shirt crafted from premium cotton. Features a comfortable rubber sole and minimalist design that pairs well with any outfit.",
		Image:       "https://images.unsplash.com/photo-1529374255404-311a2a4f1fd9?auto=format&fit=crop&q=80&w=600",
		Category:    "Shoes",
	},
	{
		Name:        "Denim Jacket",
		Price:       129.99,
		Description: "Vintage-inspired denim jacket made from high-quality cotton. Features classic button closures and multiple pockets. Perfect for layering in any season.",
		Image:       "https://images.unsplash.com/photo-1576995853123-5a10305d93c0?auto=format&fit=crop&q=80&w=600",
		Category:    "Outerwear",
	},
	{
		Name:        "Leather Backpack",
		Price:       149.99,
		Description: "Handcrafted leather backpack with spacious compartments. Features adjustable straps and water-resistant lining. Perfect for daily use or travel.",
		Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?auto=format&fit=crop&q=80&w=600",
		Category:    "Accessories",
	},
	{
		Name:        "Black T-Shirt",
		Price:       19.99,
		Description: "Timeless black t-shirt crafted from premium cotton. Features a comfortable rubber sole and minimalist design that pairs well with any outfit.",
		Image:       "https://images.unsplash.com/photo-1503341455253-b2e723bb3dbb?auto=format&fit=crop&q=80&w=600",
		Category:    "Outdoor",
	},
	{
		Name:        "Jeans",
		Price:       149.99,
		Description: "Handcrafted jeans with spacious compartments. Features adjustable straps and water-resistant lining. Perfect for daily use or travel.",
		Image:       "https://images.unsplash.com/photo-1548883354-7622d03aca27",
		Category:    "Outdoor",
	},
	{
		Name:        "Training shoes",
		Price:       99.99,
		Description: "Handcrafted leather training shoes. Perfect for daily use or travel.",
		Image:       "https://images.unsplash.com/photo-1491553895911-0055eca6402d?auto=format&fit=crop&q=80&w=600",
		Category:    "Accessories",
	},
	{
		Name:        "Shoes",
		Price:       149.99,
		Description: "Handcrafted leather shoes. Perfect for daily use or work.",
		Image:       "https://images.unsplash.com/photo-1449505278894-297fdb3edbc1?auto=format&fit=crop&q=80&w=600",
		Category:    "Accessories",
	},
}
