package catalog

var defaultHotels = []Hotel{
	// Marrakech
	{
		ID:        "h1",
		Name:      "Riad Jasmine",
		City:      "Marrakech",
		Rating:    4.8,
		Price:     85,
		RoomTypes: map[string]float64{"Standard": 85, "Suite": 150, "Royal Riad": 300},
		Amenities: []string{"pool", "breakfast", "wifi", "quiet", "spa"},
		Context:   "A peaceful oasis in the medina with a beautiful courtyard pool.",
		ImageURL:  "https://images.unsplash.com/photo-1560625699-703993169cdb?w=600&q=80",
	},
	{
		ID:        "h2",
		Name:      "Hotel Sofitel",
		City:      "Marrakech",
		Rating:    4.5,
		Price:     250,
		RoomTypes: map[string]float64{"Standard": 250, "Deluxe": 350, "Royal Suite": 800},
		Amenities: []string{"pool", "spa", "luxury", "bar", "gym", "concierge"},
		Context:   "Luxury hotel with modern amenities and a large swimming pool.",
		ImageURL:  "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=600&q=80",
	},
	{
		ID:        "h3",
		Name:      "Medina Hostel",
		City:      "Marrakech",
		Rating:    4.0,
		Price:     25,
		RoomTypes: map[string]float64{"Dorm Bed": 25, "Private Room": 45},
		Amenities: []string{"wifi", "rooftop", "social events"},
		Context:   "Budget-friendly hostel near the main square.",
		ImageURL:  "https://images.unsplash.com/photo-1520277739536-ea77c3e80353?w=600&q=80",
	},
	// Paris
	{
		ID:        "h4",
		Name:      "Le Meurice",
		City:      "Paris",
		Rating:    4.9,
		Price:     800,
		RoomTypes: map[string]float64{"Superior Room": 800, "Deluxe Suite": 1500, "Penthouse": 5000},
		Amenities: []string{"luxury", "spa", "michelin dining", "view", "bar"},
		Context:   "Historic palace hotel with views of the Tuileries Garden.",
		ImageURL:  "https://images.unsplash.com/photo-1565031491318-aef52749e30d?w=600&q=80",
	},
	{
		ID:        "h5",
		Name:      "Mama Shelter Paris East",
		City:      "Paris",
		Rating:    4.2,
		Price:     120,
		RoomTypes: map[string]float64{"Medium Mama": 120, "Large Mama": 160, "XXL Mama": 250},
		Amenities: []string{"rooftop", "bar", "modern", "wifi", "design"},
		Context:   "Hip and trendy hotel with a lively rooftop bar.",
		ImageURL:  "https://images.unsplash.com/photo-1550586678-f7b23d9b43e7?w=600&q=80",
	},
	// Tokyo
	{
		ID:        "h6",
		Name:      "Park Hyatt Tokyo",
		City:      "Tokyo",
		Rating:    4.8,
		Price:     600,
		RoomTypes: map[string]float64{"Park Room": 600, "Park Suite": 1200, "Governor Suite": 2500},
		Amenities: []string{"luxury", "pool", "view", "jazz bar", "gym", "spa"},
		Context:   "Iconic luxury hotel with stunning views of the city skyline.",
		ImageURL:  "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=600&q=80",
	},
	{
		ID:        "h7",
		Name:      "Shibuya Stream Excel",
		City:      "Tokyo",
		Rating:    4.4,
		Price:     180,
		RoomTypes: map[string]float64{"Single": 180, "Double": 220, "Corner Twin": 300},
		Amenities: []string{"modern", "wifi", "convenient", "river view"},
		Context:   "Directly connected to Shibuya Station with modern design.",
		ImageURL:  "https://images.unsplash.com/photo-1503899036084-c55cdd92da26?w=600&q=80",
	},
	// New York
	{
		ID:        "h8",
		Name:      "The Plaza",
		City:      "New York",
		Rating:    4.7,
		Price:     950,
		RoomTypes: map[string]float64{"Plaza Room": 950, "Signature Suite": 2000, "Royal Suite": 10000},
		Amenities: []string{"luxury", "afternoon tea", "central park view", "spa", "butler"},
		Context:   "Legendary hotel at the edge of Central Park.",
		ImageURL:  "https://images.unsplash.com/photo-1562133567-b6a0a9c7cd3d?w=600&q=80",
	},
	{
		ID:        "h9",
		Name:      "Ace Hotel New York",
		City:      "New York",
		Rating:    4.3,
		Price:     250,
		RoomTypes: map[string]float64{"Small": 250, "Medium": 350, "Loft Suite": 600},
		Amenities: []string{"trendy", "bar", "coffee shop", "wifi", "live music"},
		Context:   "Cool, retro-chic hotel in Midtown Manhattan.",
		ImageURL:  "https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?w=600&q=80",
	},
	// London
	{
		ID:        "h10",
		Name:      "The Savoy",
		City:      "London",
		Rating:    4.8,
		Price:     700,
		RoomTypes: map[string]float64{"Superior Queen": 700, "River View Deluxe": 1100, "Personality Suite": 2500},
		Amenities: []string{"luxury", "history", "river view", "bar", "pool"},
		Context:   "Famous historic luxury hotel on the Strand.",
		ImageURL:  "https://images.unsplash.com/photo-1565329921943-7e5350447b08?w=600&q=80",
	},
}
