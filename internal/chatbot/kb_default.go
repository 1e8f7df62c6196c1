package chatbot

// DefaultKnowledgeBase returns the compiled-in store data. Deployments that
// want their own copy point KNOWLEDGE_BASE_PATH at a JSON file with the same
// shape.
func DefaultKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		Company: Company{
			Name:    "VastraRent",
			Tagline: "Designer fashion on rent, for every occasion",
			Story: "VastraRent started in 2019 with a simple idea: nobody should have to buy a " +
				"designer outfit they will wear once. We curate premium ethnic and western wear " +
				"from leading designers and rent it at a fraction of the retail price, complete " +
				"with fitting, cleaning and doorstep delivery.",
			Founded: 2019,
		},
		Contact: Contact{
			Phone:   "+91 98200 14455",
			Email:   "hello@vastrarent.in",
			Address: "2nd Floor, Laxmi Plaza, Linking Road, Bandra West, Mumbai 400050",
			Hours:   "Mon-Sat 10:30 AM - 8:30 PM, Sun 11 AM - 6 PM",
			Website: "https://vastrarent.in",
		},
		Pricing: Pricing{
			MinPerDay:   799,
			MaxPerDay:   14999,
			DepositNote: "A refundable deposit of 20% of the garment's retail value applies to every rental.",
			SpecialOffers: []string{
				"Flat 15% discount on your first rental",
				"Rent 3 outfits, get the 4th free",
				"Wedding-season offer: free styling consultation with every bridal rental",
			},
			DeliveryTiers: []DeliveryTier{
				{MinOrder: 0, Fee: 199, Note: "standard delivery within Mumbai"},
				{MinOrder: 3000, Fee: 99},
				{MinOrder: 6000, Fee: 0, Note: "free delivery and pickup"},
			},
		},
		Categories: Categories{
			Women: []Collection{
				{Name: "Lehngas", Description: "Bridal and festive lehngas from designers like Kalki and Vvani", MinPrice: 2499, MaxPrice: 14999},
				{Name: "Sarees", Description: "Banarasi, Kanjeevaram and contemporary drape sarees", MinPrice: 1299, MaxPrice: 7999},
				{Name: "Gowns", Description: "Evening and cocktail gowns for receptions and galas", MinPrice: 1799, MaxPrice: 8999},
				{Name: "Anarkali Suits", Description: "Floor-length anarkalis for sangeets and festive evenings", MinPrice: 1499, MaxPrice: 6499},
			},
			Men: []Collection{
				{Name: "Sherwanis", Description: "Groom and groomsmen sherwanis with stoles and safas", MinPrice: 2999, MaxPrice: 12999},
				{Name: "Tuxedos", Description: "Slim-fit tuxedos and three-piece suits", MinPrice: 1999, MaxPrice: 8499},
				{Name: "Kurta Sets", Description: "Silk and chikankari kurta sets for festive wear", MinPrice: 999, MaxPrice: 3999},
				{Name: "Bandhgalas", Description: "Jodhpuri bandhgalas for cocktails and receptions", MinPrice: 1799, MaxPrice: 7499},
			},
		},
		Occasions: []Occasion{
			{
				Name:             "Wedding",
				Description:      "Bridal wear, groom wear and family outfits for every ceremony",
				RecommendedItems: []string{"Lehngas", "Sherwanis", "Sarees"},
				MinPrice:         2499, MaxPrice: 14999,
			},
			{
				Name:             "Party",
				Description:      "Cocktail gowns, tuxedos and indo-western looks for evenings out",
				RecommendedItems: []string{"Gowns", "Tuxedos", "Bandhgalas"},
				MinPrice:         1499, MaxPrice: 8999,
			},
			{
				Name:             "Business",
				Description:      "Sharp formal suits for conferences, interviews and corporate events",
				RecommendedItems: []string{"Tuxedos", "Bandhgalas"},
				MinPrice:         1299, MaxPrice: 5999,
			},
			{
				Name:             "Festival",
				Description:      "Festive ethnic wear for Diwali, Navratri, Eid and more",
				RecommendedItems: []string{"Anarkali Suits", "Kurta Sets", "Sarees"},
				MinPrice:         999, MaxPrice: 6499,
			},
		},
		Services: []Service{
			{Name: "Fitting & Alteration", Description: "In-store fitting with complimentary alteration on every rental"},
			{Name: "Styling Consultation", Description: "One-on-one session with our stylists to plan your full look"},
			{Name: "Dry Cleaning", Description: "Professional cleaning included, garments arrive fresh and pressed"},
			{Name: "Doorstep Delivery & Pickup", Description: "Scheduled delivery before your event and pickup after it"},
		},
		Team: []TeamMember{
			{Name: "Aarav Kapoor", Title: "Co-Founder & CEO", Description: "Former buyer at a leading fashion house, started VastraRent to make designer wear accessible"},
			{Name: "Diya Sharma", Title: "Co-Founder & CFO", Description: "Chartered accountant keeping rentals affordable and deposits fair"},
			{Name: "Rohan Verma", Title: "CTO", Description: "Builds the tech that keeps ten thousand garments moving across the city"},
			{Name: "Sana Irani", Title: "Head Stylist", Description: "Styled over 400 weddings, leads the consultation studio"},
		},
		Sizing: Sizing{
			WomenRange: "XS to XXL",
			MenRange:   "S to XXXL",
			Note:       "Every rental includes a free fitting session, and our tailors handle minor alterations on the spot.",
		},
	}
}
