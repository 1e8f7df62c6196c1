package chatbot

import (
	"fmt"
	"regexp"
	"strings"
)

// Composer assembles the reply for a matched category: templated text
// interpolated from the knowledge base, a small set of quick replies, and
// suggestion cards for the browse-style categories. Composition is a pure
// function of category and knowledge base.
type Composer struct {
	kb *KnowledgeBase
}

func NewComposer(kb *KnowledgeBase) *Composer {
	return &Composer{kb: kb}
}

// Compose builds the reply for a category. CategoryTeamMember needs the
// matched member and is served by ComposeMember; calling Compose with it
// falls back to the team overview.
func (c *Composer) Compose(cat Category) Response {
	switch cat {
	case CategoryGreeting:
		return c.greeting()
	case CategoryPricing:
		return c.pricing()
	case CategoryCollections:
		return c.collections()
	case CategoryWomen:
		return c.genderCollection("women", c.kb.Categories.Women)
	case CategoryMen:
		return c.genderCollection("men", c.kb.Categories.Men)
	case CategorySizing:
		return c.sizing()
	case CategoryDelivery:
		return c.delivery()
	case CategoryPayment:
		return c.payment()
	case CategoryOccasions:
		return c.occasions()
	case CategoryServices:
		return c.services()
	case CategoryAbout:
		return c.about()
	case CategoryTeam, CategoryTeamMember:
		return c.team()
	case CategoryContact:
		return c.contact()
	default:
		return c.fallback()
	}
}

// ComposeMember builds the reply for a single team member.
func (c *Composer) ComposeMember(member *TeamMember) Response {
	content := fmt.Sprintf("%s is our %s.\n\n%s.",
		member.Name, member.Title, member.Description)
	return Response{
		Content:      FormatMessage(content),
		QuickReplies: []string{"Meet the Team", "About " + c.kb.Company.Name, "Contact Us"},
	}
}

func (c *Composer) greeting() Response {
	content := fmt.Sprintf(
		"Namaste! Welcome to %s — %s.\n\n"+
			"I can help you browse our collections, check rental prices, plan an outfit "+
			"for your occasion, or arrange delivery. What would you like to do?",
		c.kb.Company.Name, c.kb.Company.Tagline)
	return Response{
		Content:      FormatMessage(content),
		QuickReplies: []string{"View Collections", "Rental Prices", "Wedding Looks", "Contact Us"},
	}
}

func (c *Composer) pricing() Response {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Our rentals range from ₹%s to ₹%s per day depending on the garment and designer.\n\n",
		formatINR(c.kb.Pricing.MinPerDay), formatINR(c.kb.Pricing.MaxPerDay))
	sb.WriteString(c.kb.Pricing.DepositNote + "\n\nCurrent offers:\n")
	for _, offer := range c.kb.Pricing.SpecialOffers {
		sb.WriteString("• " + offer + "\n")
	}
	return Response{
		Content:      FormatMessage(sb.String()),
		QuickReplies: []string{"Women's Wear", "Men's Wear", "Delivery Charges"},
	}
}

func (c *Composer) collections() Response {
	var sb strings.Builder
	sb.WriteString("Here is everything we rent:\n\nFor women:\n")
	for _, col := range c.kb.Categories.Women {
		fmt.Fprintf(&sb, "• %s (₹%s - ₹%s/day)\n", col.Name, formatINR(col.MinPrice), formatINR(col.MaxPrice))
	}
	sb.WriteString("\nFor men:\n")
	for _, col := range c.kb.Categories.Men {
		fmt.Fprintf(&sb, "• %s (₹%s - ₹%s/day)\n", col.Name, formatINR(col.MinPrice), formatINR(col.MaxPrice))
	}
	sb.WriteString("\nTap a card below to explore a collection.")

	cards := append(
		c.collectionCards("women", c.kb.Categories.Women, collectionQuery),
		c.collectionCards("men", c.kb.Categories.Men, collectionQuery)...)

	return Response{
		Content:      FormatMessage(sb.String()),
		QuickReplies: []string{"Women's Wear", "Men's Wear", "Wedding Looks", "Rental Prices"},
		Cards:        cards,
	}
}

func (c *Composer) genderCollection(group string, cols []Collection) Response {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Our %s's collections:\n\n", group)
	for _, col := range cols {
		fmt.Fprintf(&sb, "• %s — %s (₹%s - ₹%s/day)\n",
			col.Name, col.Description, formatINR(col.MinPrice), formatINR(col.MaxPrice))
	}
	sb.WriteString("\nEvery rental includes dry cleaning and a free fitting session.")

	query := func(group string, col Collection) string {
		return fmt.Sprintf("Tell me more about %s's %s", group, col.Name)
	}
	return Response{
		Content:      FormatMessage(sb.String()),
		QuickReplies: []string{"Size Guide", "Rental Prices", "Wedding Looks"},
		Cards:        c.collectionCards(group, cols, query),
	}
}

func (c *Composer) sizing() Response {
	content := fmt.Sprintf(
		"We stock women's sizes %s and men's sizes %s.\n\n%s",
		c.kb.Sizing.WomenRange, c.kb.Sizing.MenRange, c.kb.Sizing.Note)
	return Response{
		Content:      FormatMessage(content),
		QuickReplies: []string{"Book a Fitting", "Women's Wear", "Men's Wear", "Alteration Service"},
	}
}

func (c *Composer) delivery() Response {
	var sb strings.Builder
	sb.WriteString("Delivery and pickup, right to your door:\n\n")
	for _, tier := range c.kb.Pricing.DeliveryTiers {
		fee := "free"
		if tier.Fee > 0 {
			fee = "₹" + formatINR(tier.Fee)
		}
		if tier.MinOrder > 0 {
			fmt.Fprintf(&sb, "• Orders above ₹%s: %s", formatINR(tier.MinOrder), fee)
		} else {
			fmt.Fprintf(&sb, "• All orders: %s", fee)
		}
		if tier.Note != "" {
			fmt.Fprintf(&sb, " (%s)", tier.Note)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nWe deliver a day before your event and pick the outfit up the day after.")
	return Response{
		Content:      FormatMessage(sb.String()),
		// "Payment Options" would re-match the men rule ("payMENt"), so the
		// suggestion is phrased around "pay" instead
		QuickReplies: []string{"Rental Prices", "How to Pay", "Contact Us"},
	}
}

func (c *Composer) payment() Response {
	content := "We accept UPI, all major credit and debit cards, and net banking.\n\n" +
		c.kb.Pricing.DepositNote + "\n" +
		"The deposit is refunded within 48 hours of the garment passing its return check."
	return Response{
		Content:      FormatMessage(content),
		QuickReplies: []string{"Rental Prices", "Delivery Info", "Contact Us"},
	}
}

func (c *Composer) occasions() Response {
	var sb strings.Builder
	sb.WriteString("Whatever the occasion, we have a look for it:\n\n")
	for _, occ := range c.kb.Occasions {
		fmt.Fprintf(&sb, "• %s — %s. Try: %s (₹%s - ₹%s/day)\n",
			occ.Name, occ.Description, strings.Join(occ.RecommendedItems, ", "),
			formatINR(occ.MinPrice), formatINR(occ.MaxPrice))
	}
	return Response{
		Content:      FormatMessage(sb.String()),
		QuickReplies: []string{"Wedding Looks", "Party Wear", "Festival Wear", "Business Formals"},
	}
}

func (c *Composer) services() Response {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Every %s rental comes with full service:\n\n", c.kb.Company.Name)
	for _, svc := range c.kb.Services {
		fmt.Fprintf(&sb, "• %s — %s\n", svc.Name, svc.Description)
	}
	return Response{
		Content:      FormatMessage(sb.String()),
		QuickReplies: []string{"Book a Fitting", "Styling Consultation", "Delivery Info"},
	}
}

func (c *Composer) about() Response {
	content := fmt.Sprintf("%s — %s.\n\n%s\n\nVisit us: %s",
		c.kb.Company.Name, c.kb.Company.Tagline, c.kb.Company.Story, c.kb.Contact.Website)
	return Response{
		Content:      FormatMessage(content),
		QuickReplies: []string{"Meet the Team", "View Collections", "Contact Us"},
		Cards:        c.teamCards(),
	}
}

func (c *Composer) team() Response {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The people behind %s:\n\n", c.kb.Company.Name)
	for _, m := range c.kb.Team {
		fmt.Fprintf(&sb, "• %s, %s\n", m.Name, m.Title)
	}
	sb.WriteString("\nTap a card to learn more about anyone.")
	return Response{
		Content:      FormatMessage(sb.String()),
		QuickReplies: []string{"About " + c.kb.Company.Name, "View Collections", "Contact Us"},
		Cards:        c.teamCards(),
	}
}

func (c *Composer) contact() Response {
	content := fmt.Sprintf("We'd love to hear from you!\n\n"+
		"📍 %s\n📞 %s\n✉️ %s\n🕐 %s",
		c.kb.Contact.Address, c.kb.Contact.Phone, c.kb.Contact.Email, c.kb.Contact.Hours)
	return Response{
		Content:      FormatMessage(content),
		QuickReplies: []string{"Delivery Info", "Rental Prices", "View Collections"},
	}
}

func (c *Composer) fallback() Response {
	content := fmt.Sprintf(
		"I'm not sure I caught that. I can tell you about our collections, rental "+
			"prices, sizing, delivery or payments — or you can call us at %s.",
		c.kb.Contact.Phone)
	return Response{
		Content:      FormatMessage(content),
		QuickReplies: []string{"View Collections", "Rental Prices", "Styling Consultation", "Contact Us"},
	}
}

func collectionQuery(group string, col Collection) string {
	return fmt.Sprintf("Show me the %s collection", col.Name)
}

// collectionCards builds one card per collection in a group. Card queries are
// phrased so the matcher that produced them always recognizes them again.
func (c *Composer) collectionCards(group string, cols []Collection, query func(string, Collection) string) []SuggestionCard {
	cards := make([]SuggestionCard, 0, len(cols))
	for _, col := range cols {
		cards = append(cards, SuggestionCard{
			Title:       col.Name,
			Description: col.Description,
			Price:       fmt.Sprintf("₹%s - ₹%s/day", formatINR(col.MinPrice), formatINR(col.MaxPrice)),
			Image:       fmt.Sprintf("img/%s/%s.jpg", group, slugify(col.Name)),
			Action:      ActionShowCategory,
			Query:       query(group, col),
		})
	}
	return cards
}

func (c *Composer) teamCards() []SuggestionCard {
	cards := make([]SuggestionCard, 0, len(c.kb.Team))
	for _, m := range c.kb.Team {
		cards = append(cards, SuggestionCard{
			Title:       m.Name,
			Description: m.Title,
			Image:       fmt.Sprintf("img/team/%s.jpg", slugify(m.Name)),
			Action:      ActionShowTeam,
			Query:       m.Name,
		})
	}
	return cards
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// formatINR groups a rupee amount with thousands separators.
func formatINR(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
