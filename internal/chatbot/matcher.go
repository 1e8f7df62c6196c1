package chatbot

import "strings"

// Category is one of the fixed conversational topics the matcher can select.
type Category string

const (
	CategoryGreeting    Category = "greeting"
	CategoryPricing     Category = "pricing"
	CategoryCollections Category = "collections"
	CategoryWomen       Category = "women"
	CategoryMen         Category = "men"
	CategorySizing      Category = "sizing"
	CategoryDelivery    Category = "delivery"
	CategoryPayment     Category = "payment"
	CategoryOccasions   Category = "occasions"
	CategoryServices    Category = "services"
	CategoryAbout       Category = "about"
	CategoryTeam        Category = "team"
	CategoryTeamMember  Category = "team_member"
	CategoryContact     Category = "contact"
	CategoryDefault     Category = "default"
)

// categoryRule is one keyword set in the fixed priority list.
type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules is evaluated top to bottom; the first rule with any keyword
// present in the lower-cased input wins. The order is load-bearing: a message
// containing both "hi" and "price" always resolves to greeting. That bias
// almost certainly fell out of sequential checks in the page this replaced
// rather than anyone designing it, but existing widget behavior depends on
// it, so it stays.
var categoryRules = []categoryRule{
	{CategoryGreeting, []string{"hello", "hi", "hey"}},
	{CategoryPricing, []string{"price", "cost", "how much", "rental"}},
	{CategoryCollections, []string{"collection", "category", "outfit", "dress"}},
	{CategoryWomen, []string{"women", "ladies", "girl"}},
	{CategoryMen, []string{"men", "gents", "boy"}},
	{CategorySizing, []string{"size", "fit", "measurement"}},
	{CategoryDelivery, []string{"delivery", "pickup", "address"}},
	{CategoryPayment, []string{"payment", "pay", "card", "upi"}},
	{CategoryOccasions, []string{"wedding", "party", "business", "festival"}},
	{CategoryServices, []string{"service", "alteration", "consultation", "cleaning"}},
	{CategoryAbout, []string{"about", "company", "story"}},
	{CategoryTeam, []string{"team", "founder", "ceo", "cfo", "cto"}},
	// team_member is handled separately: exact name/title substrings
	{CategoryContact, []string{"contact", "phone", "email", "hours"}},
}

// Matcher classifies free-text user messages into a Category. Team-member
// lookups read the knowledge base, so the matcher holds a reference to it.
type Matcher struct {
	kb *KnowledgeBase
}

func NewMatcher(kb *KnowledgeBase) *Matcher {
	return &Matcher{kb: kb}
}

// Match returns the first category whose keyword set hits the lower-cased
// input, in fixed priority order. Team-member name/title matching sits
// between the team and contact rules; CategoryDefault is returned when
// nothing matches.
func (m *Matcher) Match(text string) Category {
	lower := strings.ToLower(text)

	for _, rule := range categoryRules {
		if rule.category == CategoryContact && m.memberFor(lower) != nil {
			return CategoryTeamMember
		}
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return CategoryDefault
}

// MemberFor returns the team member whose name or title appears in the input,
// or nil. Only meaningful when Match returned CategoryTeamMember.
func (m *Matcher) MemberFor(text string) *TeamMember {
	return m.memberFor(strings.ToLower(text))
}

func (m *Matcher) memberFor(lower string) *TeamMember {
	for i := range m.kb.Team {
		member := &m.kb.Team[i]
		if strings.Contains(lower, strings.ToLower(member.Name)) ||
			strings.Contains(lower, strings.ToLower(member.Title)) {
			return member
		}
	}
	return nil
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
