package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer(t *testing.T) (*Composer, *Matcher) {
	t.Helper()
	kb, err := LoadKnowledgeBase("")
	require.NoError(t, err)
	return NewComposer(kb), NewMatcher(kb)
}

var allCategories = []Category{
	CategoryGreeting, CategoryPricing, CategoryCollections, CategoryWomen,
	CategoryMen, CategorySizing, CategoryDelivery, CategoryPayment,
	CategoryOccasions, CategoryServices, CategoryAbout, CategoryTeam,
	CategoryContact, CategoryDefault,
}

// Composition is a pure function of category and knowledge base: two calls
// must produce byte-identical responses.
func TestComposeIsPure(t *testing.T) {
	c, _ := testComposer(t)

	for _, cat := range allCategories {
		first := c.Compose(cat)
		second := c.Compose(cat)
		assert.Equal(t, first, second, "category %s", cat)
	}
}

func TestComposeNeverEmpty(t *testing.T) {
	c, _ := testComposer(t)

	for _, cat := range allCategories {
		resp := c.Compose(cat)
		assert.NotEmpty(t, resp.Content, "category %s", cat)
		assert.NotEmpty(t, resp.QuickReplies, "category %s", cat)
	}
}

func TestComposeSizing(t *testing.T) {
	c, _ := testComposer(t)

	resp := c.Compose(CategorySizing)
	assert.Contains(t, resp.Content, "XS to XXL")
	assert.Contains(t, resp.Content, "S to XXXL")
	assert.Len(t, resp.QuickReplies, 4)
}

func TestComposeGreetingMentionsCompany(t *testing.T) {
	c, _ := testComposer(t)

	resp := c.Compose(CategoryGreeting)
	assert.Contains(t, resp.Content, "VastraRent")
}

func TestComposePricingHasOffers(t *testing.T) {
	c, _ := testComposer(t)

	resp := c.Compose(CategoryPricing)
	assert.Contains(t, resp.Content, "799")
	assert.Contains(t, resp.Content, "14,999")
	assert.Contains(t, resp.Content, "<strong>discount</strong>")
}

func TestComposeCollectionsHasCards(t *testing.T) {
	c, _ := testComposer(t)

	resp := c.Compose(CategoryCollections)
	// one card per collection, both genders
	assert.Len(t, resp.Cards, 8)
	for _, card := range resp.Cards {
		assert.NotEmpty(t, card.Title)
		assert.NotEmpty(t, card.Query)
		assert.Equal(t, ActionShowCategory, card.Action)
	}
}

func TestComposeTeamCards(t *testing.T) {
	c, _ := testComposer(t)

	resp := c.Compose(CategoryTeam)
	assert.Len(t, resp.Cards, 4)
	for _, card := range resp.Cards {
		assert.Equal(t, ActionShowTeam, card.Action)
		assert.Equal(t, card.Title, card.Query)
	}
}

// Every card query must re-match to a non-default category, and team card
// queries must land on the member they advertise.
func TestCardQueriesReMatch(t *testing.T) {
	c, m := testComposer(t)

	for _, cat := range allCategories {
		resp := c.Compose(cat)
		for _, card := range resp.Cards {
			got := m.Match(card.Query)
			assert.NotEqual(t, CategoryDefault, got, "category %s card %q", cat, card.Title)
			if card.Action == ActionShowTeam {
				require.Equal(t, CategoryTeamMember, got, "team card %q", card.Title)
				member := m.MemberFor(card.Query)
				require.NotNil(t, member)
				assert.Equal(t, card.Title, member.Name)
			}
		}
	}
}

// Quick replies are the widget's suggested next messages; each must re-match
// to a non-default category when sent back.
func TestQuickRepliesReMatch(t *testing.T) {
	c, m := testComposer(t)

	for _, cat := range allCategories {
		resp := c.Compose(cat)
		for _, qr := range resp.QuickReplies {
			assert.NotEqual(t, CategoryDefault, m.Match(qr), "category %s quick reply %q", cat, qr)
		}
	}
}

func TestComposeMember(t *testing.T) {
	c, m := testComposer(t)

	member := m.MemberFor("who is Aarav Kapoor")
	require.NotNil(t, member)

	resp := c.ComposeMember(member)
	assert.Contains(t, resp.Content, "Aarav Kapoor")
	assert.Contains(t, resp.Content, "Co-Founder & CEO")
}

func TestComposeTeamMemberWithoutMemberFallsBack(t *testing.T) {
	c, _ := testComposer(t)

	assert.Equal(t, c.Compose(CategoryTeam), c.Compose(CategoryTeamMember))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "799", formatINR(799))
	assert.Equal(t, "1,299", formatINR(1299))
	assert.Equal(t, "14,999", formatINR(14999))
	assert.Equal(t, "1,234,567", formatINR(1234567))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "anarkali-suits", slugify("Anarkali Suits"))
	assert.Equal(t, "kurta-sets", slugify("Kurta Sets"))
	assert.Equal(t, "sherwanis", slugify("Sherwanis"))
}
