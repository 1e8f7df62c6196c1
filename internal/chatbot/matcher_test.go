package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatcher(t *testing.T) *Matcher {
	t.Helper()
	kb, err := LoadKnowledgeBase("")
	require.NoError(t, err)
	return NewMatcher(kb)
}

func TestMatchSingleKeywords(t *testing.T) {
	m := testMatcher(t)

	cases := map[string]Category{
		"hello there":                    CategoryGreeting,
		"what does it cost":              CategoryPricing,
		"show me your collection":        CategoryCollections,
		"ladies wear":                    CategoryWomen,
		"gents section please":           CategoryMen,
		"will it fit me":                 CategorySizing,
		"do you do pickup":               CategoryDelivery,
		"can I pay by upi":               CategoryPayment,
		"attending a wedding next month": CategoryOccasions,
		"do you offer alteration":        CategoryServices,
		"tell me your story":             CategoryAbout,
		"who is the founder":             CategoryTeam,
		"what are your opening hours":    CategoryContact,
		"qwerty asdf zxcv":               CategoryDefault,
		"":                               CategoryDefault,
	}

	for input, want := range cases {
		assert.Equal(t, want, m.Match(input), "input: %q", input)
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	m := testMatcher(t)

	assert.Equal(t, CategoryGreeting, m.Match("HELLO"))
	assert.Equal(t, CategoryPricing, m.Match("How Much Is A Saree"))
}

// The priority order is fixed: earlier rules always beat later ones no matter
// how the keywords are arranged in the message.
func TestMatchPriorityOrder(t *testing.T) {
	m := testMatcher(t)

	// greeting beats pricing
	assert.Equal(t, CategoryGreeting, m.Match("Hi, how much does a lehnga cost?"))
	// pricing beats collections
	assert.Equal(t, CategoryPricing, m.Match("price of the gown collection"))
	// collections beats women
	assert.Equal(t, CategoryCollections, m.Match("women's dress options"))
	// women beats men ("women" contains "men")
	assert.Equal(t, CategoryWomen, m.Match("women's section"))
	// greeting beats women ("something" contains "hi")
	assert.Equal(t, CategoryGreeting, m.Match("something for ladies"))
}

func TestMatchIsDeterministic(t *testing.T) {
	m := testMatcher(t)

	input := "hey, what's the price of a dress for a wedding?"
	first := m.Match(input)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, m.Match(input))
	}
}

func TestMatchTeamMember(t *testing.T) {
	m := testMatcher(t)

	got := m.Match("who is Sana Irani")
	require.Equal(t, CategoryTeamMember, got)

	member := m.MemberFor("who is Sana Irani")
	require.NotNil(t, member)
	assert.Equal(t, "Sana Irani", member.Name)

	// title substrings match too
	byTitle := m.MemberFor("who is your head stylist")
	require.NotNil(t, byTitle)
	assert.Equal(t, "Sana Irani", byTitle.Name)
}

// A member name loses to any earlier keyword rule: the member check sits just
// before the contact rule.
func TestMatchTeamMemberLosesToEarlierRules(t *testing.T) {
	m := testMatcher(t)

	assert.Equal(t, CategoryGreeting, m.Match("hi Sana Irani"))
	assert.Equal(t, CategoryTeam, m.Match("is Rohan Verma the cto"))
	// "tell me about X" hits the about rule before the member check
	assert.Equal(t, CategoryAbout, m.Match("tell me about Sana Irani"))
}

func TestMemberForUnknownName(t *testing.T) {
	m := testMatcher(t)
	assert.Nil(t, m.MemberFor("tell me about Jane Doe"))
}
