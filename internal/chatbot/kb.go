package chatbot

import (
	"encoding/json"
	"fmt"
	"os"
)

// KnowledgeBase is the static store-and-company data every reply is composed
// from. It is loaded once at startup, validated once, and treated as
// immutable afterwards.
type KnowledgeBase struct {
	Company    Company      `json:"company"`
	Contact    Contact      `json:"contact"`
	Pricing    Pricing      `json:"pricing"`
	Categories Categories   `json:"categories"`
	Occasions  []Occasion   `json:"occasions"`
	Services   []Service    `json:"services"`
	Team       []TeamMember `json:"team"`
	Sizing     Sizing       `json:"sizing"`
}

type Company struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Story   string `json:"story"`
	Founded int    `json:"founded"`
}

type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
	Website string `json:"website,omitempty"`
}

type Pricing struct {
	MinPerDay     int            `json:"min_per_day"`
	MaxPerDay     int            `json:"max_per_day"`
	DepositNote   string         `json:"deposit_note"`
	SpecialOffers []string       `json:"special_offers"`
	DeliveryTiers []DeliveryTier `json:"delivery_tiers"`
}

// DeliveryTier describes the delivery fee above a given order value.
type DeliveryTier struct {
	MinOrder int    `json:"min_order"`
	Fee      int    `json:"fee"`
	Note     string `json:"note,omitempty"`
}

type Categories struct {
	Women []Collection `json:"women"`
	Men   []Collection `json:"men"`
}

type Collection struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MinPrice    int    `json:"min_price"`
	MaxPrice    int    `json:"max_price"`
}

type Occasion struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	RecommendedItems []string `json:"recommended_items"`
	MinPrice         int      `json:"min_price"`
	MaxPrice         int      `json:"max_price"`
}

type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TeamMember struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

type Sizing struct {
	WomenRange string `json:"women_range"`
	MenRange   string `json:"men_range"`
	Note       string `json:"note"`
}

// LoadKnowledgeBase reads and validates a knowledge base JSON file. An empty
// path returns the compiled-in default.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	if path == "" {
		kb := DefaultKnowledgeBase()
		if err := kb.Validate(); err != nil {
			return nil, fmt.Errorf("default knowledge base invalid: %w", err)
		}
		return kb, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var kb KnowledgeBase
	if err := json.Unmarshal(raw, &kb); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}

	if err := kb.Validate(); err != nil {
		return nil, fmt.Errorf("knowledge base %s invalid: %w", path, err)
	}
	return &kb, nil
}

// Validate checks every field the composer interpolates. Validation happens
// once here so the composer can read fields without defensive checks.
func (kb *KnowledgeBase) Validate() error {
	if kb.Company.Name == "" {
		return fmt.Errorf("company.name is required")
	}
	if kb.Contact.Phone == "" || kb.Contact.Email == "" {
		return fmt.Errorf("contact.phone and contact.email are required")
	}
	if kb.Contact.Address == "" || kb.Contact.Hours == "" {
		return fmt.Errorf("contact.address and contact.hours are required")
	}
	if kb.Pricing.MinPerDay <= 0 || kb.Pricing.MaxPerDay < kb.Pricing.MinPerDay {
		return fmt.Errorf("pricing range ₹%d-₹%d is not sane", kb.Pricing.MinPerDay, kb.Pricing.MaxPerDay)
	}
	if len(kb.Categories.Women) == 0 || len(kb.Categories.Men) == 0 {
		return fmt.Errorf("both women's and men's categories are required")
	}
	for _, group := range [][]Collection{kb.Categories.Women, kb.Categories.Men} {
		for _, c := range group {
			if c.Name == "" {
				return fmt.Errorf("category with empty name")
			}
			if c.MinPrice <= 0 || c.MaxPrice < c.MinPrice {
				return fmt.Errorf("category %s has bad price range", c.Name)
			}
		}
	}
	for _, o := range kb.Occasions {
		if o.Name == "" {
			return fmt.Errorf("occasion with empty name")
		}
	}
	for _, s := range kb.Services {
		if s.Name == "" {
			return fmt.Errorf("service with empty name")
		}
	}
	if len(kb.Team) == 0 {
		return fmt.Errorf("team must have at least one member")
	}
	for _, m := range kb.Team {
		if m.Name == "" || m.Title == "" {
			return fmt.Errorf("team member needs name and title")
		}
	}
	if kb.Sizing.WomenRange == "" || kb.Sizing.MenRange == "" {
		return fmt.Errorf("sizing ranges are required")
	}
	return nil
}
