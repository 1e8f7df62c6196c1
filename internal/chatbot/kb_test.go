package chatbot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnowledgeBaseDefault(t *testing.T) {
	kb, err := LoadKnowledgeBase("")
	require.NoError(t, err)

	assert.Equal(t, "VastraRent", kb.Company.Name)
	assert.NotEmpty(t, kb.Categories.Women)
	assert.NotEmpty(t, kb.Categories.Men)
	assert.NotEmpty(t, kb.Team)
}

func TestLoadKnowledgeBaseFromFile(t *testing.T) {
	kb := DefaultKnowledgeBase()
	kb.Company.Name = "TestRentals"

	raw, err := json.Marshal(kb)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	loaded, err := LoadKnowledgeBase(path)
	require.NoError(t, err)
	assert.Equal(t, "TestRentals", loaded.Company.Name)
	assert.Equal(t, kb.Pricing.MinPerDay, loaded.Pricing.MinPerDay)
}

func TestLoadKnowledgeBaseMissingFile(t *testing.T) {
	_, err := LoadKnowledgeBase(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadKnowledgeBaseRejectsInvalid(t *testing.T) {
	kb := DefaultKnowledgeBase()
	kb.Contact.Phone = ""

	raw, err := json.Marshal(kb)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = LoadKnowledgeBase(path)
	assert.Error(t, err)
}

func TestValidateCatchesBadPriceRange(t *testing.T) {
	kb := DefaultKnowledgeBase()
	kb.Pricing.MaxPerDay = kb.Pricing.MinPerDay - 1
	assert.Error(t, kb.Validate())
}

func TestKBProviderWithoutPath(t *testing.T) {
	p, err := NewKBProvider("")
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "VastraRent", p.Current().Company.Name)
}

func TestKBProviderKeepsSnapshotStable(t *testing.T) {
	p, err := NewKBProvider("")
	require.NoError(t, err)
	defer p.Close()

	first := p.Current()
	second := p.Current()
	assert.Same(t, first, second)
}
