package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makeupstudio/internal/domain"
)

var testCatalog = []domain.Service{
	{ID: 1, Name: "Maquillaje Social - Estilo Natural", Price: 200, Duration: 90, Category: domain.CategorySocial, IsActive: true},
	{ID: 2, Name: "Maquillaje de Novia", Price: 550, Duration: 150, Category: domain.CategoryBridal, IsActive: true},
	{ID: 3, Name: "Maquillaje Piel Madura", Price: 230, Duration: 100, Category: domain.CategoryMatureSkin, IsActive: true},
	{ID: 4, Name: "Peinado Ondas", Price: 120, Duration: 60, Category: domain.CategoryHairstyle, IsActive: true},
	{ID: 5, Name: "Clase de Automaquillaje", Price: 180, Duration: 120, Category: domain.CategoryOther, IsActive: true},
}

func TestValidateSelection_OnlyHairstyle(t *testing.T) {
	r := ValidateSelection(map[int64]int{4: 1}, testCatalog)

	require.NotNil(t, r)
	assert.Equal(t, MsgOnlyHairstyle, r.Message)
	assert.Equal(t, SuggestOnlyHairstyle, r.Suggestion)
}

func TestValidateSelection_BridalWithSocial(t *testing.T) {
	r := ValidateSelection(map[int64]int{2: 1, 1: 1}, testCatalog)

	require.NotNil(t, r)
	assert.Equal(t, MsgBridalMix, r.Message)
}

func TestValidateSelection_BridalWithMatureSkin(t *testing.T) {
	r := ValidateSelection(map[int64]int{2: 1, 3: 1}, testCatalog)

	require.NotNil(t, r)
	assert.Equal(t, MsgBridalMix, r.Message)
}

func TestValidateSelection_HairstyleWithBridalAccepted(t *testing.T) {
	// the pair {hairstyle, bridal} passes the pair rule even though bridal is
	// otherwise exclusive
	assert.Nil(t, ValidateSelection(map[int64]int{4: 1, 2: 1}, testCatalog))
}

func TestValidateSelection_ThreeCategories(t *testing.T) {
	r := ValidateSelection(map[int64]int{2: 1, 1: 1, 4: 1}, testCatalog)

	require.NotNil(t, r)
	// the bridal+social clash outranks the category-count rule
	assert.Equal(t, MsgBridalMix, r.Message)
}

func TestValidateSelection_ThreeCategoriesWithoutBridal(t *testing.T) {
	r := ValidateSelection(map[int64]int{1: 1, 3: 1, 4: 1}, testCatalog)

	require.NotNil(t, r)
	assert.Equal(t, MsgTooManyCategories, r.Message)
}

func TestValidateSelection_PairWithoutHairstyle(t *testing.T) {
	r := ValidateSelection(map[int64]int{1: 1, 3: 1}, testCatalog)

	require.NotNil(t, r)
	assert.Equal(t, MsgInvalidCategoryPair, r.Message)
}

func TestValidateSelection_HairstyleWithOtherRejected(t *testing.T) {
	r := ValidateSelection(map[int64]int{4: 1, 5: 1}, testCatalog)

	require.NotNil(t, r)
	assert.Equal(t, MsgInvalidCategoryPair, r.Message)
}

func TestValidateSelection_SingleMakeupCategoryAccepted(t *testing.T) {
	assert.Nil(t, ValidateSelection(map[int64]int{1: 2}, testCatalog))
	assert.Nil(t, ValidateSelection(map[int64]int{2: 1}, testCatalog))
	assert.Nil(t, ValidateSelection(map[int64]int{4: 1, 1: 1}, testCatalog))
	assert.Nil(t, ValidateSelection(map[int64]int{4: 1, 3: 1}, testCatalog))
}

func TestValidateSelection_EmptyAndZeroQuantity(t *testing.T) {
	// emptiness is handled upstream as a required-field check
	assert.Nil(t, ValidateSelection(map[int64]int{}, testCatalog))
	assert.Nil(t, ValidateSelection(nil, testCatalog))

	// a hairstyle-only selection where the hairstyle quantity is zeroed out
	// collapses to an empty selection
	assert.Nil(t, ValidateSelection(map[int64]int{4: 0, 1: -1}, testCatalog))
}

func TestValidateSelection_UnknownIDsIgnored(t *testing.T) {
	assert.Nil(t, ValidateSelection(map[int64]int{999: 1, 1: 1}, testCatalog))
}

func TestRejectionStringsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, rule := range selectionRules {
		assert.False(t, seen[rule.rejection.Message], "duplicate message %q", rule.rejection.Message)
		assert.False(t, seen[rule.rejection.Suggestion], "duplicate suggestion %q", rule.rejection.Suggestion)
		assert.NotEqual(t, rule.rejection.Message, rule.rejection.Suggestion)
		seen[rule.rejection.Message] = true
		seen[rule.rejection.Suggestion] = true
	}
}
