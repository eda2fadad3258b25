package pricing

import "makeupstudio/internal/domain"

// Rejection explains why a service combination cannot be booked. It is an
// expected outcome of user interaction, not a fault; both strings are stable
// and user-facing.
type Rejection struct {
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

const (
	MsgOnlyHairstyle        = "only a hairstyle was selected; a makeup service must accompany any hairstyle booking."
	MsgBridalMix            = "bridal services cannot be combined with social or mature-skin services."
	MsgTooManyCategories    = "at most two distinct service categories may be combined."
	MsgInvalidCategoryPair  = "only a hairstyle may be combined with one makeup category."
	SuggestOnlyHairstyle    = "add a social, bridal or mature-skin makeup service to book the hairstyle."
	SuggestBridalMix        = "book the bridal package on its own, or pick either social or mature-skin makeup instead."
	SuggestTooManyCats      = "keep the selection to one makeup category, optionally with a hairstyle."
	SuggestInvalidCatPair   = "pair the hairstyle with a single makeup category, or book the categories separately."
)

type categorySet map[domain.ServiceCategory]bool

func (s categorySet) has(c domain.ServiceCategory) bool { return s[c] }

func (s categorySet) hasAny(cats ...domain.ServiceCategory) bool {
	for _, c := range cats {
		if s[c] {
			return true
		}
	}
	return false
}

// selectionRule maps a predicate over the distinct-category set to the
// rejection it produces. Rules are evaluated in order; the first match wins,
// so precedence is the slice order.
type selectionRule struct {
	matches   func(cats categorySet) bool
	rejection Rejection
}

var selectionRules = []selectionRule{
	{
		matches: func(cats categorySet) bool {
			return len(cats) == 1 && cats.has(domain.CategoryHairstyle)
		},
		rejection: Rejection{Message: MsgOnlyHairstyle, Suggestion: SuggestOnlyHairstyle},
	},
	{
		matches: func(cats categorySet) bool {
			return cats.has(domain.CategoryBridal) &&
				cats.hasAny(domain.CategorySocial, domain.CategoryMatureSkin)
		},
		rejection: Rejection{Message: MsgBridalMix, Suggestion: SuggestBridalMix},
	},
	{
		matches: func(cats categorySet) bool {
			return len(cats) > 2
		},
		rejection: Rejection{Message: MsgTooManyCategories, Suggestion: SuggestTooManyCats},
	},
	{
		// two categories are only bookable as hairstyle + one makeup category;
		// hairstyle + bridal is deliberately allowed here, matching the
		// documented accept case.
		matches: func(cats categorySet) bool {
			if len(cats) != 2 {
				return false
			}
			return !(cats.has(domain.CategoryHairstyle) &&
				cats.hasAny(domain.CategorySocial, domain.CategoryMatureSkin, domain.CategoryBridal))
		},
		rejection: Rejection{Message: MsgInvalidCategoryPair, Suggestion: SuggestInvalidCatPair},
	},
}

// ValidateSelection gates a (serviceID -> quantity) selection against the
// catalog's category combination rules. A nil result means the selection is
// bookable. Entries with quantity <= 0 are ignored; an empty selection is not
// itself invalid (required-field checks are the caller's concern).
func ValidateSelection(selection map[int64]int, catalog []domain.Service) *Rejection {
	byID := make(map[int64]domain.ServiceCategory, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc.Category
	}

	cats := make(categorySet)
	for id, qty := range selection {
		if qty <= 0 {
			continue
		}
		if cat, ok := byID[id]; ok {
			cats[cat] = true
		}
	}
	if len(cats) == 0 {
		return nil
	}

	for _, rule := range selectionRules {
		if rule.matches(cats) {
			r := rule.rejection
			return &r
		}
	}
	return nil
}
