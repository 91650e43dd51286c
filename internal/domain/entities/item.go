package entities

// CategoryKey names a collection of assignable items.
type CategoryKey string

const (
	CategoryEndorsements   CategoryKey = "endorsements"
	CategorySubjectivities CategoryKey = "subjectivities"
	CategoryCoverages      CategoryKey = "coverages"
)

// Item is an endorsement, subjectivity or coverage that can be attached to quote options.
//
// Domain notes:
//   - Required items are attached to every option and cannot be removed from one.
//   - Auto items were attached by the rules engine upstream; they stay editable.
//   - AssignedOptions holds option ids, ordered like the quote's options.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - SK: item_key (<category>#<item id>)
type Item struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Code            string   `json:"code,omitempty"`
	Required        bool     `json:"required"`
	Auto            bool     `json:"auto"`
	AssignedOptions []string `json:"assigned_options"`
}

// Category is an ordered collection of items sharing one key.
type Category struct {
	Key   CategoryKey `json:"key"`
	Items []Item      `json:"items"`
}

// Catalog is everything the quoting backend hands over for one quote.
type Catalog struct {
	QuoteID    string     `json:"quote_id"`
	Options    []Option   `json:"options"`
	Categories []Category `json:"categories"`
}
