package entities

// OptionStatus is the quoting stage of an option.
//
// The matrix never acts on it; it is carried for display.
type OptionStatus string

const (
	OptionStatusDraft  OptionStatus = "draft"
	OptionStatusQuoted OptionStatus = "quoted"
	OptionStatusBound  OptionStatus = "bound"
)

// Valid reports whether s is one of the known statuses.
func (s OptionStatus) Valid() bool {
	switch s {
	case OptionStatusDraft, OptionStatusQuoted, OptionStatusBound:
		return true
	}
	return false
}

// Option is a quote variant (limit/attachment/term combination) compared side by side
// with the other options of the same quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - SK: option_id
type Option struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Descriptor string       `json:"descriptor"`
	Status     OptionStatus `json:"status"`
}
