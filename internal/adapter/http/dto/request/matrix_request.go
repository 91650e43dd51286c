package request

import (
	"errors"
	"quote_matrix/internal/domain/matrix"
	"strings"
)

var ErrUnknownFilter = errors.New("unknown filter")

// OpenSessionRequest opens the assignment matrix of a quote.
type OpenSessionRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

type SetCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// SetFilterRequest turns one view filter on or off.
//
// Name accepts the camelCase names used by the portal (requiredOnly, autoOnly, diffOnly)
// and their snake_case forms.
type SetFilterRequest struct {
	Name  string `json:"name" binding:"required"`
	Value *bool  `json:"value" binding:"required"`
}

func (r SetFilterRequest) ResolveFilter() (matrix.Filter, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(r.Name), "_", "")) {
	case "requiredonly":
		return matrix.FilterRequiredOnly, nil
	case "autoonly":
		return matrix.FilterAutoOnly, nil
	case "diffonly":
		return matrix.FilterDiffOnly, nil
	}
	return "", ErrUnknownFilter
}

type ToggleAssignmentRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	OptionID string `json:"option_id" binding:"required"`
}
