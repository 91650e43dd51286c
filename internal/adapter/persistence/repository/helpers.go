package repository

import (
	"fmt"
	"path/filepath"
	"strings"

	"quote_matrix/internal/domain/entities"
)

// ItemKey builds the quote_items sort key.
func ItemKey(category entities.CategoryKey, itemID string) string {
	return string(category) + "#" + itemID
}

// validFixtureQuoteID refuses quote ids that would escape the fixtures directory.
func validFixtureQuoteID(quoteID string) error {
	if quoteID == "" || quoteID != filepath.Base(quoteID) || strings.ContainsAny(quoteID, `/\`) || strings.HasPrefix(quoteID, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidFixtureQuoteID, quoteID)
	}
	return nil
}
