package interfaces

import (
	"context"
	"errors"
	"quote_matrix/internal/domain/entities"
)

// ErrMalformedQuoteID is wrapped by repositories that refuse a quote id they cannot address.
var ErrMalformedQuoteID = errors.New("malformed quote id")

// ICatalogRepository reads the options and assignable items of a quote.
//
// The quoting backend owns this data; the matrix service never writes it back.
// An unknown quote yields a zero Catalog (empty QuoteID) and a nil error.

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/mock_catalog_repository_interface.go -package=mock_interfaces

type ICatalogRepository interface {
	GetCatalog(ctx context.Context, quoteID string) (entities.Catalog, error)
}
