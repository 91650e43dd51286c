package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quote_matrix/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v5"
)

const (
	batchWriteLimit       = 25
	maxUnprocessedRetries = 5

	unprocessedInitialDelay = 100 * time.Millisecond
	unprocessedMaxDelay     = 2 * time.Second
)

var ErrUnprocessedItems = errors.New("dynamodb left items unprocessed")

// BatchWriteAPI is the part of the DynamoDB client the seeder needs.
type BatchWriteAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// CatalogDynamoSeeder loads catalogs into the quote tables for local environments.
// The matrix service itself only reads them.
type CatalogDynamoSeeder struct {
	ddb          BatchWriteAPI
	optionsTable string
	itemsTable   string
	newBackOff   func() backoff.BackOff
}

func NewCatalogDynamoSeeder(ddb BatchWriteAPI, optionsTable, itemsTable string) *CatalogDynamoSeeder {
	if optionsTable == "" {
		optionsTable = defaultOptionsTableName
	}
	if itemsTable == "" {
		itemsTable = defaultItemsTableName
	}
	return &CatalogDynamoSeeder{
		ddb:          ddb,
		optionsTable: optionsTable,
		itemsTable:   itemsTable,
		newBackOff:   unprocessedBackOff,
	}
}

func unprocessedBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = unprocessedInitialDelay
	b.MaxInterval = unprocessedMaxDelay
	return b
}

// Seed writes every option and item of c. Existing rows with the same keys are replaced.
func (s *CatalogDynamoSeeder) Seed(ctx context.Context, c entities.Catalog) error {
	if c.QuoteID == "" {
		return errors.New("catalog without quote_id")
	}

	optionRows := make([]any, 0, len(c.Options))
	for i, o := range c.Options {
		optionRows = append(optionRows, toOptionItem(c.QuoteID, i, o))
	}
	if err := s.write(ctx, s.optionsTable, optionRows); err != nil {
		return err
	}

	var itemRows []any
	for ci, cat := range c.Categories {
		for i, it := range cat.Items {
			itemRows = append(itemRows, toCatalogItem(c.QuoteID, cat.Key, ci, i, it))
		}
	}
	return s.write(ctx, s.itemsTable, itemRows)
}

func (s *CatalogDynamoSeeder) write(ctx context.Context, table string, rows []any) error {
	for start := 0; start < len(rows); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(rows) {
			end = len(rows)
		}

		reqs := make([]types.WriteRequest, 0, end-start)
		for _, row := range rows[start:end] {
			av, err := attributevalue.MarshalMap(row)
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		if err := s.flush(ctx, table, map[string][]types.WriteRequest{table: reqs}); err != nil {
			return err
		}
	}
	return nil
}

// flush re-sends UnprocessedItems with exponential backoff. Request errors are not retried;
// the SDK client already retries throttled calls.
func (s *CatalogDynamoSeeder) flush(ctx context.Context, table string, pending map[string][]types.WriteRequest) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		out, err := s.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return struct{}{}, backoff.Permanent(fmt.Errorf("batch write %s: %w", table, err))
		}
		pending = out.UnprocessedItems
		if len(pending) > 0 {
			return struct{}{}, fmt.Errorf("%w: table %s", ErrUnprocessedItems, table)
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(maxUnprocessedRetries+1),
	)
	return err
}

func toOptionItem(quoteID string, position int, o entities.Option) optionItem {
	return optionItem{
		QuoteID:    quoteID,
		OptionID:   o.ID,
		Name:       o.Name,
		Descriptor: o.Descriptor,
		Status:     string(o.Status),
		Position:   position,
	}
}

func toCatalogItem(quoteID string, key entities.CategoryKey, categoryPosition, position int, it entities.Item) catalogItem {
	return catalogItem{
		QuoteID:          quoteID,
		ItemKey:          ItemKey(key, it.ID),
		Category:         string(key),
		CategoryPosition: categoryPosition,
		ItemID:           it.ID,
		Label:            it.Label,
		Code:             it.Code,
		Required:         it.Required,
		Auto:             it.Auto,
		AssignedOptions:  it.AssignedOptions,
		Position:         position,
	}
}
