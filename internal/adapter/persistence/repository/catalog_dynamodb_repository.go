package repository

import (
	"context"
	"fmt"
	"sort"

	"quote_matrix/internal/domain/entities"
	"quote_matrix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOptionsTableName = "quote_options"
	defaultItemsTableName   = "quote_items"
)

type optionItem struct {
	QuoteID    string `dynamodbav:"quote_id"`
	OptionID   string `dynamodbav:"option_id"`
	Name       string `dynamodbav:"name"`
	Descriptor string `dynamodbav:"descriptor"`
	Status     string `dynamodbav:"status"`
	Position   int    `dynamodbav:"position"`
}

type catalogItem struct {
	QuoteID          string   `dynamodbav:"quote_id"`
	ItemKey          string   `dynamodbav:"item_key"`
	Category         string   `dynamodbav:"category"`
	CategoryPosition int      `dynamodbav:"category_position"`
	ItemID           string   `dynamodbav:"item_id"`
	Label            string   `dynamodbav:"label"`
	Code             string   `dynamodbav:"code,omitempty"`
	Required         bool     `dynamodbav:"required"`
	Auto             bool     `dynamodbav:"auto"`
	AssignedOptions  []string `dynamodbav:"assigned_options,omitempty"`
	Position         int      `dynamodbav:"position"`
}

// CatalogDynamoRepository reads quote catalogs from DynamoDB.
//
// Table requirements:
//   - quote_options: PK quote_id (string), SK option_id (string)
//   - quote_items:   PK quote_id (string), SK item_key (string, "<category>#<item id>")
//
// Sort keys only give uniqueness; display order comes from the position attributes.

type CatalogDynamoRepository struct {
	ddb          dynamodb.QueryAPIClient
	optionsTable string
	itemsTable   string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb dynamodb.QueryAPIClient, optionsTable, itemsTable string) *CatalogDynamoRepository {
	if optionsTable == "" {
		optionsTable = defaultOptionsTableName
	}
	if itemsTable == "" {
		itemsTable = defaultItemsTableName
	}
	return &CatalogDynamoRepository{ddb: ddb, optionsTable: optionsTable, itemsTable: itemsTable}
}

func (r *CatalogDynamoRepository) GetCatalog(ctx context.Context, quoteID string) (entities.Catalog, error) {
	var options []optionItem
	if err := r.queryByQuote(ctx, r.optionsTable, quoteID, func(raw map[string]types.AttributeValue) error {
		var it optionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		options = append(options, it)
		return nil
	}); err != nil {
		return entities.Catalog{}, fmt.Errorf("query %s: %w", r.optionsTable, err)
	}

	var items []catalogItem
	if err := r.queryByQuote(ctx, r.itemsTable, quoteID, func(raw map[string]types.AttributeValue) error {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, it)
		return nil
	}); err != nil {
		return entities.Catalog{}, fmt.Errorf("query %s: %w", r.itemsTable, err)
	}

	if len(options) == 0 && len(items) == 0 {
		return entities.Catalog{}, nil
	}
	return toCatalog(quoteID, options, items), nil
}

func (r *CatalogDynamoRepository) queryByQuote(
	ctx context.Context,
	table, quoteID string,
	each func(raw map[string]types.AttributeValue) error,
) error {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("#quote_id = :qid"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, raw := range out.Items {
			if err := each(raw); err != nil {
				return err
			}
		}
	}
	return nil
}

func toCatalog(quoteID string, options []optionItem, items []catalogItem) entities.Catalog {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Position < options[j].Position
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CategoryPosition != items[j].CategoryPosition {
			return items[i].CategoryPosition < items[j].CategoryPosition
		}
		return items[i].Position < items[j].Position
	})

	c := entities.Catalog{
		QuoteID: quoteID,
		Options: make([]entities.Option, 0, len(options)),
	}
	for _, o := range options {
		c.Options = append(c.Options, fromOptionItem(o))
	}

	byKey := make(map[entities.CategoryKey]int)
	for _, it := range items {
		key := entities.CategoryKey(it.Category)
		idx, ok := byKey[key]
		if !ok {
			idx = len(c.Categories)
			byKey[key] = idx
			c.Categories = append(c.Categories, entities.Category{Key: key})
		}
		c.Categories[idx].Items = append(c.Categories[idx].Items, fromCatalogItem(it))
	}
	return c
}

func fromOptionItem(it optionItem) entities.Option {
	return entities.Option{
		ID:         it.OptionID,
		Name:       it.Name,
		Descriptor: it.Descriptor,
		Status:     entities.OptionStatus(it.Status),
	}
}

func fromCatalogItem(it catalogItem) entities.Item {
	return entities.Item{
		ID:              it.ItemID,
		Label:           it.Label,
		Code:            it.Code,
		Required:        it.Required,
		Auto:            it.Auto,
		AssignedOptions: it.AssignedOptions,
	}
}
