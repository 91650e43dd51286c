package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quote_matrix/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v5"
)

// fakeDynamo serves Query pages per table and records batch writes.
type fakeDynamo struct {
	pages    map[string][][]map[string]types.AttributeValue
	queryErr error
	queries  []*dynamodb.QueryInput

	writes          []*dynamodb.BatchWriteItemInput
	writeErr        error
	unprocessedOnce bool
	alwaysPending   bool
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	pages := f.pages[aws.ToString(in.TableName)]
	page := 0
	if in.ExclusiveStartKey != nil {
		if err := attributevalue.Unmarshal(in.ExclusiveStartKey["page"], &page); err != nil {
			return nil, err
		}
	}
	if page >= len(pages) {
		return &dynamodb.QueryOutput{}, nil
	}

	out := &dynamodb.QueryOutput{Items: pages[page]}
	if page+1 < len(pages) {
		next, _ := attributevalue.Marshal(page + 1)
		out.LastEvaluatedKey = map[string]types.AttributeValue{"page": next}
	}
	return out, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.writes = append(f.writes, in)
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	if f.alwaysPending || f.unprocessedOnce {
		f.unprocessedOnce = false
		return &dynamodb.BatchWriteItemOutput{UnprocessedItems: in.RequestItems}, nil
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestCatalogDynamoRepository_GetCatalog(t *testing.T) {
	t.Run("orders options and items by position across pages", func(t *testing.T) {
		fake := &fakeDynamo{pages: map[string][][]map[string]types.AttributeValue{
			"opts": {
				{
					mustMarshal(t, optionItem{QuoteID: "q-1", OptionID: "2", Name: "B", Status: "draft", Position: 1}),
				},
				{
					mustMarshal(t, optionItem{QuoteID: "q-1", OptionID: "1", Name: "A", Status: "quoted", Position: 0}),
				},
			},
			"items": {
				{
					mustMarshal(t, catalogItem{QuoteID: "q-1", ItemKey: "coverages#C1", Category: "coverages", CategoryPosition: 1, ItemID: "C1", Position: 0}),
					mustMarshal(t, catalogItem{QuoteID: "q-1", ItemKey: "endorsements#E2", Category: "endorsements", ItemID: "E2", Position: 1, AssignedOptions: []string{"2"}}),
				},
				{
					mustMarshal(t, catalogItem{QuoteID: "q-1", ItemKey: "endorsements#E1", Category: "endorsements", ItemID: "E1", Label: "War", Code: "END-1", Required: true, AssignedOptions: []string{"1", "2"}, Position: 0}),
				},
			},
		}}
		repo := NewCatalogDynamoRepository(fake, "opts", "items")

		c, err := repo.GetCatalog(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.QuoteID != "q-1" {
			t.Fatalf("unexpected quote id %q", c.QuoteID)
		}
		if len(c.Options) != 2 || c.Options[0].ID != "1" || c.Options[1].ID != "2" || c.Options[0].Status != entities.OptionStatusQuoted {
			t.Fatalf("unexpected options: %+v", c.Options)
		}
		if len(c.Categories) != 2 || c.Categories[0].Key != entities.CategoryEndorsements || c.Categories[1].Key != entities.CategoryCoverages {
			t.Fatalf("unexpected categories: %+v", c.Categories)
		}
		e := c.Categories[0].Items
		if len(e) != 2 || e[0].ID != "E1" || e[1].ID != "E2" {
			t.Fatalf("unexpected endorsements: %+v", e)
		}
		if !e[0].Required || e[0].Label != "War" || e[0].Code != "END-1" || len(e[0].AssignedOptions) != 2 {
			t.Fatalf("unexpected E1: %+v", e[0])
		}
		if len(fake.queries) != 4 {
			t.Fatalf("expected 4 query calls (2 pages per table), got %d", len(fake.queries))
		}
		q := fake.queries[0]
		if aws.ToString(q.KeyConditionExpression) != "#quote_id = :qid" || !aws.ToBool(q.ConsistentRead) {
			t.Fatalf("unexpected query: %+v", q)
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		repo := NewCatalogDynamoRepository(&fakeDynamo{}, "", "")
		c, err := repo.GetCatalog(context.Background(), "q-404")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.QuoteID != "" {
			t.Fatalf("expected zero catalog, got %+v", c)
		}
	})

	t.Run("default table names", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewCatalogDynamoRepository(fake, "", "")
		_, _ = repo.GetCatalog(context.Background(), "q-1")
		if aws.ToString(fake.queries[0].TableName) != "quote_options" || aws.ToString(fake.queries[1].TableName) != "quote_items" {
			t.Fatalf("unexpected tables: %s %s", aws.ToString(fake.queries[0].TableName), aws.ToString(fake.queries[1].TableName))
		}
	})

	t.Run("query error", func(t *testing.T) {
		boom := errors.New("throttled")
		repo := NewCatalogDynamoRepository(&fakeDynamo{queryErr: boom}, "opts", "items")
		_, err := repo.GetCatalog(context.Background(), "q-1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})
}

func TestCatalogDynamoSeeder_Seed(t *testing.T) {
	catalog := entities.Catalog{
		QuoteID: "q-1",
		Options: []entities.Option{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}},
		Categories: []entities.Category{
			{Key: entities.CategoryEndorsements, Items: make([]entities.Item, 30)},
		},
	}
	for i := range catalog.Categories[0].Items {
		catalog.Categories[0].Items[i].ID = string(rune('a' + i%26)) + string(rune('0'+i/26))
	}

	noWait := func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	t.Run("chunks and round trips", func(t *testing.T) {
		fake := &fakeDynamo{unprocessedOnce: true}
		seeder := NewCatalogDynamoSeeder(fake, "opts", "items")
		seeder.newBackOff = noWait
		if err := seeder.Seed(context.Background(), catalog); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// options: 1 batch + 1 retry; items: 25 + 5
		if len(fake.writes) != 4 {
			t.Fatalf("expected 4 batch writes, got %d", len(fake.writes))
		}
		if n := len(fake.writes[2].RequestItems["items"]); n != 25 {
			t.Fatalf("expected 25 items in first item batch, got %d", n)
		}

		var it catalogItem
		put := fake.writes[2].RequestItems["items"][0].PutRequest.Item
		if err := attributevalue.UnmarshalMap(put, &it); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if it.ItemKey != ItemKey(entities.CategoryEndorsements, it.ItemID) || it.QuoteID != "q-1" || it.Position != 0 {
			t.Fatalf("unexpected item row: %+v", it)
		}
	})

	t.Run("gives up on persistent unprocessed items", func(t *testing.T) {
		fake := &fakeDynamo{alwaysPending: true}
		seeder := NewCatalogDynamoSeeder(fake, "opts", "items")
		seeder.newBackOff = noWait
		err := seeder.Seed(context.Background(), catalog)
		if !errors.Is(err, ErrUnprocessedItems) {
			t.Fatalf("expected ErrUnprocessedItems, got %v", err)
		}
		if len(fake.writes) != maxUnprocessedRetries+1 {
			t.Fatalf("expected %d attempts, got %d", maxUnprocessedRetries+1, len(fake.writes))
		}
	})

	t.Run("stops waiting when the context ends", func(t *testing.T) {
		fake := &fakeDynamo{alwaysPending: true}
		seeder := NewCatalogDynamoSeeder(fake, "opts", "items")
		seeder.newBackOff = func() backoff.BackOff { return backoff.NewConstantBackOff(time.Hour) }

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := seeder.Seed(ctx, catalog)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
		if len(fake.writes) != 1 {
			t.Fatalf("expected a single attempt before the wait, got %d", len(fake.writes))
		}
	})

	t.Run("request errors are not retried", func(t *testing.T) {
		boom := errors.New("validation")
		fake := &fakeDynamo{writeErr: boom}
		seeder := NewCatalogDynamoSeeder(fake, "opts", "items")
		err := seeder.Seed(context.Background(), catalog)
		if !errors.Is(err, boom) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(fake.writes) != 1 {
			t.Fatalf("expected 1 attempt, got %d", len(fake.writes))
		}
	})

	t.Run("default backoff starts near the initial delay", func(t *testing.T) {
		b := unprocessedBackOff()
		first := b.NextBackOff()
		if first <= 0 || first > 2*unprocessedInitialDelay {
			t.Fatalf("unexpected first delay %s", first)
		}
	})

	t.Run("missing quote id", func(t *testing.T) {
		seeder := NewCatalogDynamoSeeder(&fakeDynamo{}, "", "")
		if err := seeder.Seed(context.Background(), entities.Catalog{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
