package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"quote_matrix/internal/domain/entities"
	"quote_matrix/internal/domain/matrix"
	"quote_matrix/internal/usecase/interfaces"
	mock_interfaces "quote_matrix/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func sampleCatalog() entities.Catalog {
	return entities.Catalog{
		QuoteID: "q-1",
		Options: []entities.Option{{ID: "1"}, {ID: "2"}, {ID: "3"}},
		Categories: []entities.Category{
			{
				Key: entities.CategoryEndorsements,
				Items: []entities.Item{
					{ID: "E1", Required: true, AssignedOptions: []string{"1", "2", "3"}},
					{ID: "E5", AssignedOptions: []string{"2"}},
				},
			},
			{
				Key:   entities.CategoryCoverages,
				Items: []entities.Item{{ID: "C1", Auto: true, AssignedOptions: []string{"1"}}},
			},
		},
	}
}

func sampleSession(t *testing.T) *matrix.Session {
	t.Helper()
	e, err := matrix.NewEngine(sampleCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return matrix.NewSession("sess-1", "q-1", e, time.Now().UTC())
}

func TestMatrixSessionUseCase_OpenSession(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewMatrixSessionUseCase(nil, nil, nil)
		_, err := uc.OpenSession(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewMatrixSessionUseCase(repo, nil, zap.NewNop())

		repo.EXPECT().GetCatalog(gomock.Any(), "q-1").Return(entities.Catalog{}, errors.New("db"))

		_, err := uc.OpenSession(context.Background(), "q-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("quote id refused by catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewMatrixSessionUseCase(repo, nil, zap.NewNop())

		refused := fmt.Errorf("%w: %q", interfaces.ErrMalformedQuoteID, "../q-1")
		repo.EXPECT().GetCatalog(gomock.Any(), "../q-1").Return(entities.Catalog{}, refused)

		_, err := uc.OpenSession(context.Background(), "../q-1")
		if !errors.Is(err, ErrInvalidQuoteID) || !errors.Is(err, interfaces.ErrMalformedQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID wrapping the catalog error, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewMatrixSessionUseCase(repo, nil, zap.NewNop())

		repo.EXPECT().GetCatalog(gomock.Any(), "q-1").Return(entities.Catalog{}, nil)

		_, err := uc.OpenSession(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("invalid catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewMatrixSessionUseCase(repo, nil, zap.NewNop())

		bad := sampleCatalog()
		bad.Categories[0].Items[1].AssignedOptions = []string{"9"}
		repo.EXPECT().GetCatalog(gomock.Any(), "q-1").Return(bad, nil)

		_, err := uc.OpenSession(context.Background(), "q-1")
		if !errors.Is(err, matrix.ErrInvalidCatalog) {
			t.Fatalf("expected ErrInvalidCatalog, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(repo, store, zap.NewNop())

		repo.EXPECT().GetCatalog(gomock.Any(), "q-1").Return(sampleCatalog(), nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("full"))

		_, err := uc.OpenSession(context.Background(), "q-1")
		if err == nil || err.Error() != "full" {
			t.Fatalf("expected full error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(repo, store, zap.NewNop())

		repo.EXPECT().GetCatalog(gomock.Any(), "q-1").Return(sampleCatalog(), nil)
		var saved *matrix.Session
		store.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&matrix.Session{})).DoAndReturn(
			func(_ context.Context, s *matrix.Session) error {
				if s.ID == "" || s.QuoteID != "q-1" || s.OpenedAt.IsZero() {
					t.Fatalf("unexpected session: id=%q quote=%q", s.ID, s.QuoteID)
				}
				saved = s
				return nil
			},
		)

		view, err := uc.OpenSession(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.SessionID != saved.ID || view.QuoteID != "q-1" {
			t.Fatalf("unexpected view ids: %+v", view)
		}
		if view.ActiveCategory != entities.CategoryEndorsements || len(view.Rows) != 2 || len(view.Options) != 3 {
			t.Fatalf("unexpected view: %+v", view)
		}
	})
}

func TestMatrixSessionUseCase_SessionLookup(t *testing.T) {
	t.Run("invalid session id", func(t *testing.T) {
		uc := NewMatrixSessionUseCase(nil, nil, nil)
		if _, err := uc.GetView(context.Background(), " "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
		if _, err := uc.ToggleAssignment(context.Background(), "", "E5", "1"); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
		if err := uc.CloseSession(context.Background(), ""); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, nil)

		store.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, errors.New("boom"))

		_, err := uc.GetView(context.Background(), "sess-1")
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom error, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, nil)

		store.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, nil)

		_, err := uc.SetFilter(context.Background(), "sess-1", matrix.FilterDiffOnly, true)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("get view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, nil)

		store.EXPECT().Get(gomock.Any(), "sess-1").Return(sampleSession(t), nil)

		view, err := uc.GetView(context.Background(), " sess-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.SessionID != "sess-1" || len(view.Rows) != 2 {
			t.Fatalf("unexpected view: %+v", view)
		}
	})
}

func TestMatrixSessionUseCase_ViewCommands(t *testing.T) {
	t.Run("set active category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, nil)
		s := sampleSession(t)
		store.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil).Times(2)

		view, err := uc.SetActiveCategory(context.Background(), "sess-1", " coverages ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ActiveCategory != entities.CategoryCoverages || len(view.Rows) != 1 || view.Rows[0].Item.ID != "C1" {
			t.Fatalf("unexpected view: %+v", view)
		}

		_, err = uc.SetActiveCategory(context.Background(), "sess-1", "exclusions")
		if !errors.Is(err, matrix.ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("set filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, nil)
		store.EXPECT().Get(gomock.Any(), "sess-1").Return(sampleSession(t), nil).Times(2)

		view, err := uc.SetFilter(context.Background(), "sess-1", matrix.FilterDiffOnly, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.Filters.DiffOnly || len(view.Rows) != 1 || view.Rows[0].Item.ID != "E5" {
			t.Fatalf("unexpected view: %+v", view)
		}

		_, err = uc.SetFilter(context.Background(), "sess-1", "labelOnly", true)
		if !errors.Is(err, matrix.ErrInvalidFilter) {
			t.Fatalf("expected ErrInvalidFilter, got %v", err)
		}
	})
}

func TestMatrixSessionUseCase_ToggleAssignment(t *testing.T) {
	t.Run("locked required item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, zap.NewNop())
		store.EXPECT().Get(gomock.Any(), "sess-1").Return(sampleSession(t), nil)

		res, err := uc.ToggleAssignment(context.Background(), "sess-1", "E1", "2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Locked() || !res.Assigned {
			t.Fatalf("expected locked result, got %+v", res)
		}
	})

	t.Run("flip and flip back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, zap.NewNop())
		s := sampleSession(t)
		store.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil).Times(2)

		res, err := uc.ToggleAssignment(context.Background(), "sess-1", " E5 ", " 1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Assigned || res.Outcome != matrix.ToggleOutcomeApplied {
			t.Fatalf("unexpected result: %+v", res)
		}

		res, err = uc.ToggleAssignment(context.Background(), "sess-1", "E5", "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Assigned {
			t.Fatalf("expected option removed, got %+v", res)
		}
	})

	t.Run("unknown item and option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, zap.NewNop())
		store.EXPECT().Get(gomock.Any(), "sess-1").Return(sampleSession(t), nil).Times(2)

		if _, err := uc.ToggleAssignment(context.Background(), "sess-1", "E9", "1"); !errors.Is(err, matrix.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
		if _, err := uc.ToggleAssignment(context.Background(), "sess-1", "E5", "9"); !errors.Is(err, matrix.ErrOptionNotFound) {
			t.Fatalf("expected ErrOptionNotFound, got %v", err)
		}
	})
}

func TestMatrixSessionUseCase_CloseAndEvict(t *testing.T) {
	t.Run("close not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, nil)
		store.EXPECT().Delete(gomock.Any(), "sess-1").Return(false, nil)

		if err := uc.CloseSession(context.Background(), "sess-1"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("close success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, nil)
		store.EXPECT().Delete(gomock.Any(), "sess-1").Return(true, nil)

		if err := uc.CloseSession(context.Background(), "sess-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("evict invalid ttl", func(t *testing.T) {
		uc := NewMatrixSessionUseCase(nil, nil, nil)
		if _, err := uc.EvictIdleSessions(context.Background(), 0); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("evict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewMatrixSessionUseCase(nil, store, nil)

		before := time.Now().UTC().Add(-10 * time.Minute)
		store.EXPECT().EvictIdle(gomock.Any(), gomock.AssignableToTypeOf(time.Time{})).DoAndReturn(
			func(_ context.Context, idleSince time.Time) (int, error) {
				if idleSince.Before(before) || idleSince.After(time.Now().UTC()) {
					t.Fatalf("unexpected cutoff %s", idleSince)
				}
				return 2, nil
			},
		)

		n, err := uc.EvictIdleSessions(context.Background(), 10*time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Fatalf("expected 2 evicted, got %d", n)
		}
	})
}

func TestMatrixSessionUseCase_ExportCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockISessionStore(ctrl)
	uc := NewMatrixSessionUseCase(nil, store, nil)
	s := sampleSession(t)
	store.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil).Times(3)

	if _, err := uc.SetActiveCategory(context.Background(), "sess-1", entities.CategoryCoverages); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ToggleAssignment(context.Background(), "sess-1", "C1", "3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := uc.ExportCatalog(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.QuoteID != "q-1" || len(c.Categories) != 2 || len(c.Categories[0].Items) != 2 {
		t.Fatalf("unexpected catalog: %+v", c)
	}
	if got := c.Categories[1].Items[0].AssignedOptions; len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("unexpected C1 assignments: %v", got)
	}
}
