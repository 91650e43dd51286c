package usecase

import (
	"context"
	"errors"
	"fmt"
	"quote_matrix/internal/domain/entities"
	"quote_matrix/internal/domain/matrix"
	"quote_matrix/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidQuoteID   = errors.New("invalid quote_id")
	ErrQuoteNotFound    = errors.New("quote catalog not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotFound  = errors.New("matrix session not found")
)

// IMatrixSessionUseCase is the command interface of the assignment matrix.
//
// A session is opened per quote view; every other call addresses that session:
//   - SetActiveCategory / SetFilter change what the matrix shows
//   - GetView returns the visible items rendered as rows
//   - ToggleAssignment flips one item/option cell
//   - ExportCatalog returns every category with the session's current assignments

//go:generate mockgen -source=matrix_session_usecase.go -destination=../adapter/http/handlers/mocks/mock_matrix_session_usecase.go -package=mocks

type IMatrixSessionUseCase interface {
	OpenSession(ctx context.Context, quoteID string) (matrix.View, error)
	GetView(ctx context.Context, sessionID string) (matrix.View, error)
	SetActiveCategory(ctx context.Context, sessionID string, key entities.CategoryKey) (matrix.View, error)
	SetFilter(ctx context.Context, sessionID string, name matrix.Filter, value bool) (matrix.View, error)
	ToggleAssignment(ctx context.Context, sessionID, itemID, optionID string) (matrix.ToggleResult, error)
	ExportCatalog(ctx context.Context, sessionID string) (entities.Catalog, error)
	CloseSession(ctx context.Context, sessionID string) error
	EvictIdleSessions(ctx context.Context, ttl time.Duration) (int, error)
}

type MatrixSessionUseCase struct {
	catalogs interfaces.ICatalogRepository
	sessions interfaces.ISessionStore
	logger   *zap.Logger
}

var _ IMatrixSessionUseCase = (*MatrixSessionUseCase)(nil)

func NewMatrixSessionUseCase(catalogs interfaces.ICatalogRepository, sessions interfaces.ISessionStore, logger *zap.Logger) *MatrixSessionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatrixSessionUseCase{catalogs: catalogs, sessions: sessions, logger: logger}
}

func (u *MatrixSessionUseCase) OpenSession(ctx context.Context, quoteID string) (matrix.View, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return matrix.View{}, ErrInvalidQuoteID
	}

	catalog, err := u.catalogs.GetCatalog(ctx, quoteID)
	if errors.Is(err, interfaces.ErrMalformedQuoteID) {
		u.logger.Debug("[matrix][usecase] quote id refused by catalog", zap.String("quote_id", quoteID), zap.Error(err))
		return matrix.View{}, fmt.Errorf("%w: %w", ErrInvalidQuoteID, err)
	}
	if err != nil {
		u.logger.Error("[matrix][usecase] catalog load failed", zap.String("quote_id", quoteID), zap.Error(err))
		return matrix.View{}, err
	}
	if catalog.QuoteID == "" {
		return matrix.View{}, ErrQuoteNotFound
	}

	engine, err := matrix.NewEngine(catalog)
	if err != nil {
		u.logger.Warn("[matrix][usecase] catalog rejected", zap.String("quote_id", quoteID), zap.Error(err))
		return matrix.View{}, err
	}

	now := time.Now().UTC()
	s := matrix.NewSession(uuid.NewString(), quoteID, engine, now)
	if err := u.sessions.Save(ctx, s); err != nil {
		return matrix.View{}, err
	}
	u.logger.Info("[matrix][usecase] session opened",
		zap.String("session_id", s.ID),
		zap.String("quote_id", quoteID),
		zap.Int("options", len(catalog.Options)),
		zap.Int("categories", len(catalog.Categories)),
	)
	return s.View(now), nil
}

func (u *MatrixSessionUseCase) GetView(ctx context.Context, sessionID string) (matrix.View, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return matrix.View{}, err
	}
	return s.View(time.Now().UTC()), nil
}

func (u *MatrixSessionUseCase) SetActiveCategory(ctx context.Context, sessionID string, key entities.CategoryKey) (matrix.View, error) {
	return u.update(ctx, sessionID, func(e *matrix.Engine) error {
		return e.SetActiveCategory(entities.CategoryKey(strings.TrimSpace(string(key))))
	})
}

func (u *MatrixSessionUseCase) SetFilter(ctx context.Context, sessionID string, name matrix.Filter, value bool) (matrix.View, error) {
	return u.update(ctx, sessionID, func(e *matrix.Engine) error {
		return e.SetFilter(name, value)
	})
}

func (u *MatrixSessionUseCase) ToggleAssignment(ctx context.Context, sessionID, itemID, optionID string) (matrix.ToggleResult, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return matrix.ToggleResult{}, err
	}

	itemID = strings.TrimSpace(itemID)
	optionID = strings.TrimSpace(optionID)

	var res matrix.ToggleResult
	err = s.Do(time.Now().UTC(), func(e *matrix.Engine) error {
		var tErr error
		res, tErr = e.ToggleAssignment(itemID, optionID)
		return tErr
	})
	if err != nil {
		return matrix.ToggleResult{}, err
	}

	if res.Locked() {
		u.logger.Info("[matrix][usecase] toggle refused, required item",
			zap.String("session_id", s.ID), zap.String("item_id", itemID), zap.String("option_id", optionID))
	} else {
		u.logger.Debug("[matrix][usecase] toggle applied",
			zap.String("session_id", s.ID), zap.String("item_id", itemID), zap.String("option_id", optionID),
			zap.Bool("assigned", res.Assigned))
	}
	return res, nil
}

func (u *MatrixSessionUseCase) ExportCatalog(ctx context.Context, sessionID string) (entities.Catalog, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.Catalog{}, err
	}
	return s.Snapshot(time.Now().UTC()), nil
}

func (u *MatrixSessionUseCase) CloseSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	deleted, err := u.sessions.Delete(ctx, sessionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	u.logger.Info("[matrix][usecase] session closed", zap.String("session_id", sessionID))
	return nil
}

// EvictIdleSessions drops sessions nobody touched during the last ttl.
func (u *MatrixSessionUseCase) EvictIdleSessions(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("invalid session ttl %s", ttl)
	}
	n, err := u.sessions.EvictIdle(ctx, time.Now().UTC().Add(-ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.logger.Info("[matrix][usecase] idle sessions evicted", zap.Int("count", n))
	}
	return n, nil
}

func (u *MatrixSessionUseCase) update(ctx context.Context, sessionID string, fn func(e *matrix.Engine) error) (matrix.View, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return matrix.View{}, err
	}

	now := time.Now().UTC()
	if err := s.Do(now, fn); err != nil {
		return matrix.View{}, err
	}
	return s.View(now), nil
}

func (u *MatrixSessionUseCase) session(ctx context.Context, sessionID string) (*matrix.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
