package interfaces

import (
	"context"
	"quote_matrix/internal/domain/matrix"
	"time"
)

// ISessionStore keeps the open matrix sessions.
//
// Get returns (nil, nil) for an unknown id.

//go:generate mockgen -source=session_store_interface.go -destination=mocks/mock_session_store_interface.go -package=mock_interfaces

type ISessionStore interface {
	Save(ctx context.Context, s *matrix.Session) error
	Get(ctx context.Context, id string) (*matrix.Session, error)
	Delete(ctx context.Context, id string) (bool, error)
	EvictIdle(ctx context.Context, idleSince time.Time) (int, error)
}
