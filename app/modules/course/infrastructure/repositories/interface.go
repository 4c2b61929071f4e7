package coursedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
)

// Repository provides access to the course catalog. The db argument lets
// callers pass a transaction; nil falls back to the repository's pool.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, course coursedomain.Course) error
	Get(ctx context.Context, db bun.IDB, id uuid.UUID) (*coursedomain.Course, error)
	List(ctx context.Context, db bun.IDB) ([]coursedomain.Course, error)
}
