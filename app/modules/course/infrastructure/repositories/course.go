package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
	"github.com/fairway-collective/league-engine/app/shared"
)

// CourseDBImpl implements Repository on top of bun.
type CourseDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*CourseDBImpl)(nil)

func (r *CourseDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *CourseDBImpl) Create(ctx context.Context, db bun.IDB, course coursedomain.Course) error {
	if _, err := r.idb(db).NewInsert().Model(toModel(course)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert course %s: %w", course.ID, err)
	}
	return nil
}

func (r *CourseDBImpl) Get(ctx context.Context, db bun.IDB, id uuid.UUID) (*coursedomain.Course, error) {
	var course Course
	err := r.idb(db).NewSelect().Model(&course).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFoundf("course %s", id)
		}
		return nil, fmt.Errorf("failed to fetch course %s: %w", id, err)
	}
	return toDomain(&course), nil
}

func (r *CourseDBImpl) List(ctx context.Context, db bun.IDB) ([]coursedomain.Course, error) {
	var models []Course
	if err := r.idb(db).NewSelect().Model(&models).Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]coursedomain.Course, 0, len(models))
	for i := range models {
		courses = append(courses, *toDomain(&models[i]))
	}
	return courses, nil
}
