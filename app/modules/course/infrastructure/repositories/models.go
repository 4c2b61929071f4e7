package coursedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
)

// Course is the persistence model for the course catalog. Rows are insert
// only: editing a course would invalidate historical stroke allocations.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID             uuid.UUID                        `bun:"id,pk,type:uuid"`
	Name           string                           `bun:"name,notnull"`
	Par            int                              `bun:"par,notnull"`
	CourseRating   float64                          `bun:"course_rating,notnull"`
	SlopeRating    int                              `bun:"slope_rating,notnull"`
	HolePars       [coursedomain.NumHoles]int       `bun:"hole_pars,notnull,type:jsonb"`
	HoleDifficulty [coursedomain.NumHoles]int       `bun:"hole_difficulty,notnull,type:jsonb"`
	CreatedAt      time.Time                        `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toDomain(c *Course) *coursedomain.Course {
	if c == nil {
		return nil
	}
	return &coursedomain.Course{
		ID:             c.ID,
		Name:           c.Name,
		Par:            c.Par,
		CourseRating:   c.CourseRating,
		SlopeRating:    c.SlopeRating,
		HolePars:       c.HolePars,
		HoleDifficulty: c.HoleDifficulty,
		CreatedAt:      c.CreatedAt,
	}
}

func toModel(c coursedomain.Course) *Course {
	return &Course{
		ID:             c.ID,
		Name:           c.Name,
		Par:            c.Par,
		CourseRating:   c.CourseRating,
		SlopeRating:    c.SlopeRating,
		HolePars:       c.HolePars,
		HoleDifficulty: c.HoleDifficulty,
		CreatedAt:      c.CreatedAt,
	}
}
