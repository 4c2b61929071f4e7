// Package courseservice manages the course catalog.
package courseservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
	coursedb "github.com/fairway-collective/league-engine/app/modules/course/infrastructure/repositories"
	"github.com/fairway-collective/league-engine/app/observability"
	"github.com/fairway-collective/league-engine/app/observability/attr"
)

// Service is the course module's application interface.
type Service interface {
	CreateCourse(ctx context.Context, input CreateCourseInput) (*coursedomain.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*coursedomain.Course, error)
	ListCourses(ctx context.Context) ([]coursedomain.Course, error)
}

// CreateCourseInput carries a new course's ratings and per-hole layout.
type CreateCourseInput struct {
	Name           string                     `json:"name"`
	Par            int                        `json:"par"`
	CourseRating   float64                    `json:"course_rating"`
	SlopeRating    int                        `json:"slope_rating"`
	HolePars       [coursedomain.NumHoles]int `json:"hole_pars"`
	HoleDifficulty [coursedomain.NumHoles]int `json:"hole_difficulty"`
}

// CourseService implements Service.
type CourseService struct {
	repo    coursedb.Repository
	logger  *slog.Logger
	metrics observability.EngineMetrics
	clock   func() time.Time
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo coursedb.Repository, logger *slog.Logger, metrics observability.EngineMetrics) *CourseService {
	return &CourseService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		clock:   time.Now,
	}
}

var _ Service = (*CourseService)(nil)

// CreateCourse validates and stores a course. Ratings are fixed per course;
// corrections mean creating a replacement entry so processed results stay
// explainable.
func (s *CourseService) CreateCourse(ctx context.Context, input CreateCourseInput) (*coursedomain.Course, error) {
	s.metrics.RecordOperationAttempt(ctx, "course.create")

	course := coursedomain.Course{
		ID:             uuid.New(),
		Name:           input.Name,
		Par:            input.Par,
		CourseRating:   input.CourseRating,
		SlopeRating:    input.SlopeRating,
		HolePars:       input.HolePars,
		HoleDifficulty: input.HoleDifficulty,
		CreatedAt:      s.clock().UTC(),
	}
	if err := course.Validate(); err != nil {
		s.metrics.RecordOperationFailure(ctx, "course.create")
		return nil, err
	}

	if err := s.repo.Create(ctx, nil, course); err != nil {
		s.metrics.RecordOperationFailure(ctx, "course.create")
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "course.create")
	s.logger.InfoContext(ctx, "Course created",
		attr.UUID("course_id", course.ID),
		attr.String("name", course.Name),
	)
	return &course, nil
}

// GetCourse returns one course.
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*coursedomain.Course, error) {
	course, err := s.repo.Get(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// ListCourses returns the catalog.
func (s *CourseService) ListCourses(ctx context.Context) ([]coursedomain.Course, error) {
	courses, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}
