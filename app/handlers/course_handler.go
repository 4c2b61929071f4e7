package handlers

import (
	"net/http"

	courseservice "github.com/fairway-collective/league-engine/app/modules/course/application"
)

// CreateCourse handles POST /api/v1/courses.
func (h *Handlers) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var input courseservice.CreateCourseInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	course, err := h.courses.CreateCourse(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, course)
}

// GetCourse handles GET /api/v1/courses/{courseID}.
func (h *Handlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "courseID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	course, err := h.courses.GetCourse(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, course)
}

// ListCourses handles GET /api/v1/courses.
func (h *Handlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListCourses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, courses)
}
