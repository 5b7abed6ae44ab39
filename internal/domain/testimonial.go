package domain

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Testimonial status constants.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Field limits enforced before a submission reaches the store. The message
// cap matches the legacy schema's column constraint.
const (
	MinMessageLength = 10
	MaxMessageLength = 1000
	MaxNameLength    = 100
)

// DefaultRating is applied when a submission omits the rating.
const DefaultRating = 5

// emailRe is the lenient local@domain.tld shape check used by the public form.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Testimonial represents a user-submitted review tied to one project. It is
// created pending and becomes publicly visible only once approved.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`

	ProjectID string `json:"project_id"`
	// ProjectTitle is a snapshot taken at submission time; it is not re-synced
	// if the project is later renamed.
	ProjectTitle string `json:"project_title"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stats holds the aggregate over a project's approved testimonials.
type Stats struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"average_rating"`
}

// SubmissionInput holds the raw fields of a testimonial submission before
// validation and trimming.
type SubmissionInput struct {
	Name      string
	Email     string
	Role      string
	Company   string
	Rating    int
	Message   string
	ProjectID string
}

// ValidateSubmission checks a submission and returns every failed check in a
// fixed order, so a single response can report all problems at once. It is
// side-effect free; an empty result means the input is valid.
func ValidateSubmission(in SubmissionInput) []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, "Email is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		errs = append(errs, "Testimonial message is required")
	}

	if in.Email != "" && !emailRe.MatchString(in.Email) {
		errs = append(errs, "Please enter a valid email address")
	}

	// Length limits count characters, not bytes, matching the store's
	// char_length constraint.
	if utf8.RuneCountInString(strings.TrimSpace(in.Message)) < MinMessageLength {
		errs = append(errs, "Message must be at least 10 characters")
	}

	return errs
}

// ValidStatuses returns the set of valid testimonial statuses.
func ValidStatuses() []string {
	return []string{StatusPending, StatusApproved, StatusRejected}
}

// IsValidStatus checks whether the given status string is a valid testimonial status.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// IsModeratedStatus reports whether the status is a moderation outcome
// (approved or rejected, never pending).
func IsModeratedStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// RoundRating rounds an average rating to one decimal place.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
