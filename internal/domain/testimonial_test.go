package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubmission(t *testing.T) {
	valid := SubmissionInput{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Message:   "Working together was a great experience.",
		ProjectID: "1",
	}

	t.Run("valid input produces no errors", func(t *testing.T) {
		assert.Empty(t, ValidateSubmission(valid))
	})

	t.Run("all failures are reported together in order", func(t *testing.T) {
		errs := ValidateSubmission(SubmissionInput{
			Name:    "",
			Email:   "not-an-email",
			Message: "short",
		})
		assert.Equal(t, []string{
			"Name is required",
			"Please enter a valid email address",
			"Message must be at least 10 characters",
		}, errs)
	})

	t.Run("empty email reports required but not format", func(t *testing.T) {
		in := valid
		in.Email = ""
		errs := ValidateSubmission(in)
		assert.Equal(t, []string{"Email is required"}, errs)
	})

	t.Run("whitespace-only message fails both message checks", func(t *testing.T) {
		in := valid
		in.Message = "   "
		errs := ValidateSubmission(in)
		assert.Contains(t, errs, "Testimonial message is required")
		assert.Contains(t, errs, "Message must be at least 10 characters")
	})

	t.Run("message length is measured after trimming", func(t *testing.T) {
		in := valid
		in.Message = "  ok then   "
		errs := ValidateSubmission(in)
		assert.Equal(t, []string{"Message must be at least 10 characters"}, errs)
	})

	t.Run("message length counts characters, not bytes", func(t *testing.T) {
		in := valid
		in.Message = "ありがとう" // 5 characters, 15 bytes
		errs := ValidateSubmission(in)
		assert.Equal(t, []string{"Message must be at least 10 characters"}, errs)

		in.Message = "ありがとうございました" // 10 characters
		assert.Empty(t, ValidateSubmission(in))
	})

	t.Run("email format variants", func(t *testing.T) {
		cases := map[string]bool{
			"jane@example.com":   true,
			"a@b.co":             true,
			"jane @example.com": false,
			"jane@example":      false,
			"@example.com":      false,
			"jane@.com":         false,
			"jane.example.com":  false,
			"jane@exa mple.com": false,
		}
		for email, ok := range cases {
			in := valid
			in.Email = email
			errs := ValidateSubmission(in)
			if ok {
				assert.Empty(t, errs, "email %q should pass", email)
			} else {
				assert.Contains(t, errs, "Please enter a valid email address", "email %q should fail", email)
			}
		}
	})
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusApproved))
	assert.True(t, IsValidStatus(StatusRejected))
	assert.False(t, IsValidStatus("published"))

	assert.True(t, IsModeratedStatus(StatusApproved))
	assert.True(t, IsModeratedStatus(StatusRejected))
	assert.False(t, IsModeratedStatus(StatusPending))
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.3, RoundRating(4.3333333))
	assert.Equal(t, 4.7, RoundRating(4.6666666))
	assert.Equal(t, 5.0, RoundRating(5))
	assert.Equal(t, 0.0, RoundRating(0))
}

func TestProjectCatalog(t *testing.T) {
	all := Projects()
	assert.NotEmpty(t, all)

	p, ok := ProjectByID("1")
	assert.True(t, ok)
	assert.Equal(t, "Company Profile Website", p.Title)

	_, ok = ProjectByID("999")
	assert.False(t, ok)

	// Projects returns a copy; mutating it must not affect the catalog.
	all[0].Title = "mutated"
	p, _ = ProjectByID(all[0].ID)
	assert.NotEqual(t, "mutated", p.Title)
}
