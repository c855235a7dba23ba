package models

// ContactSubmission is the payload of the landing page contact form.
// It only lives for the duration of one request.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Level   string `json:"level" form:"level"`
	Message string `json:"message" form:"message"`
}

// ExperienceLevels are the options offered by the contact form
var ExperienceLevels = []string{
	"New to Forex",
	"Some Experience (0-2 years)",
	"Experienced (2+ years)",
}
