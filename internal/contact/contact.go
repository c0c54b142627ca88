// Package contact locates contact details inside free-form CV text.
package contact

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+`)
	phonePattern = regexp.MustCompile(`(?:\+?\d{2,3}[\s\-]?)?(?:\d{2,4}[\s\-]?){2,4}\d{2,4}`)
)

// Info holds the first detected email address and phone number.
// Either field may be empty when no match was found.
type Info struct {
	Email string
	Phone string
}

// Find returns the first email-like and phone-like matches in text.
// Matching is purely syntactic; a date string can match the phone
// pattern and that false positive is accepted.
func Find(text string) Info {
	return Info{
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
	}
}

// HasEmail reports whether an email address was detected.
func (i Info) HasEmail() bool { return i.Email != "" }

// HasPhone reports whether a phone number was detected.
func (i Info) HasPhone() bool { return i.Phone != "" }
