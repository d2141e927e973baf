package fields

import "regexp"

var (
	rePhone = regexp.MustCompile(`\+?\d[\d\-\s]{7,}\d`)
	reEmail = regexp.MustCompile(`[\w.\-]+@[\w.\-]+`)
)

// Contact holds the extracted contact details; either field may be empty
// independently of the other.
type Contact struct {
	Phone string
	Email string
}

// ContactInfo extracts the first phone-like token (8+ digits with optional
// leading + and interior separators) and the first email-like token.
func ContactInfo(text string) Contact {
	var c Contact
	if m := rePhone.FindString(text); m != "" {
		c.Phone = m
	}
	if m := reEmail.FindString(text); m != "" {
		c.Email = m
	}
	return c
}
