package validation

import (
	"github.com/go-playground/validator/v10"
)

// contactMessages maps field+tag pairs to the user-facing messages returned
// by the contact endpoint. A missing field reads the same as a too-short one,
// matching what the public form has always shown.
var contactMessages = map[string]map[string]string{
	"Name": {
		"required": "Name must be at least 2 characters",
		"min":      "Name must be at least 2 characters",
		"max":      "Name must be less than 50 characters",
	},
	"Email": {
		"required":    "Please provide a valid email address",
		"loose_email": "Please provide a valid email address",
	},
	"Subject": {
		"required": "Subject must be at least 3 characters",
		"min":      "Subject must be at least 3 characters",
		"max":      "Subject must be less than 100 characters",
	},
	"Message": {
		"required": "Message must be at least 10 characters",
		"min":      "Message must be at least 10 characters",
		"max":      "Message must be less than 1000 characters",
	},
}

// FormatContactErrors converts validator.ValidationErrors on the contact form
// into user-friendly messages, preserving struct field order.
func FormatContactErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		if byTag, ok := contactMessages[e.Field()]; ok {
			if msg, ok := byTag[e.Tag()]; ok {
				messages = append(messages, msg)
				continue
			}
		}
		messages = append(messages, e.Error())
	}
	return messages
}
