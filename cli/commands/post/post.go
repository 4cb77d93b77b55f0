package post

import (
	"errors"
	"strings"
	"time"

	"lostfound/shared"
)

var errTitleRequired = errors.New("title is required")
var errDescriptionRequired = errors.New("description is required")
var errLocationRequired = errors.New("location is required")
var errContactRequired = errors.New("contact info is required")
var errInvalidDate = errors.New("date must look like 2024-03-01")

// form collects everything needed to post a new report.
type form struct {
	Status      string
	Category    string
	Title       string
	Description string
	Location    string
	Date        string
	ContactInfo string
	ImageURL    string
}

func required(err error) func(string) error {
	return func(s string) error {
		if len(strings.TrimSpace(s)) == 0 {
			return err
		}

		return nil
	}
}

func validateDate(s string) error {
	if len(strings.TrimSpace(s)) == 0 {
		// Blank defaults to today
		return nil
	}

	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
		return errInvalidDate
	}

	return nil
}

// toItem converts the submitted form into the item sent to the backend.
// The server fills in the identifier, poster identity, and createdAt.
func (f form) toItem() (shared.Item, error) {
	date := time.Now()
	if trimmed := strings.TrimSpace(f.Date); len(trimmed) > 0 {
		parsed, err := time.Parse(time.DateOnly, trimmed)
		if err != nil {
			return shared.Item{}, errInvalidDate
		}
		date = parsed
	}

	return shared.Item{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Category:    f.Category,
		Status:      f.Status,
		Location:    strings.TrimSpace(f.Location),
		Date:        date,
		ContactInfo: strings.TrimSpace(f.ContactInfo),
		ImageURL:    strings.TrimSpace(f.ImageURL),
	}, nil
}
