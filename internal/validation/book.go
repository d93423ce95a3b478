// Package validation checks and normalizes incoming book payloads.
//
// Validation is a pure function of the payload: nothing is read from or
// written to storage, so its guarantees hold regardless of what earlier
// code paths may have persisted.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrBodyRequired = errors.New("JSON body required")
	ErrInvalidTypes = errors.New("Invalid field types")
)

// requiredBookFields is the fixed order in which missing fields are reported.
var requiredBookFields = []string{"title", "author", "price", "published_year"}

// BookInput is a validated, normalized book payload. Pointer fields
// distinguish "absent" from "present with zero value" so partial updates
// only touch what the caller supplied.
type BookInput struct {
	Title         *string
	Author        *string
	Price         *float64
	PublishedYear *int
	Description   *string
}

// Columns returns the supplied fields as a column→value map suitable for a
// partial update statement.
func (in *BookInput) Columns() map[string]any {
	fields := make(map[string]any)
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Author != nil {
		fields["author"] = *in.Author
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.PublishedYear != nil {
		fields["published_year"] = *in.PublishedYear
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	return fields
}

// ValidateBook validates a decoded JSON payload. With requireAll set (create
// path) every required field must be present; otherwise (update path) absent
// fields are skipped entirely and no constraint applies to them.
func ValidateBook(payload map[string]any, requireAll bool) (*BookInput, error) {
	if payload == nil {
		return nil, ErrBodyRequired
	}

	if requireAll {
		for _, field := range requiredBookFields {
			if _, ok := payload[field]; !ok {
				return nil, fmt.Errorf("%s is required", field)
			}
		}
	}

	input := &BookInput{}

	if raw, ok := payload["title"]; ok {
		title, err := coerceNonEmptyString(raw, "title")
		if err != nil {
			return nil, err
		}
		input.Title = &title
	}

	if raw, ok := payload["author"]; ok {
		author, err := coerceNonEmptyString(raw, "author")
		if err != nil {
			return nil, err
		}
		input.Author = &author
	}

	if raw, ok := payload["price"]; ok {
		price, err := coerceFloat(raw)
		if err != nil {
			return nil, err
		}
		if price < 0 {
			return nil, errors.New("price must be >= 0")
		}
		input.Price = &price
	}

	if raw, ok := payload["published_year"]; ok {
		year, err := coerceInt(raw)
		if err != nil {
			return nil, err
		}
		if year < 0 {
			return nil, errors.New("published_year must be >= 0")
		}
		input.PublishedYear = &year
	}

	if raw, ok := payload["description"]; ok {
		description, ok := raw.(string)
		if !ok {
			return nil, ErrInvalidTypes
		}
		input.Description = &description
	}

	return input, nil
}

func coerceNonEmptyString(raw any, field string) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", ErrInvalidTypes
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%s cannot be empty", field)
	}
	return s, nil
}

// coerceFloat accepts JSON numbers and numeric strings.
func coerceFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, ErrInvalidTypes
		}
		return f, nil
	default:
		return 0, ErrInvalidTypes
	}
}

// coerceInt accepts integral JSON numbers and integer strings.
func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, ErrInvalidTypes
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, ErrInvalidTypes
		}
		return n, nil
	default:
		return 0, ErrInvalidTypes
	}
}
