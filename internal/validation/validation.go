// Package validation holds the field-level checks applied to create and
// update payloads before anything is handed to the persistence layer.
// Every check is a pure function; entity-level entry points collect all
// failing fields instead of stopping at the first one.
package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/lucyth/activity-log-api/internal/dto"
	"github.com/lucyth/activity-log-api/internal/models"
)

const (
	dateLayout = "2006/01/02"
	timeLayout = "15:04"
)

// FieldError reports a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Date checks the YYYY/MM/DD format, including calendar validity.
func Date(value string) *FieldError {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return &FieldError{Field: "date", Message: "date does not match format 'YYYY/MM/DD'"}
	}
	return nil
}

// Time checks the HH:MM format (hour 0-23, minute 0-59).
func Time(value string) *FieldError {
	if _, err := time.Parse(timeLayout, value); err != nil {
		return &FieldError{Field: "time", Message: "time does not match format 'HH:MM'"}
	}
	return nil
}

// MovingTime checks the HH:MM:SS format, each component a non-negative
// integer.
func MovingTime(value string) *FieldError {
	invalid := &FieldError{Field: "moving_time", Message: "moving_time does not match format 'HH:MM:SS'"}

	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return invalid
	}
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return invalid
		}
	}
	return nil
}

// ActivityValue checks the enumerated activity values.
func ActivityValue(value string) *FieldError {
	switch models.ActivityKind(value) {
	case models.ActivityRun, models.ActivityRide:
		return nil
	}
	return &FieldError{Field: "activity", Message: "activity must be one of 'run', 'ride'"}
}

// PerceivedEffort checks the inclusive 1-10 range.
func PerceivedEffort(value int) *FieldError {
	if value < 1 || value > 10 {
		return &FieldError{Field: "perceived_effort", Message: "perceived_effort must be in the range 1 - 10"}
	}
	return nil
}

func appendIf(errs []FieldError, fieldErr *FieldError) []FieldError {
	if fieldErr != nil {
		errs = append(errs, *fieldErr)
	}
	return errs
}

// UserCreate validates a user create payload.
func UserCreate(req dto.UserCreate) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email must not be empty"})
	}
	return errs
}

// UserUpdate validates the fields present in a user update payload.
func UserUpdate(req dto.UserUpdate) []FieldError {
	var errs []FieldError
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email must not be empty"})
	}
	return errs
}

// ActivityCreate validates an activity create payload.
func ActivityCreate(req dto.ActivityCreate) []FieldError {
	var errs []FieldError
	errs = appendIf(errs, Date(req.Date))
	errs = appendIf(errs, Time(req.Time))
	errs = appendIf(errs, ActivityValue(req.Activity))
	errs = appendIf(errs, MovingTime(req.MovingTime))
	errs = appendIf(errs, PerceivedEffort(*req.PerceivedEffort))
	return errs
}

// ActivityUpdate validates the fields present in an activity update
// payload. Omitted fields are skipped.
func ActivityUpdate(req dto.ActivityUpdate) []FieldError {
	var errs []FieldError
	if req.Date != nil {
		errs = appendIf(errs, Date(*req.Date))
	}
	if req.Time != nil {
		errs = appendIf(errs, Time(*req.Time))
	}
	if req.Activity != nil {
		errs = appendIf(errs, ActivityValue(*req.Activity))
	}
	if req.MovingTime != nil {
		errs = appendIf(errs, MovingTime(*req.MovingTime))
	}
	if req.PerceivedEffort != nil {
		errs = appendIf(errs, PerceivedEffort(*req.PerceivedEffort))
	}
	return errs
}
