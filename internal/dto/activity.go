package dto

import (
	"github.com/lucyth/activity-log-api/internal/models"
)

// ActivityCreate is the request body for creating an activity. The id is
// assigned by the server on insert. Numeric fields are pointers so that
// an omitted field is distinguishable from a zero value.
type ActivityCreate struct {
	UserID          uint64   `json:"user_id" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	Time            string   `json:"time" binding:"required"`
	Activity        string   `json:"activity" binding:"required"`
	ActivityType    string   `json:"activity_type" binding:"required"`
	MovingTime      string   `json:"moving_time" binding:"required"`
	DistanceKM      *float64 `json:"distance_km" binding:"required"`
	PerceivedEffort *int     `json:"perceived_effort" binding:"required"`
	ElevationM      *int     `json:"elevation_m"`
}

// ActivityUpdate is the request body for partially updating an activity.
// Nil fields were omitted from the payload and leave the stored value
// untouched.
type ActivityUpdate struct {
	UserID          *uint64  `json:"user_id"`
	Date            *string  `json:"date"`
	Time            *string  `json:"time"`
	Activity        *string  `json:"activity"`
	ActivityType    *string  `json:"activity_type"`
	MovingTime      *string  `json:"moving_time"`
	DistanceKM      *float64 `json:"distance_km"`
	PerceivedEffort *int     `json:"perceived_effort"`
	ElevationM      *int     `json:"elevation_m"`

	// ClearElevationM is set by the handler when the payload carried an
	// explicit "elevation_m": null, which cannot be told apart from an
	// omitted field after unmarshalling into ElevationM alone.
	ClearElevationM bool `json:"-"`
}

// Model builds a new Activity from the create request.
func (r ActivityCreate) Model() models.Activity {
	return models.Activity{
		UserID:          r.UserID,
		Date:            r.Date,
		Time:            r.Time,
		Activity:        r.Activity,
		ActivityType:    r.ActivityType,
		MovingTime:      r.MovingTime,
		DistanceKM:      *r.DistanceKM,
		PerceivedEffort: *r.PerceivedEffort,
		ElevationM:      r.ElevationM,
	}
}

// ApplyTo merges the supplied fields onto an existing activity.
func (r ActivityUpdate) ApplyTo(activity *models.Activity) {
	if r.UserID != nil {
		activity.UserID = *r.UserID
	}
	if r.Date != nil {
		activity.Date = *r.Date
	}
	if r.Time != nil {
		activity.Time = *r.Time
	}
	if r.Activity != nil {
		activity.Activity = *r.Activity
	}
	if r.ActivityType != nil {
		activity.ActivityType = *r.ActivityType
	}
	if r.MovingTime != nil {
		activity.MovingTime = *r.MovingTime
	}
	if r.DistanceKM != nil {
		activity.DistanceKM = *r.DistanceKM
	}
	if r.PerceivedEffort != nil {
		activity.PerceivedEffort = *r.PerceivedEffort
	}
	if r.ElevationM != nil {
		activity.ElevationM = r.ElevationM
	} else if r.ClearElevationM {
		activity.ElevationM = nil
	}
}
