package models

// ActivityKind enumerates the allowed values of the activity field.
type ActivityKind string

const (
	ActivityRun  ActivityKind = "run"
	ActivityRide ActivityKind = "ride"
)

type Activity struct {
	ID              uint64  `gorm:"column:id;primarykey" json:"id"`
	UserID          uint64  `gorm:"column:user_id;not null" json:"user_id"`
	Date            string  `gorm:"column:date;type:varchar(10);not null" json:"date"`
	Time            string  `gorm:"column:time;type:varchar(5);not null" json:"time"`
	Activity        string  `gorm:"column:activity;type:varchar(20);not null" json:"activity"`
	ActivityType    string  `gorm:"column:activity_type;type:varchar(255);not null" json:"activity_type"`
	MovingTime      string  `gorm:"column:moving_time;type:varchar(20);not null" json:"moving_time"`
	DistanceKM      float64 `gorm:"column:distance_km;not null" json:"distance_km"`
	PerceivedEffort int     `gorm:"column:perceived_effort;not null" json:"perceived_effort"`
	ElevationM      *int    `gorm:"column:elevation_m" json:"elevation_m"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

// TableName keeps the legacy table name
func (Activity) TableName() string {
	return "activity_table"
}
