package models

import "time"

// ScheduledNotification stores a reminder schedule for a user. The schedule
// fields mirror pkg/schedule.Schedule; Days is stored comma-joined and
// Personalizations as a JSON object. NextFireAt is recomputed on every write
// from the validated schedule; actual delivery happens externally.
type ScheduledNotification struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	UserID     uint   `gorm:"index;not null"`
	TemplateID string `gorm:"size:64;not null"`

	ScheduleType string     `gorm:"size:16;not null"`
	Time         string     `gorm:"size:5;not null"` // HH:MM, 24h
	Days         string     `gorm:"size:16"`         // weekly: "1,3,5"
	MonthDay     int        // monthly: 1..31
	TriggerAt    *time.Time // custom: explicit next trigger

	Personalizations string    `gorm:"type:jsonb;default:'{}'"`
	Enabled          bool      `gorm:"not null;default:true"`
	NextFireAt       time.Time `gorm:"index"`
}
