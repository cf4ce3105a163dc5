package services

import (
	"encoding/json"
	"time"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
	"gorm.io/gorm"
)

// ActivityLogger appends "who did what" entries. Writes are
// best-effort; the primary operation never fails because of a log.
type ActivityLogger struct {
	db        *gorm.DB
	publisher QueuePublisher
}

func NewActivityLogger(db *gorm.DB, publisher QueuePublisher) *ActivityLogger {
	return &ActivityLogger{db: db, publisher: publisher}
}

type activityEvent struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

// Record stores one activity entry and mirrors it to the log queue.
func (a *ActivityLogger) Record(actor, action, detail string) {
	entry := models.ActivityLog{
		Actor:  actor,
		Action: action,
		Detail: detail,
	}
	if err := a.db.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("failed to write activity log (%s %s): %v", actor, action, err)
	}

	if a.publisher == nil {
		return
	}
	body, err := json.Marshal(activityEvent{
		Actor:     actor,
		Action:    action,
		Detail:    detail,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}
	if err := a.publisher.Publish(QueueActivityLogs, body); err != nil {
		utils.ErrorLogger.Printf("failed to publish activity event: %v", err)
	}
}
