package services

import (
	"fmt"
	"time"

	"github.com/DahlGitHub/tracker/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, ps *PushService) {
	_alert = alertDeps{db: db, ps: ps}
}

// EmitAlert persists the alert, broadcasts it on the realtime hub and sends
// a mobile push. Safe to call anywhere.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	PublishEvent(userID, EventAlertCreated, a)

	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "New Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
