package support

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type supportAdapter struct {
	api *upstream.Client
	log *logrus.Entry
}

func NewSupportAdapter(log *logrus.Entry, api *upstream.Client) *supportAdapter {
	return &supportAdapter{
		api: api,
		log: log,
	}
}

func (a *supportAdapter) SendMessage(userID int64, message string) error {
	body := struct {
		UserID  int64  `json:"user_id"`
		Message string `json:"message"`
	}{
		UserID:  userID,
		Message: message,
	}

	var result upstream.MutationResult
	_, err := a.api.Post("/support", body, &result)
	return err
}

func (a *supportAdapter) GetMessages(userID int64) ([]Message, error) {
	var messages []Message
	if _, err := a.api.Get(fmt.Sprintf("/support/%d", userID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (a *supportAdapter) GetNotifications(userID int64) ([]Notification, error) {
	var notifications []Notification
	if _, err := a.api.Get(fmt.Sprintf("/notifications/%d", userID), nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (a *supportAdapter) MarkNotificationRead(notificationID int64) error {
	var result upstream.MutationResult
	_, err := a.api.Put(fmt.Sprintf("/notifications/%d/read", notificationID), nil, &result)
	return err
}

func (a *supportAdapter) DeleteNotification(notificationID int64) error {
	_, err := a.api.Delete(fmt.Sprintf("/notifications/%d", notificationID), nil)
	return err
}
