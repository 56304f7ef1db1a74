package support

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

var errMessageVide = errors.New("le message ne peut pas etre vide")

type SupportAdapter interface {
	SendMessage(userID int64, message string) error
	GetMessages(userID int64) ([]Message, error)
	GetNotifications(userID int64) ([]Notification, error)
	MarkNotificationRead(notificationID int64) error
	DeleteNotification(notificationID int64) error
}

type SupportService interface {
	Send(userID int64, message string) error
	Thread(userID int64) ([]Message, error)
	Notifications(userID int64) ([]Notification, error)
	MarkRead(notificationID int64) error
	DeleteNotification(notificationID int64) error
}

type supportService struct {
	adapter SupportAdapter
	logger  *logrus.Entry
}

func NewService(adapter SupportAdapter, log *logrus.Entry) SupportService {
	return &supportService{
		adapter: adapter,
		logger:  log,
	}
}

func (s *supportService) Send(userID int64, message string) error {
	if strings.TrimSpace(message) == "" {
		return errMessageVide
	}
	return s.adapter.SendMessage(userID, message)
}

func (s *supportService) Thread(userID int64) ([]Message, error) {
	return s.adapter.GetMessages(userID)
}

func (s *supportService) Notifications(userID int64) ([]Notification, error) {
	return s.adapter.GetNotifications(userID)
}

func (s *supportService) MarkRead(notificationID int64) error {
	return s.adapter.MarkNotificationRead(notificationID)
}

func (s *supportService) DeleteNotification(notificationID int64) error {
	return s.adapter.DeleteNotification(notificationID)
}
