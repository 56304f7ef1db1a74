package support

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSupportAdapter struct {
	sent string
}

func (f *fakeSupportAdapter) SendMessage(userID int64, message string) error {
	f.sent = message
	return nil
}

func (f *fakeSupportAdapter) GetMessages(userID int64) ([]Message, error) {
	return nil, nil
}

func (f *fakeSupportAdapter) GetNotifications(userID int64) ([]Notification, error) {
	return nil, nil
}

func (f *fakeSupportAdapter) MarkNotificationRead(notificationID int64) error {
	return nil
}

func (f *fakeSupportAdapter) DeleteNotification(notificationID int64) error {
	return nil
}

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestSendRejectsBlankMessage(t *testing.T) {
	adapter := &fakeSupportAdapter{}
	service := NewService(adapter, testLog())

	assert.ErrorIs(t, service.Send(7, ""), errMessageVide)
	assert.ErrorIs(t, service.Send(7, "   "), errMessageVide)
	assert.Empty(t, adapter.sent)

	require.NoError(t, service.Send(7, "ma commande est en retard"))
	assert.Equal(t, "ma commande est en retard", adapter.sent)
}
