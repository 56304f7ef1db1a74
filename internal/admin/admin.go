package admin

import "github.com/sirupsen/logrus"

type AdminLogHook struct{}

func (h *AdminLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Admin: " + entry.Message
	return nil
}

func (h *AdminLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
