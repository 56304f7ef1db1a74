package support

import "github.com/sirupsen/logrus"

type SupportLogHook struct{}

func (h *SupportLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Support: " + entry.Message
	return nil
}

func (h *SupportLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
