package recommend

import "github.com/sirupsen/logrus"

type RecommendLogHook struct{}

func (h *RecommendLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Recommend: " + entry.Message
	return nil
}

func (h *RecommendLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
