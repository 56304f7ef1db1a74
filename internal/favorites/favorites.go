package favorites

import "github.com/sirupsen/logrus"

type FavoritesLogHook struct{}

func (h *FavoritesLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Favorites: " + entry.Message
	return nil
}

func (h *FavoritesLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
