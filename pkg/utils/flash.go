package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
)

var flashCategories = []string{FlashSuccess, FlashDanger}

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// AddFlash queues a message for the next page render.
func AddFlash(c *gin.Context, category, message string) error {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	return session.Save()
}

// PopFlashes returns and clears every queued message.
func PopFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)

	var flashes []Flash
	for _, category := range flashCategories {
		for _, msg := range session.Flashes(category) {
			if s, ok := msg.(string); ok {
				flashes = append(flashes, Flash{Category: category, Message: s})
			}
		}
	}
	if len(flashes) > 0 {
		_ = session.Save()
	}
	return flashes
}
