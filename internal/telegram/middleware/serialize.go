package middleware

import (
	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/session"
)

// SerializePerChat holds a per-chat lock for the duration of each handler so
// concurrent updates from one chat observe session state in order. Updates
// from different chats proceed in parallel.
func SerializePerChat(sessions session.Manager) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				return next(c)
			}
			unlock := sessions.Lock(chat.ID)
			defer unlock()
			return next(c)
		}
	}
}
