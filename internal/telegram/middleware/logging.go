package middleware

import (
	"context"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/logger"
	"github.com/peymanh/kharjbot/internal/metrics"
	"github.com/peymanh/kharjbot/internal/telegram/callbacks"
)

// UpdateKind classifies an update for logging and metrics.
func UpdateKind(upd tele.Update) string {
	switch {
	case upd.Callback != nil:
		return "callback"
	case upd.Message != nil:
		return "message"
	default:
		return "other"
	}
}

// Logging emits one receipt line per update and counts it.
func Logging(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		upd := c.Update()
		kind := UpdateKind(upd)
		metrics.CountUpdate(kind)

		attrs := []slog.Attr{
			slog.Int("update_id", upd.ID),
			slog.String("kind", kind),
		}
		if chat := c.Chat(); chat != nil {
			attrs = append(attrs, slog.Int64("chat_id", chat.ID))
		}
		if user := c.Sender(); user != nil {
			attrs = append(attrs, slog.Int64("user_id", user.ID))
		}
		if upd.Callback != nil {
			if key := callbacks.CallbackKey(c); key != "" {
				attrs = append(attrs, slog.String("cb_key", key))
			}
		}
		logger.TG.LogAttrs(context.Background(), slog.LevelDebug, "update.received", attrs...)

		return next(c)
	}
}
