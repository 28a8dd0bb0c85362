package telegram

import (
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/config"
	"github.com/peymanh/kharjbot/internal/session"
	"github.com/peymanh/kharjbot/internal/telegram/middleware"
)

// DefaultMiddlewares builds the shared middleware chain: panic recovery,
// optional rate limiting, receipt logging, and per-chat serialization.
func DefaultMiddlewares(cfg *config.Config, sessions session.Manager, onLimited tele.HandlerFunc) []Middleware {
	mws := []Middleware{
		{Name: "recover", Use: middleware.Recover},
	}

	if cfg != nil && cfg.RateLimit.IntervalMS > 0 {
		exclude := make(map[string]struct{}, len(cfg.RateLimit.ExcludeUpdates))
		for _, kind := range cfg.RateLimit.ExcludeUpdates {
			exclude[strings.ToLower(kind)] = struct{}{}
		}
		mws = append(mws, Middleware{
			Name: "rate_limit",
			Use: middleware.RateLimit(middleware.RateLimitOptions{
				Interval:  time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond,
				Exclude:   exclude,
				OnLimited: onLimited,
			}),
		})
	}

	mws = append(mws, Middleware{Name: "logging", Use: middleware.Logging})

	if sessions != nil {
		mws = append(mws, Middleware{
			Name: "serialize",
			Use:  middleware.SerializePerChat(sessions),
		})
	}

	return mws
}
