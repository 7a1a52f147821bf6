// Package bot routes updates to handlers. Each update gets its own Context
// with a freshly bound client, runs through the middleware chain and reaches
// the first route that matches it.
package bot

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	tgctx "github.com/rg/tgctx/internal/context"
	"github.com/rg/tgctx/internal/platform"
	"github.com/rg/tgctx/internal/telegram"
)

// State keys written by the router and its middleware.
const (
	StateMatch       = "bot.match"
	StateTraceID     = "bot.trace_id"
	StateRateLimited = "bot.rate_limited"
)

type HandlerFunc func(c *tgctx.Context) error

// Middleware wraps a handler. Middleware registered first runs outermost.
type Middleware func(next HandlerFunc) HandlerFunc

type route struct {
	match   func(c *tgctx.Context) bool
	handler HandlerFunc
}

type Bot struct {
	api        telegram.Transport
	options    tgctx.Options
	middleware []Middleware
	routes     []route
	fallback   HandlerFunc
	commands   []string
}

func New(api telegram.Transport, opts tgctx.Options) *Bot {
	return &Bot{
		api:     api,
		options: opts,
	}
}

func (b *Bot) Use(mw ...Middleware) {
	b.middleware = append(b.middleware, mw...)
}

// Command handles "/name" and "/name@<bot username>" messages.
func (b *Bot) Command(name string, handler HandlerFunc) {
	name = strings.TrimPrefix(name, "/")
	b.commands = append(b.commands, name)
	b.routes = append(b.routes, route{
		match: func(c *tgctx.Context) bool {
			cmd, _, ok := parseCommand(c.Message(), c.Me())
			return ok && cmd == name
		},
		handler: handler,
	})
}

// Commands returns the registered command names in registration order.
func (b *Bot) Commands() []string {
	return append([]string(nil), b.commands...)
}

// Action handles callback queries whose data equals data.
func (b *Bot) Action(data string, handler HandlerFunc) {
	b.routes = append(b.routes, route{
		match: func(c *tgctx.Context) bool {
			cq := c.CallbackQuery()
			return cq != nil && cq.Data == data
		},
		handler: handler,
	})
}

// ActionMatch handles callback queries whose data matches pattern. The
// submatches are stored in the state under StateMatch.
func (b *Bot) ActionMatch(pattern *regexp.Regexp, handler HandlerFunc) {
	b.routes = append(b.routes, route{
		match: func(c *tgctx.Context) bool {
			cq := c.CallbackQuery()
			if cq == nil {
				return false
			}
			return storeMatch(c, pattern, cq.Data)
		},
		handler: handler,
	})
}

// On handles updates of the given update type or message sub-type, such as
// "inline_query" or "photo".
func (b *Bot) On(kind string, handler HandlerFunc) {
	if !platform.IsUpdateType(kind) && !platform.IsMessageSubType(kind) {
		slog.Warn("Route registered for unknown update kind", "kind", kind)
	}
	b.routes = append(b.routes, route{
		match: func(c *tgctx.Context) bool {
			return c.UpdateType() == kind || c.UpdateSubType() == kind
		},
		handler: handler,
	})
}

// Hears handles messages whose text matches pattern. The submatches are
// stored in the state under StateMatch.
func (b *Bot) Hears(pattern *regexp.Regexp, handler HandlerFunc) {
	b.routes = append(b.routes, route{
		match: func(c *tgctx.Context) bool {
			msg := c.Message()
			if msg == nil || msg.Text == "" {
				return false
			}
			return storeMatch(c, pattern, msg.Text)
		},
		handler: handler,
	})
}

// Fallback handles updates no route matched.
func (b *Bot) Fallback(handler HandlerFunc) {
	b.fallback = handler
}

// HandleUpdate builds the Context for update and runs it through the chain.
func (b *Bot) HandleUpdate(update tgbotapi.Update) error {
	c := tgctx.New(telegram.NewClient(b.api), &update, b.options)
	return b.chain()(c)
}

func (b *Bot) chain() HandlerFunc {
	var h HandlerFunc = b.dispatch
	for i := len(b.middleware) - 1; i >= 0; i-- {
		h = b.middleware[i](h)
	}
	return h
}

func (b *Bot) dispatch(c *tgctx.Context) error {
	for _, r := range b.routes {
		if r.match(c) {
			return r.handler(c)
		}
	}
	if b.fallback != nil {
		return b.fallback(c)
	}
	slog.Debug("Unhandled update", "update_id", c.Update().UpdateID, "update_type", c.UpdateType())
	return nil
}

func storeMatch(c *tgctx.Context, pattern *regexp.Regexp, s string) bool {
	match := pattern.FindStringSubmatch(s)
	if match == nil {
		return false
	}
	c.State()[StateMatch] = match
	return true
}

// parseCommand splits "/cmd@bot args" into its command and arguments.
// Commands addressed to another bot are not reported.
func parseCommand(msg *tgbotapi.Message, me string) (cmd, args string, ok bool) {
	if msg == nil || !strings.HasPrefix(msg.Text, "/") {
		return "", "", false
	}

	head, rest := msg.Text, ""
	if i := strings.IndexFunc(msg.Text, unicode.IsSpace); i >= 0 {
		head, rest = msg.Text[:i], msg.Text[i:]
	}
	cmd = strings.TrimPrefix(head, "/")
	if name, target, addressed := strings.Cut(cmd, "@"); addressed {
		if me == "" || !strings.EqualFold(target, me) {
			return "", "", false
		}
		cmd = name
	}
	if cmd == "" {
		return "", "", false
	}

	return cmd, strings.TrimSpace(rest), true
}
