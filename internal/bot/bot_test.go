package bot

import (
	"regexp"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgctx "github.com/rg/tgctx/internal/context"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCmd  string
		wantArgs string
		wantOK   bool
	}{
		{"plain", "/start", "start", "", true},
		{"with_args", "/echo hello world", "echo", "hello world", true},
		{"newline_args", "/echo\nline", "echo", "line", true},
		{"addressed_to_me", "/start@demo_bot", "start", "", true},
		{"addressed_case_insensitive", "/start@Demo_Bot now", "start", "now", true},
		{"addressed_to_other", "/start@other_bot", "", "", false},
		{"not_a_command", "start", "", "", false},
		{"bare_slash", "/", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, ok := parseCommand(&tgbotapi.Message{Text: tt.text}, "demo_bot")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}

	t.Run("nil_message", func(t *testing.T) {
		_, _, ok := parseCommand(nil, "demo_bot")
		assert.False(t, ok)
	})
}

func TestBot_Command(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"/ping", true},
		{"/ping@demo_bot", true},
		{"/ping extra args", true},
		{"/ping@other_bot", false},
		{"/pingx", false},
		{"ping", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			b := New(&fakeAPI{}, tgctx.Options{Username: "demo_bot"})
			called := false
			b.Command("/ping", func(c *tgctx.Context) error {
				called = true
				return nil
			})

			require.NoError(t, b.HandleUpdate(textUpdate(1, tt.text)))
			assert.Equal(t, tt.want, called)
		})
	}
}

func TestBot_Commands(t *testing.T) {
	b := New(&fakeAPI{}, tgctx.Options{})
	noop := func(c *tgctx.Context) error { return nil }
	b.Command("start", noop)
	b.Command("/help", noop)

	commands := b.Commands()
	assert.Equal(t, []string{"start", "help"}, commands)

	commands[0] = "changed"
	assert.Equal(t, "start", b.Commands()[0], "Commands must return a copy")
}

func TestBot_FirstMatchingRouteWins(t *testing.T) {
	b := New(&fakeAPI{}, tgctx.Options{})
	var got []string
	b.On("message", func(c *tgctx.Context) error {
		got = append(got, "on_message")
		return nil
	})
	b.On("text", func(c *tgctx.Context) error {
		got = append(got, "on_text")
		return nil
	})

	require.NoError(t, b.HandleUpdate(textUpdate(1, "hi")))
	assert.Equal(t, []string{"on_message"}, got)
}

func TestBot_On(t *testing.T) {
	b := New(&fakeAPI{}, tgctx.Options{})
	var got []string
	b.On("photo", func(c *tgctx.Context) error {
		got = append(got, "photo")
		return nil
	})
	b.On("inline_query", func(c *tgctx.Context) error {
		got = append(got, "inline_query")
		return nil
	})

	photo := tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:  &tgbotapi.Chat{ID: 1},
		Photo: []tgbotapi.PhotoSize{{FileID: "f"}},
	}}
	inline := tgbotapi.Update{InlineQuery: &tgbotapi.InlineQuery{ID: "iq"}}

	require.NoError(t, b.HandleUpdate(photo))
	require.NoError(t, b.HandleUpdate(inline))
	require.NoError(t, b.HandleUpdate(textUpdate(1, "ignored")))

	assert.Equal(t, []string{"photo", "inline_query"}, got)
}

func TestBot_Hears(t *testing.T) {
	b := New(&fakeAPI{}, tgctx.Options{})
	var match []string
	b.Hears(regexp.MustCompile(`^roll (\d+)$`), func(c *tgctx.Context) error {
		match = c.State()[StateMatch].([]string)
		return nil
	})

	require.NoError(t, b.HandleUpdate(textUpdate(1, "roll 20")))
	assert.Equal(t, []string{"roll 20", "20"}, match)

	match = nil
	require.NoError(t, b.HandleUpdate(textUpdate(1, "roll dice")))
	assert.Nil(t, match)
}

func TestBot_Action(t *testing.T) {
	b := New(&fakeAPI{}, tgctx.Options{})
	var got []string
	b.Action("exact", func(c *tgctx.Context) error {
		got = append(got, "exact")
		return nil
	})
	b.ActionMatch(regexp.MustCompile(`^page:(\d+)$`), func(c *tgctx.Context) error {
		got = append(got, "page "+c.State()[StateMatch].([]string)[1])
		return nil
	})

	require.NoError(t, b.HandleUpdate(callbackUpdate("exact")))
	require.NoError(t, b.HandleUpdate(callbackUpdate("page:3")))
	require.NoError(t, b.HandleUpdate(callbackUpdate("exactly")))
	require.NoError(t, b.HandleUpdate(textUpdate(1, "exact")))

	assert.Equal(t, []string{"exact", "page 3"}, got)
}

func TestBot_Fallback(t *testing.T) {
	b := New(&fakeAPI{}, tgctx.Options{})
	b.Command("known", func(c *tgctx.Context) error { return nil })

	var fallbackTypes []string
	b.Fallback(func(c *tgctx.Context) error {
		fallbackTypes = append(fallbackTypes, c.UpdateType())
		return nil
	})

	require.NoError(t, b.HandleUpdate(textUpdate(1, "/known")))
	require.NoError(t, b.HandleUpdate(callbackUpdate("x")))

	assert.Equal(t, []string{"callback_query"}, fallbackTypes)
}

func TestBot_NoRouteNoFallback(t *testing.T) {
	api := &fakeAPI{}
	b := New(api, tgctx.Options{})

	assert.NoError(t, b.HandleUpdate(textUpdate(1, "hi")))
	assert.Empty(t, api.sent)
}

func TestBot_MiddlewareOrder(t *testing.T) {
	b := New(&fakeAPI{}, tgctx.Options{})
	var order []string
	trace := func(name string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(c *tgctx.Context) error {
				order = append(order, name+" before")
				err := next(c)
				order = append(order, name+" after")
				return err
			}
		}
	}
	b.Use(trace("a"), trace("b"))
	b.On("message", func(c *tgctx.Context) error {
		order = append(order, "handler")
		return nil
	})

	require.NoError(t, b.HandleUpdate(textUpdate(1, "hi")))
	assert.Equal(t, []string{"a before", "b before", "handler", "b after", "a after"}, order)
}

func TestBot_StateIsPerUpdate(t *testing.T) {
	b := New(&fakeAPI{}, tgctx.Options{})
	var seen []int
	b.Use(func(next HandlerFunc) HandlerFunc {
		return func(c *tgctx.Context) error {
			count, _ := c.State()["count"].(int)
			c.State()["count"] = count + 1
			return next(c)
		}
	})
	b.On("message", func(c *tgctx.Context) error {
		seen = append(seen, c.State()["count"].(int))
		return nil
	})

	require.NoError(t, b.HandleUpdate(textUpdate(1, "one")))
	require.NoError(t, b.HandleUpdate(textUpdate(1, "two")))

	assert.Equal(t, []int{1, 1}, seen)
}

func TestBot_HandlerRepliesThroughBoundClient(t *testing.T) {
	api := &fakeAPI{}
	b := New(api, tgctx.Options{Username: "demo_bot"})
	b.Command("ping", func(c *tgctx.Context) error {
		assert.Equal(t, "demo_bot", c.Me())
		_, err := c.Reply("pong", nil)
		return err
	})

	require.NoError(t, b.HandleUpdate(textUpdate(77, "/ping")))

	msgs := api.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, int64(77), msgs[0].ChatID)
	assert.Equal(t, "pong", msgs[0].Text)
}

func TestBot_HandlerErrorIsReturned(t *testing.T) {
	api := &fakeAPI{}
	b := New(api, tgctx.Options{})
	b.On("inline_query", func(c *tgctx.Context) error {
		_, err := c.Reply("no chat here", nil)
		return err
	})

	err := b.HandleUpdate(tgbotapi.Update{InlineQuery: &tgbotapi.InlineQuery{ID: "iq"}})

	assert.ErrorIs(t, err, tgctx.ErrShortcutUnavailable)
	assert.Empty(t, api.sent)
}
