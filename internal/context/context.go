// Package context wraps a single Telegram update for the handler that
// processes it.
//
// A Context classifies the update, resolves the chat and sender wherever
// the update shape keeps them, carries a scratch map for the lifetime of
// the update, and exposes shortcuts that call the Bot API with the right
// target filled in. A Context is built for one update and dropped once the
// handler returns.
package context

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rg/tgctx/internal/platform"
	"github.com/rg/tgctx/internal/telegram"
)

// Telegram is the Bot API surface the shortcuts delegate to.
// *telegram.Client implements it.
type Telegram interface {
	AnswerInlineQuery(inlineQueryID string, results []interface{}, extra *telegram.InlineExtra) error
	AnswerCallbackQuery(callbackQueryID, text string, showAlert bool) error

	EditMessageText(chatID int64, messageID int, inlineMessageID, text string, extra *telegram.Extra) error
	EditMessageCaption(chatID int64, messageID int, inlineMessageID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error
	EditMessageReplyMarkup(chatID int64, messageID int, inlineMessageID string, markup *tgbotapi.InlineKeyboardMarkup) error

	SendMessage(chatID int64, text string, extra *telegram.Extra) (tgbotapi.Message, error)
	GetChat(chatID int64) (tgbotapi.Chat, error)
	LeaveChat(chatID int64) error
	GetChatAdministrators(chatID int64) ([]tgbotapi.ChatMember, error)
	GetChatMember(chatID, userID int64) (tgbotapi.ChatMember, error)
	GetChatMembersCount(chatID int64) (int, error)

	SendPhoto(chatID int64, photo tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error)
	SendAudio(chatID int64, audio tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error)
	SendDocument(chatID int64, document tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error)
	SendSticker(chatID int64, sticker tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error)
	SendVideo(chatID int64, video tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error)
	SendVoice(chatID int64, voice tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error)
	SendChatAction(chatID int64, action string) error
	SendLocation(chatID int64, latitude, longitude float64, extra *telegram.Extra) (tgbotapi.Message, error)
	SendVenue(chatID int64, latitude, longitude float64, title, address string, extra *telegram.Extra) (tgbotapi.Message, error)
	SendContact(chatID int64, phoneNumber, firstName string, extra *telegram.Extra) (tgbotapi.Message, error)
}

// Options is the static bot configuration visible to handlers.
type Options struct {
	// Username is the bot's own username, without the leading @.
	Username string
}

type Context struct {
	telegram Telegram
	update   *tgbotapi.Update
	options  Options
	state    map[string]any
}

// New wraps update. The client is bound to this Context only.
func New(client Telegram, update *tgbotapi.Update, opts Options) *Context {
	if update == nil {
		update = &tgbotapi.Update{}
	}
	return &Context{
		telegram: client,
		update:   update,
		options:  opts,
		state:    make(map[string]any),
	}
}

// Me returns the bot's own username.
func (c *Context) Me() string {
	return c.options.Username
}

func (c *Context) Telegram() Telegram {
	return c.telegram
}

// Update returns the raw update. Handlers must treat it as read-only.
func (c *Context) Update() *tgbotapi.Update {
	return c.update
}

// UpdateType returns the first recognized update shape present, or "".
func (c *Context) UpdateType() string {
	return platform.UpdateType(c.update)
}

// UpdateSubType returns the message sub-kind of a "message" update, or ""
// for every other shape.
func (c *Context) UpdateSubType() string {
	if c.update.Message == nil {
		return ""
	}
	return platform.MessageSubType(c.update.Message)
}

func (c *Context) Message() *tgbotapi.Message {
	return c.update.Message
}

func (c *Context) EditedMessage() *tgbotapi.Message {
	return c.update.EditedMessage
}

func (c *Context) InlineQuery() *tgbotapi.InlineQuery {
	return c.update.InlineQuery
}

func (c *Context) ChosenInlineResult() *tgbotapi.ChosenInlineResult {
	return c.update.ChosenInlineResult
}

func (c *Context) CallbackQuery() *tgbotapi.CallbackQuery {
	return c.update.CallbackQuery
}

func (c *Context) ChannelPost() *tgbotapi.Message {
	return c.update.ChannelPost
}

func (c *Context) EditedChannelPost() *tgbotapi.Message {
	return c.update.EditedChannelPost
}

func (c *Context) ShippingQuery() *tgbotapi.ShippingQuery {
	return c.update.ShippingQuery
}

func (c *Context) PreCheckoutQuery() *tgbotapi.PreCheckoutQuery {
	return c.update.PreCheckoutQuery
}

// Chat returns the chat of the message, else of the edited message, else
// of the message a callback query is attached to. Inline queries and
// chosen inline results carry no chat, so Chat is nil for them.
func (c *Context) Chat() *tgbotapi.Chat {
	if m := c.update.Message; m != nil && m.Chat != nil {
		return m.Chat
	}
	if m := c.update.EditedMessage; m != nil && m.Chat != nil {
		return m.Chat
	}
	if cq := c.update.CallbackQuery; cq != nil && cq.Message != nil && cq.Message.Chat != nil {
		return cq.Message.Chat
	}
	return nil
}

// From returns the sender, looking at the message, edited message,
// callback query, inline query and chosen inline result in that order.
func (c *Context) From() *tgbotapi.User {
	if m := c.update.Message; m != nil && m.From != nil {
		return m.From
	}
	if m := c.update.EditedMessage; m != nil && m.From != nil {
		return m.From
	}
	if cq := c.update.CallbackQuery; cq != nil && cq.From != nil {
		return cq.From
	}
	if iq := c.update.InlineQuery; iq != nil && iq.From != nil {
		return iq.From
	}
	if r := c.update.ChosenInlineResult; r != nil && r.From != nil {
		return r.From
	}
	return nil
}

func (c *Context) chatID() int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}
