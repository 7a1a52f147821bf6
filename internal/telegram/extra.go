package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Extra holds the optional parameters shared by send and edit requests.
// A nil *Extra means "no options".
type Extra struct {
	ParseMode             string
	ReplyToMessageID      int
	DisableNotification   bool
	DisableWebPagePreview bool
	ReplyMarkup           interface{}
	Caption               string
}

// LoadExtra returns a copy of extra that can be configured without touching
// the caller's value. A nil extra yields an empty one.
func LoadExtra(extra *Extra) *Extra {
	if extra == nil {
		return &Extra{}
	}
	cp := *extra
	return &cp
}

func (e *Extra) Markdown() *Extra {
	e.ParseMode = tgbotapi.ModeMarkdown
	return e
}

func (e *Extra) MarkdownV2() *Extra {
	e.ParseMode = tgbotapi.ModeMarkdownV2
	return e
}

func (e *Extra) HTML() *Extra {
	e.ParseMode = tgbotapi.ModeHTML
	return e
}

func (e *Extra) InReplyTo(messageID int) *Extra {
	e.ReplyToMessageID = messageID
	return e
}

func (e *Extra) NotifyOff() *Extra {
	e.DisableNotification = true
	return e
}

func (e *Extra) WebPreview(enabled bool) *Extra {
	e.DisableWebPagePreview = !enabled
	return e
}

// Markup sets the reply markup: an inline keyboard, reply keyboard,
// keyboard removal or force-reply value.
func (e *Extra) Markup(markup interface{}) *Extra {
	e.ReplyMarkup = markup
	return e
}

func (e *Extra) WithCaption(caption string) *Extra {
	e.Caption = caption
	return e
}

func (e *Extra) applyChat(base *tgbotapi.BaseChat) {
	if e == nil {
		return
	}
	base.ReplyToMessageID = e.ReplyToMessageID
	base.DisableNotification = e.DisableNotification
	if e.ReplyMarkup != nil {
		base.ReplyMarkup = e.ReplyMarkup
	}
}

// inlineMarkup returns the markup when it is an inline keyboard, the only
// kind an edit request accepts.
func (e *Extra) inlineMarkup() *tgbotapi.InlineKeyboardMarkup {
	if e == nil {
		return nil
	}
	switch m := e.ReplyMarkup.(type) {
	case *tgbotapi.InlineKeyboardMarkup:
		return m
	case tgbotapi.InlineKeyboardMarkup:
		return &m
	}
	return nil
}

func (e *Extra) parseMode() string {
	if e == nil {
		return ""
	}
	return e.ParseMode
}

func (e *Extra) caption() string {
	if e == nil {
		return ""
	}
	return e.Caption
}

// InlineExtra holds the optional parameters of an inline query answer.
type InlineExtra struct {
	CacheTime         int
	IsPersonal        bool
	NextOffset        string
	SwitchPMText      string
	SwitchPMParameter string
}
