package context

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rg/tgctx/internal/telegram"
)

// Every shortcut checks its prerequisite before touching the client, so a
// ShortcutError never comes with a remote side effect. Client errors are
// returned as they are.

func (c *Context) AnswerInlineQuery(results []interface{}, extra *telegram.InlineExtra) error {
	if err := c.assertShortcut(c.InlineQuery() != nil, "answerInlineQuery"); err != nil {
		return err
	}
	return c.telegram.AnswerInlineQuery(c.InlineQuery().ID, results, extra)
}

func (c *Context) AnswerCallbackQuery(text string, showAlert bool) error {
	if err := c.assertShortcut(c.CallbackQuery() != nil, "answerCallbackQuery"); err != nil {
		return err
	}
	return c.telegram.AnswerCallbackQuery(c.CallbackQuery().ID, text, showAlert)
}

// EditMessageText edits the message the callback query came from: by chat
// and message id when it was a chat message, by inline message id when it
// was sent in inline mode.
func (c *Context) EditMessageText(text string, extra *telegram.Extra) error {
	if err := c.assertShortcut(c.CallbackQuery() != nil, "editMessageText"); err != nil {
		return err
	}
	cq := c.CallbackQuery()
	if cq.Message != nil {
		return c.telegram.EditMessageText(c.chatID(), cq.Message.MessageID, "", text, extra)
	}
	return c.telegram.EditMessageText(0, 0, cq.InlineMessageID, text, extra)
}

func (c *Context) EditMessageCaption(caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	if err := c.assertShortcut(c.CallbackQuery() != nil, "editMessageCaption"); err != nil {
		return err
	}
	cq := c.CallbackQuery()
	if cq.Message != nil {
		return c.telegram.EditMessageCaption(c.chatID(), cq.Message.MessageID, "", caption, markup)
	}
	return c.telegram.EditMessageCaption(0, 0, cq.InlineMessageID, caption, markup)
}

func (c *Context) EditMessageReplyMarkup(markup *tgbotapi.InlineKeyboardMarkup) error {
	if err := c.assertShortcut(c.CallbackQuery() != nil, "editMessageReplyMarkup"); err != nil {
		return err
	}
	cq := c.CallbackQuery()
	if cq.Message != nil {
		return c.telegram.EditMessageReplyMarkup(c.chatID(), cq.Message.MessageID, "", markup)
	}
	return c.telegram.EditMessageReplyMarkup(0, 0, cq.InlineMessageID, markup)
}

func (c *Context) Reply(text string, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "reply"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendMessage(c.chatID(), text, extra)
}

func (c *Context) GetChat() (tgbotapi.Chat, error) {
	if err := c.assertShortcut(c.Chat() != nil, "getChat"); err != nil {
		return tgbotapi.Chat{}, err
	}
	return c.telegram.GetChat(c.chatID())
}

func (c *Context) LeaveChat() error {
	if err := c.assertShortcut(c.Chat() != nil, "leaveChat"); err != nil {
		return err
	}
	return c.telegram.LeaveChat(c.chatID())
}

func (c *Context) GetChatAdministrators() ([]tgbotapi.ChatMember, error) {
	if err := c.assertShortcut(c.Chat() != nil, "getChatAdministrators"); err != nil {
		return nil, err
	}
	return c.telegram.GetChatAdministrators(c.chatID())
}

func (c *Context) GetChatMember(userID int64) (tgbotapi.ChatMember, error) {
	if err := c.assertShortcut(c.Chat() != nil, "getChatMember"); err != nil {
		return tgbotapi.ChatMember{}, err
	}
	return c.telegram.GetChatMember(c.chatID(), userID)
}

func (c *Context) GetChatMembersCount() (int, error) {
	if err := c.assertShortcut(c.Chat() != nil, "getChatMembersCount"); err != nil {
		return 0, err
	}
	return c.telegram.GetChatMembersCount(c.chatID())
}

func (c *Context) ReplyWithPhoto(photo tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithPhoto"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendPhoto(c.chatID(), photo, extra)
}

func (c *Context) ReplyWithAudio(audio tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithAudio"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendAudio(c.chatID(), audio, extra)
}

func (c *Context) ReplyWithDocument(document tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithDocument"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendDocument(c.chatID(), document, extra)
}

func (c *Context) ReplyWithSticker(sticker tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithSticker"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendSticker(c.chatID(), sticker, extra)
}

func (c *Context) ReplyWithVideo(video tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithVideo"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendVideo(c.chatID(), video, extra)
}

func (c *Context) ReplyWithVoice(voice tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithVoice"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendVoice(c.chatID(), voice, extra)
}

func (c *Context) ReplyWithChatAction(action string) error {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithChatAction"); err != nil {
		return err
	}
	return c.telegram.SendChatAction(c.chatID(), action)
}

func (c *Context) ReplyWithLocation(latitude, longitude float64, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithLocation"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendLocation(c.chatID(), latitude, longitude, extra)
}

func (c *Context) ReplyWithVenue(latitude, longitude float64, title, address string, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithVenue"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendVenue(c.chatID(), latitude, longitude, title, address, extra)
}

func (c *Context) ReplyWithContact(phoneNumber, firstName string, extra *telegram.Extra) (tgbotapi.Message, error) {
	if err := c.assertShortcut(c.Chat() != nil, "replyWithContact"); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.telegram.SendContact(c.chatID(), phoneNumber, firstName, extra)
}

// ReplyWithMarkdown replies in Markdown mode. Other fields of extra are
// kept; extra itself is not modified.
func (c *Context) ReplyWithMarkdown(markdown string, extra *telegram.Extra) (tgbotapi.Message, error) {
	return c.Reply(markdown, telegram.LoadExtra(extra).Markdown())
}

func (c *Context) ReplyWithMarkdownV2(markdown string, extra *telegram.Extra) (tgbotapi.Message, error) {
	return c.Reply(markdown, telegram.LoadExtra(extra).MarkdownV2())
}

func (c *Context) ReplyWithHTML(html string, extra *telegram.Extra) (tgbotapi.Message, error) {
	return c.Reply(html, telegram.LoadExtra(extra).HTML())
}
