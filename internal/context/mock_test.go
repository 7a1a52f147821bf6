package context

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rg/tgctx/internal/telegram"
)

type call struct {
	method string
	args   []any
}

// recordingTelegram records every call and answers with err.
type recordingTelegram struct {
	calls []call
	err   error
}

func (r *recordingTelegram) record(method string, args ...any) {
	r.calls = append(r.calls, call{method: method, args: args})
}

func (r *recordingTelegram) AnswerInlineQuery(inlineQueryID string, results []interface{}, extra *telegram.InlineExtra) error {
	r.record("AnswerInlineQuery", inlineQueryID, results, extra)
	return r.err
}

func (r *recordingTelegram) AnswerCallbackQuery(callbackQueryID, text string, showAlert bool) error {
	r.record("AnswerCallbackQuery", callbackQueryID, text, showAlert)
	return r.err
}

func (r *recordingTelegram) EditMessageText(chatID int64, messageID int, inlineMessageID, text string, extra *telegram.Extra) error {
	r.record("EditMessageText", chatID, messageID, inlineMessageID, text, extra)
	return r.err
}

func (r *recordingTelegram) EditMessageCaption(chatID int64, messageID int, inlineMessageID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	r.record("EditMessageCaption", chatID, messageID, inlineMessageID, caption, markup)
	return r.err
}

func (r *recordingTelegram) EditMessageReplyMarkup(chatID int64, messageID int, inlineMessageID string, markup *tgbotapi.InlineKeyboardMarkup) error {
	r.record("EditMessageReplyMarkup", chatID, messageID, inlineMessageID, markup)
	return r.err
}

func (r *recordingTelegram) SendMessage(chatID int64, text string, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendMessage", chatID, text, extra)
	return tgbotapi.Message{MessageID: 1}, r.err
}

func (r *recordingTelegram) GetChat(chatID int64) (tgbotapi.Chat, error) {
	r.record("GetChat", chatID)
	return tgbotapi.Chat{ID: chatID}, r.err
}

func (r *recordingTelegram) LeaveChat(chatID int64) error {
	r.record("LeaveChat", chatID)
	return r.err
}

func (r *recordingTelegram) GetChatAdministrators(chatID int64) ([]tgbotapi.ChatMember, error) {
	r.record("GetChatAdministrators", chatID)
	return nil, r.err
}

func (r *recordingTelegram) GetChatMember(chatID, userID int64) (tgbotapi.ChatMember, error) {
	r.record("GetChatMember", chatID, userID)
	return tgbotapi.ChatMember{}, r.err
}

func (r *recordingTelegram) GetChatMembersCount(chatID int64) (int, error) {
	r.record("GetChatMembersCount", chatID)
	return 3, r.err
}

func (r *recordingTelegram) SendPhoto(chatID int64, photo tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendPhoto", chatID, photo, extra)
	return tgbotapi.Message{}, r.err
}

func (r *recordingTelegram) SendAudio(chatID int64, audio tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendAudio", chatID, audio, extra)
	return tgbotapi.Message{}, r.err
}

func (r *recordingTelegram) SendDocument(chatID int64, document tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendDocument", chatID, document, extra)
	return tgbotapi.Message{}, r.err
}

func (r *recordingTelegram) SendSticker(chatID int64, sticker tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendSticker", chatID, sticker, extra)
	return tgbotapi.Message{}, r.err
}

func (r *recordingTelegram) SendVideo(chatID int64, video tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendVideo", chatID, video, extra)
	return tgbotapi.Message{}, r.err
}

func (r *recordingTelegram) SendVoice(chatID int64, voice tgbotapi.RequestFileData, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendVoice", chatID, voice, extra)
	return tgbotapi.Message{}, r.err
}

func (r *recordingTelegram) SendChatAction(chatID int64, action string) error {
	r.record("SendChatAction", chatID, action)
	return r.err
}

func (r *recordingTelegram) SendLocation(chatID int64, latitude, longitude float64, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendLocation", chatID, latitude, longitude, extra)
	return tgbotapi.Message{}, r.err
}

func (r *recordingTelegram) SendVenue(chatID int64, latitude, longitude float64, title, address string, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendVenue", chatID, latitude, longitude, title, address, extra)
	return tgbotapi.Message{}, r.err
}

func (r *recordingTelegram) SendContact(chatID int64, phoneNumber, firstName string, extra *telegram.Extra) (tgbotapi.Message, error) {
	r.record("SendContact", chatID, phoneNumber, firstName, extra)
	return tgbotapi.Message{}, r.err
}

var _ Telegram = (*recordingTelegram)(nil)
var _ Telegram = (*telegram.Client)(nil)
