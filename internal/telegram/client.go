package telegram

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	ErrMissingTarget   = errors.New("telegram: edit needs a chat and message id or an inline message id")
	ErrAmbiguousTarget = errors.New("telegram: edit accepts a chat and message id or an inline message id, not both")
)

// Transport is the subset of *tgbotapi.BotAPI the client calls.
type Transport interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
	GetChatAdministrators(config tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
	GetChatMembersCount(config tgbotapi.ChatMemberCountConfig) (int, error)
}

// Options configures the HTTP transport shared by every client.
type Options struct {
	// APIEndpoint is a format string taking the token and method name.
	// Defaults to tgbotapi.APIEndpoint.
	APIEndpoint string

	// Timeout bounds a single HTTP request. Zero means no timeout.
	Timeout time.Duration

	Debug bool

	// HTTPClient overrides the default *http.Client.
	HTTPClient tgbotapi.HTTPClient
}

// Dial authorizes the token against the Bot API and returns the shared
// transport.
func Dial(token string, opts Options) (*tgbotapi.BotAPI, error) {
	endpoint := opts.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot.Debug = opts.Debug
	slog.Info("Authorized on Telegram account", "username", bot.Self.UserName)

	return bot, nil
}

// Client issues Bot API calls. Every method takes the target identifier
// first, followed by the operation's own arguments.
type Client struct {
	api Transport
}

func NewClient(api Transport) *Client {
	return &Client{api: api}
}

func (c *Client) AnswerInlineQuery(inlineQueryID string, results []interface{}, extra *InlineExtra) error {
	config := tgbotapi.InlineConfig{
		InlineQueryID: inlineQueryID,
		Results:       results,
	}
	if config.Results == nil {
		config.Results = []interface{}{}
	}
	if extra != nil {
		config.CacheTime = extra.CacheTime
		config.IsPersonal = extra.IsPersonal
		config.NextOffset = extra.NextOffset
		config.SwitchPMText = extra.SwitchPMText
		config.SwitchPMParameter = extra.SwitchPMParameter
	}

	if _, err := c.api.Request(config); err != nil {
		return fmt.Errorf("failed to answer inline query: %w", err)
	}
	return nil
}

func (c *Client) AnswerCallbackQuery(callbackQueryID, text string, showAlert bool) error {
	config := tgbotapi.NewCallback(callbackQueryID, text)
	config.ShowAlert = showAlert

	if _, err := c.api.Request(config); err != nil {
		return fmt.Errorf("failed to answer callback query: %w", err)
	}
	return nil
}

func (c *Client) SendMessage(chatID int64, text string, extra *Extra) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	extra.applyChat(&msg.BaseChat)
	msg.ParseMode = extra.parseMode()
	if extra != nil {
		msg.DisableWebPagePreview = extra.DisableWebPagePreview
	}

	sent, err := c.api.Send(msg)
	if err != nil {
		return tgbotapi.Message{}, fmt.Errorf("failed to send message: %w", err)
	}
	return sent, nil
}

func (c *Client) GetChat(chatID int64) (tgbotapi.Chat, error) {
	chat, err := c.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return tgbotapi.Chat{}, fmt.Errorf("failed to get chat: %w", err)
	}
	return chat, nil
}

func (c *Client) LeaveChat(chatID int64) error {
	if _, err := c.api.Request(tgbotapi.LeaveChatConfig{ChatID: chatID}); err != nil {
		return fmt.Errorf("failed to leave chat: %w", err)
	}
	return nil
}

func (c *Client) GetChatAdministrators(chatID int64) ([]tgbotapi.ChatMember, error) {
	admins, err := c.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get chat administrators: %w", err)
	}
	return admins, nil
}

func (c *Client) GetChatMember(chatID, userID int64) (tgbotapi.ChatMember, error) {
	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
	if err != nil {
		return tgbotapi.ChatMember{}, fmt.Errorf("failed to get chat member: %w", err)
	}
	return member, nil
}

func (c *Client) GetChatMembersCount(chatID int64) (int, error) {
	count, err := c.api.GetChatMembersCount(tgbotapi.ChatMemberCountConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get chat members count: %w", err)
	}
	return count, nil
}

func (c *Client) SendPhoto(chatID int64, photo tgbotapi.RequestFileData, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewPhoto(chatID, photo)
	extra.applyChat(&config.BaseChat)
	config.Caption = extra.caption()
	config.ParseMode = extra.parseMode()
	return c.send("photo", config)
}

func (c *Client) SendAudio(chatID int64, audio tgbotapi.RequestFileData, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewAudio(chatID, audio)
	extra.applyChat(&config.BaseChat)
	config.Caption = extra.caption()
	config.ParseMode = extra.parseMode()
	return c.send("audio", config)
}

func (c *Client) SendDocument(chatID int64, document tgbotapi.RequestFileData, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewDocument(chatID, document)
	extra.applyChat(&config.BaseChat)
	config.Caption = extra.caption()
	config.ParseMode = extra.parseMode()
	return c.send("document", config)
}

func (c *Client) SendSticker(chatID int64, sticker tgbotapi.RequestFileData, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewSticker(chatID, sticker)
	extra.applyChat(&config.BaseChat)
	return c.send("sticker", config)
}

func (c *Client) SendVideo(chatID int64, video tgbotapi.RequestFileData, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewVideo(chatID, video)
	extra.applyChat(&config.BaseChat)
	config.Caption = extra.caption()
	config.ParseMode = extra.parseMode()
	return c.send("video", config)
}

func (c *Client) SendVoice(chatID int64, voice tgbotapi.RequestFileData, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewVoice(chatID, voice)
	extra.applyChat(&config.BaseChat)
	config.Caption = extra.caption()
	config.ParseMode = extra.parseMode()
	return c.send("voice", config)
}

func (c *Client) SendChatAction(chatID int64, action string) error {
	if _, err := c.api.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		return fmt.Errorf("failed to send chat action: %w", err)
	}
	return nil
}

func (c *Client) SendLocation(chatID int64, latitude, longitude float64, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewLocation(chatID, latitude, longitude)
	extra.applyChat(&config.BaseChat)
	return c.send("location", config)
}

func (c *Client) SendVenue(chatID int64, latitude, longitude float64, title, address string, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewVenue(chatID, title, address, latitude, longitude)
	extra.applyChat(&config.BaseChat)
	return c.send("venue", config)
}

func (c *Client) SendContact(chatID int64, phoneNumber, firstName string, extra *Extra) (tgbotapi.Message, error) {
	config := tgbotapi.NewContact(chatID, phoneNumber, firstName)
	extra.applyChat(&config.BaseChat)
	return c.send("contact", config)
}

// EditMessageText edits either the chat message chatID/messageID or the
// inline message inlineMessageID.
func (c *Client) EditMessageText(chatID int64, messageID int, inlineMessageID, text string, extra *Extra) error {
	base, err := editTarget(chatID, messageID, inlineMessageID)
	if err != nil {
		return err
	}
	base.ReplyMarkup = extra.inlineMarkup()

	config := tgbotapi.EditMessageTextConfig{
		BaseEdit:  base,
		Text:      text,
		ParseMode: extra.parseMode(),
	}
	if extra != nil {
		config.DisableWebPagePreview = extra.DisableWebPagePreview
	}

	if _, err := c.api.Request(config); err != nil {
		return fmt.Errorf("failed to edit message text: %w", err)
	}
	return nil
}

func (c *Client) EditMessageCaption(chatID int64, messageID int, inlineMessageID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	base, err := editTarget(chatID, messageID, inlineMessageID)
	if err != nil {
		return err
	}
	base.ReplyMarkup = markup

	config := tgbotapi.EditMessageCaptionConfig{
		BaseEdit: base,
		Caption:  caption,
	}

	if _, err := c.api.Request(config); err != nil {
		return fmt.Errorf("failed to edit message caption: %w", err)
	}
	return nil
}

func (c *Client) EditMessageReplyMarkup(chatID int64, messageID int, inlineMessageID string, markup *tgbotapi.InlineKeyboardMarkup) error {
	base, err := editTarget(chatID, messageID, inlineMessageID)
	if err != nil {
		return err
	}
	base.ReplyMarkup = markup

	if _, err := c.api.Request(tgbotapi.EditMessageReplyMarkupConfig{BaseEdit: base}); err != nil {
		return fmt.Errorf("failed to edit message reply markup: %w", err)
	}
	return nil
}

func (c *Client) send(kind string, config tgbotapi.Chattable) (tgbotapi.Message, error) {
	sent, err := c.api.Send(config)
	if err != nil {
		return tgbotapi.Message{}, fmt.Errorf("failed to send %s: %w", kind, err)
	}
	return sent, nil
}

func editTarget(chatID int64, messageID int, inlineMessageID string) (tgbotapi.BaseEdit, error) {
	byChat := chatID != 0 || messageID != 0
	byInline := inlineMessageID != ""

	switch {
	case byChat && byInline:
		return tgbotapi.BaseEdit{}, ErrAmbiguousTarget
	case byInline:
		return tgbotapi.BaseEdit{InlineMessageID: inlineMessageID}, nil
	case chatID != 0 && messageID != 0:
		return tgbotapi.BaseEdit{ChatID: chatID, MessageID: messageID}, nil
	}
	return tgbotapi.BaseEdit{}, ErrMissingTarget
}
