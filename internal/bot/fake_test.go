package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	tgctx "github.com/rg/tgctx/internal/context"
	"github.com/rg/tgctx/internal/storage"
	"github.com/rg/tgctx/internal/telegram"
)

// fakeAPI stands in for *tgbotapi.BotAPI and records what the bot sends.
type fakeAPI struct {
	sent      []tgbotapi.Chattable
	requested []tgbotapi.Chattable
	chat      tgbotapi.Chat
	err       error
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requested = append(f.requested, c)
	if f.err != nil {
		return nil, f.err
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error) {
	if f.err != nil {
		return tgbotapi.Chat{}, f.err
	}
	chat := f.chat
	chat.ID = config.ChatID
	return chat, nil
}

func (f *fakeAPI) GetChatAdministrators(config tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []tgbotapi.ChatMember{{Status: "creator"}, {Status: "administrator"}}, nil
}

func (f *fakeAPI) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	if f.err != nil {
		return tgbotapi.ChatMember{}, f.err
	}
	return tgbotapi.ChatMember{User: &tgbotapi.User{ID: config.UserID}, Status: "member"}, nil
}

func (f *fakeAPI) GetChatMembersCount(config tgbotapi.ChatMemberCountConfig) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return 5, nil
}

// messages returns the text messages sent so far.
func (f *fakeAPI) messages() []tgbotapi.MessageConfig {
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg)
		}
	}
	return out
}

type fakeJournal struct {
	records []*storage.UpdateRecord
	err     error
}

func (f *fakeJournal) SaveUpdate(rec *storage.UpdateRecord) error {
	f.records = append(f.records, rec)
	return f.err
}

func textUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 10,
			Chat:      &tgbotapi.Chat{ID: chatID, Type: "private"},
			From:      &tgbotapi.User{ID: 99, FirstName: "Ann", UserName: "ann"},
			Text:      text,
		},
	}
}

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 2,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb1",
			From:    &tgbotapi.User{ID: 99},
			Data:    data,
			Message: &tgbotapi.Message{MessageID: 42, Chat: &tgbotapi.Chat{ID: 7}},
		},
	}
}

func newTestContext(api *fakeAPI, update tgbotapi.Update) *tgctx.Context {
	return tgctx.New(telegram.NewClient(api), &update, tgctx.Options{Username: "demo_bot"})
}

var _ telegram.Transport = (*fakeAPI)(nil)
var _ JournalStore = (*storage.Storage)(nil)
