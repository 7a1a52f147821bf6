// Package platform lists the update shapes and message sub-kinds the bot
// recognizes, in the order used to classify an update.
package platform

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Update type names.
const (
	UpdateMessage            = "message"
	UpdateEditedMessage      = "edited_message"
	UpdateCallbackQuery      = "callback_query"
	UpdateInlineQuery        = "inline_query"
	UpdateChosenInlineResult = "chosen_inline_result"
	UpdateChannelPost        = "channel_post"
	UpdateEditedChannelPost  = "edited_channel_post"
	UpdateShippingQuery      = "shipping_query"
	UpdatePreCheckoutQuery   = "pre_checkout_query"
	UpdatePoll               = "poll"
	UpdatePollAnswer         = "poll_answer"
	UpdateMyChatMember       = "my_chat_member"
	UpdateChatMember         = "chat_member"
	UpdateChatJoinRequest    = "chat_join_request"
)

type updateKind struct {
	name    string
	present func(u *tgbotapi.Update) bool
}

type messageKind struct {
	name    string
	present func(m *tgbotapi.Message) bool
}

// updateKinds is ordered: the first present kind classifies the update.
var updateKinds = []updateKind{
	{UpdateMessage, func(u *tgbotapi.Update) bool { return u.Message != nil }},
	{UpdateEditedMessage, func(u *tgbotapi.Update) bool { return u.EditedMessage != nil }},
	{UpdateCallbackQuery, func(u *tgbotapi.Update) bool { return u.CallbackQuery != nil }},
	{UpdateInlineQuery, func(u *tgbotapi.Update) bool { return u.InlineQuery != nil }},
	{UpdateChosenInlineResult, func(u *tgbotapi.Update) bool { return u.ChosenInlineResult != nil }},
	{UpdateChannelPost, func(u *tgbotapi.Update) bool { return u.ChannelPost != nil }},
	{UpdateEditedChannelPost, func(u *tgbotapi.Update) bool { return u.EditedChannelPost != nil }},
	{UpdateShippingQuery, func(u *tgbotapi.Update) bool { return u.ShippingQuery != nil }},
	{UpdatePreCheckoutQuery, func(u *tgbotapi.Update) bool { return u.PreCheckoutQuery != nil }},
	{UpdatePoll, func(u *tgbotapi.Update) bool { return u.Poll != nil }},
	{UpdatePollAnswer, func(u *tgbotapi.Update) bool { return u.PollAnswer != nil }},
	{UpdateMyChatMember, func(u *tgbotapi.Update) bool { return u.MyChatMember != nil }},
	{UpdateChatMember, func(u *tgbotapi.Update) bool { return u.ChatMember != nil }},
	{UpdateChatJoinRequest, func(u *tgbotapi.Update) bool { return u.ChatJoinRequest != nil }},
}

var messageKinds = []messageKind{
	{"voice", func(m *tgbotapi.Message) bool { return m.Voice != nil }},
	{"video_note", func(m *tgbotapi.Message) bool { return m.VideoNote != nil }},
	{"video", func(m *tgbotapi.Message) bool { return m.Video != nil }},
	{"venue", func(m *tgbotapi.Message) bool { return m.Venue != nil }},
	{"text", func(m *tgbotapi.Message) bool { return m.Text != "" }},
	{"supergroup_chat_created", func(m *tgbotapi.Message) bool { return m.SuperGroupChatCreated }},
	{"successful_payment", func(m *tgbotapi.Message) bool { return m.SuccessfulPayment != nil }},
	{"sticker", func(m *tgbotapi.Message) bool { return m.Sticker != nil }},
	{"pinned_message", func(m *tgbotapi.Message) bool { return m.PinnedMessage != nil }},
	{"photo", func(m *tgbotapi.Message) bool { return len(m.Photo) > 0 }},
	{"new_chat_title", func(m *tgbotapi.Message) bool { return m.NewChatTitle != "" }},
	{"new_chat_photo", func(m *tgbotapi.Message) bool { return len(m.NewChatPhoto) > 0 }},
	{"new_chat_members", func(m *tgbotapi.Message) bool { return len(m.NewChatMembers) > 0 }},
	{"migrate_to_chat_id", func(m *tgbotapi.Message) bool { return m.MigrateToChatID != 0 }},
	{"migrate_from_chat_id", func(m *tgbotapi.Message) bool { return m.MigrateFromChatID != 0 }},
	{"location", func(m *tgbotapi.Message) bool { return m.Location != nil }},
	{"left_chat_member", func(m *tgbotapi.Message) bool { return m.LeftChatMember != nil }},
	{"invoice", func(m *tgbotapi.Message) bool { return m.Invoice != nil }},
	{"group_chat_created", func(m *tgbotapi.Message) bool { return m.GroupChatCreated }},
	{"game", func(m *tgbotapi.Message) bool { return m.Game != nil }},
	{"document", func(m *tgbotapi.Message) bool { return m.Document != nil }},
	{"delete_chat_photo", func(m *tgbotapi.Message) bool { return m.DeleteChatPhoto }},
	{"contact", func(m *tgbotapi.Message) bool { return m.Contact != nil }},
	{"channel_chat_created", func(m *tgbotapi.Message) bool { return m.ChannelChatCreated }},
	{"audio", func(m *tgbotapi.Message) bool { return m.Audio != nil }},
	{"passport_data", func(m *tgbotapi.Message) bool { return m.PassportData != nil }},
	{"connected_website", func(m *tgbotapi.Message) bool { return m.ConnectedWebsite != "" }},
	{"animation", func(m *tgbotapi.Message) bool { return m.Animation != nil }},
	{"poll", func(m *tgbotapi.Message) bool { return m.Poll != nil }},
	{"dice", func(m *tgbotapi.Message) bool { return m.Dice != nil }},
}

// UpdateTypes returns the recognized update type names in classification order.
func UpdateTypes() []string {
	names := make([]string, len(updateKinds))
	for i, k := range updateKinds {
		names[i] = k.name
	}
	return names
}

// MessageSubTypes returns the recognized message sub-kinds in classification order.
func MessageSubTypes() []string {
	names := make([]string, len(messageKinds))
	for i, k := range messageKinds {
		names[i] = k.name
	}
	return names
}

// UpdateType returns the first update type present in u, or "" if none is.
func UpdateType(u *tgbotapi.Update) string {
	if u == nil {
		return ""
	}
	for _, k := range updateKinds {
		if k.present(u) {
			return k.name
		}
	}
	return ""
}

// MessageSubType returns the first sub-kind present in m, or "" if none is.
func MessageSubType(m *tgbotapi.Message) string {
	if m == nil {
		return ""
	}
	for _, k := range messageKinds {
		if k.present(m) {
			return k.name
		}
	}
	return ""
}

func IsUpdateType(name string) bool {
	for _, k := range updateKinds {
		if k.name == name {
			return true
		}
	}
	return false
}

func IsMessageSubType(name string) bool {
	for _, k := range messageKinds {
		if k.name == name {
			return true
		}
	}
	return false
}
