package bot

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	tgctx "github.com/rg/tgctx/internal/context"
	"github.com/rg/tgctx/internal/telegram"
)

// replyLong replies with text split into as many messages as Telegram's
// length limit requires. Every chunk gets the same extra.
func replyLong(c *tgctx.Context, text string, extra *telegram.Extra) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	chunks := telegram.SplitMessage(text, telegram.MaxMessageLength)
	for i, chunk := range chunks {
		if _, err := c.Reply(chunk, extra); err != nil {
			return fmt.Errorf("failed to send response chunk %d: %w", i+1, err)
		}
	}

	return nil
}

func helpText(commands []command) string {
	var b strings.Builder

	b.WriteString("*Available commands*\n\n")
	b.WriteString("/help - Show this message\n")
	for _, cmd := range commands {
		b.WriteString(fmt.Sprintf("/%s - %s\n", cmd.name, cmd.description))
	}
	b.WriteString("\nInline mode: type @bot and some text in any chat to get it echoed back.")

	return b.String()
}

func formatWhoami(c *tgctx.Context) string {
	var b strings.Builder

	b.WriteString("<b>Update</b>\n")
	b.WriteString(fmt.Sprintf("Type: <code>%s</code>\n", orDash(c.UpdateType())))
	b.WriteString(fmt.Sprintf("Sub-type: <code>%s</code>\n", orDash(c.UpdateSubType())))

	b.WriteString("\n<b>Chat</b>\n")
	if chat := c.Chat(); chat != nil {
		b.WriteString(fmt.Sprintf("ID: <code>%d</code>\n", chat.ID))
		b.WriteString(fmt.Sprintf("Type: %s\n", html.EscapeString(chat.Type)))
	} else {
		b.WriteString("none\n")
	}

	b.WriteString("\n<b>From</b>\n")
	if from := c.From(); from != nil {
		b.WriteString(fmt.Sprintf("ID: <code>%d</code>\n", from.ID))
		b.WriteString(fmt.Sprintf("Name: %s\n", html.EscapeString(strings.TrimSpace(from.FirstName+" "+from.LastName))))
		if from.UserName != "" {
			b.WriteString(fmt.Sprintf("Username: @%s\n", html.EscapeString(from.UserName)))
		}
	} else {
		b.WriteString("none\n")
	}

	if me := c.Me(); me != "" {
		b.WriteString(fmt.Sprintf("\nAnswered by @%s", html.EscapeString(me)))
	}

	return b.String()
}

type chatInfo struct {
	chat    tgbotapi.Chat
	members int
	admins  int
}

func formatChatInfo(info chatInfo) string {
	var b strings.Builder

	title := info.chat.Title
	if title == "" {
		title = strings.TrimSpace(info.chat.FirstName + " " + info.chat.LastName)
	}

	b.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(orDash(title))))
	b.WriteString(fmt.Sprintf("ID: <code>%d</code>\n", info.chat.ID))
	b.WriteString(fmt.Sprintf("Type: %s\n", html.EscapeString(info.chat.Type)))
	if info.chat.UserName != "" {
		b.WriteString(fmt.Sprintf("Username: @%s\n", html.EscapeString(info.chat.UserName)))
	}
	if !info.chat.IsPrivate() {
		b.WriteString(fmt.Sprintf("Members: %d\n", info.members))
		b.WriteString(fmt.Sprintf("Administrators: %d\n", info.admins))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
