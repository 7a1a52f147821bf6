package bot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	tgctx "github.com/rg/tgctx/internal/context"
	"github.com/rg/tgctx/internal/platform"
	"github.com/rg/tgctx/internal/telegram"
)

// maxSuggestionDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const maxSuggestionDistance = 3

var counterPattern = regexp.MustCompile(`^counter:(inc|dec):(-?\d+)$`)

type command struct {
	name        string
	description string
	handler     HandlerFunc
}

func defaultCommands() []command {
	return []command{
		{"start", "Say hello", handleStart},
		{"whoami", "Show what the bot sees in this update", handleWhoami},
		{"chatinfo", "Show chat details and member counts", handleChatInfo},
		{"counter", "Show a counter with inline buttons", handleCounter},
		{"echo", "Repeat the text after the command", handleEcho},
	}
}

// RegisterDefaults installs the built-in commands, the counter buttons, the
// inline query echo and the unknown command reply.
func RegisterDefaults(b *Bot) {
	commands := defaultCommands()
	help := helpText(commands)

	b.Command("help", func(c *tgctx.Context) error {
		return replyLong(c, help, telegram.LoadExtra(nil).Markdown())
	})
	for _, cmd := range commands {
		b.Command(cmd.name, cmd.handler)
	}

	b.ActionMatch(counterPattern, handleCounterAction)
	b.On(platform.UpdateInlineQuery, handleInlineEcho)
	b.Fallback(unknownCommand(b.Commands))
}

func handleStart(c *tgctx.Context) error {
	name := "there"
	if from := c.From(); from != nil && from.FirstName != "" {
		name = from.FirstName
	}
	_, err := c.Reply(fmt.Sprintf("Hello, %s! Send /help to see what I can do.", name), nil)
	return err
}

func handleWhoami(c *tgctx.Context) error {
	if err := c.ReplyWithChatAction(tgbotapi.ChatTyping); err != nil {
		return err
	}
	_, err := c.ReplyWithHTML(formatWhoami(c), nil)
	return err
}

func handleChatInfo(c *tgctx.Context) error {
	chat, err := c.GetChat()
	if err != nil {
		return err
	}

	info := chatInfo{chat: chat}
	if !chat.IsPrivate() {
		if info.members, err = c.GetChatMembersCount(); err != nil {
			return err
		}
		admins, err := c.GetChatAdministrators()
		if err != nil {
			return err
		}
		info.admins = len(admins)
	}

	_, err = c.ReplyWithHTML(formatChatInfo(info), nil)
	return err
}

func handleEcho(c *tgctx.Context) error {
	_, args, _ := parseCommand(c.Message(), c.Me())
	if args == "" {
		_, err := c.Reply("Usage: /echo <text>", nil)
		return err
	}
	return replyLong(c, args, nil)
}

func handleCounter(c *tgctx.Context) error {
	_, err := c.Reply(counterText(0), telegram.LoadExtra(nil).Markup(counterKeyboard(0)))
	return err
}

// handleCounterAction edits the counter message in place. The current
// value travels in the callback data, so inline messages work the same as
// chat messages.
func handleCounterAction(c *tgctx.Context) error {
	match, _ := c.State()[StateMatch].([]string)
	if len(match) != 3 {
		return c.AnswerCallbackQuery("Malformed counter button", true)
	}

	value, err := strconv.Atoi(match[2])
	if err != nil {
		return c.AnswerCallbackQuery("Malformed counter button", true)
	}
	if match[1] == "inc" {
		value++
	} else {
		value--
	}

	if err := c.EditMessageText(counterText(value), telegram.LoadExtra(nil).Markup(counterKeyboard(value))); err != nil {
		return err
	}
	return c.AnswerCallbackQuery(fmt.Sprintf("Counter is %d", value), false)
}

func handleInlineEcho(c *tgctx.Context) error {
	query := strings.TrimSpace(c.InlineQuery().Query)

	results := []interface{}{}
	if query != "" {
		results = append(results,
			tgbotapi.NewInlineQueryResultArticle("echo", "Echo", query),
			tgbotapi.NewInlineQueryResultArticleMarkdown("shout", "Shout", "*"+strings.ToUpper(query)+"*"),
		)
	}

	return c.AnswerInlineQuery(results, &telegram.InlineExtra{IsPersonal: true})
}

// unknownCommand answers commands no route took, suggesting the closest
// known one. Plain messages are ignored.
func unknownCommand(known func() []string) HandlerFunc {
	return func(c *tgctx.Context) error {
		cmd, _, ok := parseCommand(c.Message(), c.Me())
		if !ok {
			return nil
		}

		text := fmt.Sprintf("Unknown command /%s.", cmd)
		if suggestion := suggestCommand(cmd, known()); suggestion != "" {
			text += fmt.Sprintf(" Did you mean /%s?", suggestion)
		} else {
			text += " Send /help for the list of commands."
		}

		_, err := c.Reply(text, telegram.LoadExtra(nil).InReplyTo(c.Message().MessageID))
		return err
	}
}

// suggestCommand returns the known command closest to cmd, or "" when none
// is within maxSuggestionDistance.
func suggestCommand(cmd string, known []string) string {
	source := []rune(strings.ToLower(cmd))
	best, bestDistance := "", maxSuggestionDistance+1

	for _, candidate := range known {
		distance := levenshtein.DistanceForStrings(source, []rune(candidate), levenshtein.DefaultOptions)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	return best
}

func counterText(value int) string {
	return fmt.Sprintf("Counter: %d", value)
}

func counterKeyboard(value int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("-1", fmt.Sprintf("counter:dec:%d", value)),
			tgbotapi.NewInlineKeyboardButtonData("+1", fmt.Sprintf("counter:inc:%d", value)),
		),
	)
}
