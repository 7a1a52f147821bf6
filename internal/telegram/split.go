package telegram

const (
	// MaxMessageLength is Telegram's limit on message text, in characters.
	MaxMessageLength = 4096

	newlineWindow = 200
)

// SplitMessage cuts text into chunks of at most maxLength runes, preferring
// to break after a newline within the last 200 runes of a chunk. A
// non-positive maxLength returns text unsplit.
func SplitMessage(text string, maxLength int) []string {
	if maxLength <= 0 {
		return []string{text}
	}

	remaining := []rune(text)
	if len(remaining) <= maxLength {
		return []string{text}
	}

	var chunks []string
	for len(remaining) > 0 {
		if len(remaining) <= maxLength {
			chunks = append(chunks, string(remaining))
			break
		}

		splitIndex := maxLength
		for i := maxLength - 1; i >= maxLength-newlineWindow && i > 0; i-- {
			if remaining[i] == '\n' {
				splitIndex = i + 1
				break
			}
		}

		chunks = append(chunks, string(remaining[:splitIndex]))
		remaining = remaining[splitIndex:]
	}

	return chunks
}
