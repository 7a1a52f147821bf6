package context

import (
	"errors"
	"fmt"
)

var ErrShortcutUnavailable = errors.New("context: shortcut is not available")

// ShortcutError reports a shortcut called on an update that lacks what the
// shortcut needs, such as Reply on an inline query.
type ShortcutError struct {
	Method     string
	UpdateType string
}

func (e *ShortcutError) Error() string {
	updateType := e.UpdateType
	if updateType == "" {
		updateType = "undefined"
	}
	return fmt.Sprintf("%s is not available for %s", e.Method, updateType)
}

func (e *ShortcutError) Is(target error) bool {
	return target == ErrShortcutUnavailable
}

func (c *Context) assertShortcut(ok bool, method string) error {
	if !ok {
		return &ShortcutError{Method: method, UpdateType: c.UpdateType()}
	}
	return nil
}
