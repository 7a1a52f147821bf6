package context

// State returns the live scratch map. Writes through it are kept.
func (c *Context) State() map[string]any {
	return c.state
}

// SetState replaces the scratch map with a shallow copy of state. Keys not
// in state are gone afterwards; nested values stay shared.
func (c *Context) SetState(state map[string]any) {
	fresh := make(map[string]any, len(state))
	for k, v := range state {
		fresh[k] = v
	}
	c.state = fresh
}
