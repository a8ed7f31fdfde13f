package core

// Conversation remembers who last wrote to us and whom we last wrote to.
// It is not safe for concurrent use; State guards it.
type Conversation struct {
	lastFrom string
	lastTo   string
}

// RecordInbound sets the last sender.
func (c *Conversation) RecordInbound(name string) {
	c.lastFrom = name
}

// RecordOutbound sets the last recipient. Only call it once the transport
// has accepted the message.
func (c *Conversation) RecordOutbound(name string) {
	c.lastTo = name
}

// LastFrom returns the last sender, if any.
func (c *Conversation) LastFrom() (string, bool) {
	return c.lastFrom, c.lastFrom != ""
}

// LastTo returns the last recipient, if any.
func (c *Conversation) LastTo() (string, bool) {
	return c.lastTo, c.lastTo != ""
}
