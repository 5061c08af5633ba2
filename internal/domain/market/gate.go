package market

import "fmt"

// AuthorizeParticipant succeeds iff callerID is the chat participant or the listing owner.
func AuthorizeParticipant(c *Chat, l *Listing, callerID int64) error {
	if c == nil || l == nil {
		return fmt.Errorf("%w: no chat/listing found", ErrUnauthorized)
	}
	if !IsMember(c, l, callerID) {
		return fmt.Errorf("%w: not a participant of this chat", ErrUnauthorized)
	}
	return nil
}

// AuthorizeSendable succeeds iff the listing exists, is not archived and is available.
func AuthorizeSendable(l *Listing) error {
	if l == nil || l.Archived || !l.Available {
		return fmt.Errorf("%w: post archived", ErrUnauthorized)
	}
	return nil
}
