package errors

var (
	// Domain errors — used in usecase/repository
	ErrConversationNotFound = NotFound("conversation not found")
	ErrMessageNotFound      = NotFound("message not found")
	ErrListingNotFound      = NotFound("listing not found")
	ErrUserNotFound         = NotFound("user not found")
	ErrNotParticipant       = Forbidden("not a participant of this conversation")
	ErrSelfConversation     = InvalidArg("cannot start a conversation with yourself")
	ErrEmptyContent         = InvalidArg("message content is required")
	ErrMissingRecipient     = InvalidArg("either conversation id or other user id is required")
	ErrMissingIdentity      = Unauthorized("no authenticated user in request context")
)

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "failed to send message", cause)
}

func ErrConversationLookupFailed(cause error) error {
	return Wrap(CodeInternal, "failed to load conversation", cause)
}
