package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Dig operation error messages
	ErrMsgStartDigFailed    = "Failed to start dig session"
	ErrMsgExcavateFailed    = "Failed to excavate cell"
	ErrMsgGetSessionFailed  = "Failed to get dig session"
	ErrMsgAcknowledgeFailed = "Failed to close out dig"

	// Collection error messages
	ErrMsgGetCollectionFailed   = "Failed to get collection"
	ErrMsgGetAchievementsFailed = "Failed to get achievements"
	ErrMsgGetAllowanceFailed    = "Failed to get daily allowance"

	// Memory error messages
	ErrMsgGetMemoriesFailed   = "Failed to get memories"
	ErrMsgCreateMemoryFailed  = "Failed to seal memory"
	ErrMsgAddCommentFailed    = "Failed to add comment"
	ErrMsgSearchFailed        = "Failed to perform search"
	ErrMsgInvalidMemoryIDHTTP = "Invalid memory ID"

	// Profile error messages
	ErrMsgGetProfileFailed    = "Failed to get profile"
	ErrMsgUpdateProfileFailed = "Failed to update profile"
)

// Success messages for API responses
const (
	MsgMemorySealedSuccess  = "Memory sealed successfully"
	MsgCommentAddedSuccess  = "Comment added successfully"
	MsgProfileSavedSuccess  = "Profile saved successfully"
	MsgSessionClosedSuccess = "Dig closed out"
)
