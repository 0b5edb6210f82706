package models

// TurnResult is what a single conversation turn produces: the reply to show
// the user, the action that was dispatched, and the context the caller must
// carry into the next turn.
type TurnResult struct {
	Message string              `json:"message"`
	Action  Action              `json:"action"`
	Context ConversationContext `json:"context"`
}
