// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Conversation endpoints.
	ChatHandler              gin.HandlerFunc
	ResetConversationHandler gin.HandlerFunc

	// Calendar endpoints.
	ListEventsHandler   gin.HandlerFunc
	SuggestTimesHandler gin.HandlerFunc
}
