package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schedly/models"
	"schedly/services/agent"
	"schedly/utils"
)

// ChatRequest is the payload for /api/ai/chat. Context is optional: when
// absent, the stored context for the conversation id is used; when present it
// overrides whatever is stored.
type ChatRequest struct {
	ConversationID string                      `json:"conversationId"`
	Message        string                      `json:"message" binding:"required"`
	Context        *models.ConversationContext `json:"context"`
}

// ChatResponse is one completed conversation turn.
type ChatResponse struct {
	ConversationID string                     `json:"conversationId"`
	Message        string                     `json:"message"`
	Action         models.Action              `json:"action"`
	Context        models.ConversationContext `json:"context"`
}

// AgentHandler serves the conversational endpoints.
type AgentHandler struct {
	Service agent.Service
	Store   agent.ContextStore
}

func NewAgentHandler(svc agent.Service, store agent.ContextStore) *AgentHandler {
	return &AgentHandler{Service: svc, Store: store}
}

// ChatHandler runs one conversation turn and persists the resulting context
// under the conversation id (minted when the client didn't supply one).
func (h *AgentHandler) ChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	convID := req.ConversationID
	if convID == "" {
		convID = uuid.New().String()
	}

	var conv models.ConversationContext
	if req.Context != nil {
		conv = *req.Context
	} else {
		stored, err := h.Store.Get(c.Request.Context(), convID)
		if err != nil {
			logger.Warn("failed to load conversation context, starting fresh",
				zap.String("conversationID", convID), zap.Error(err))
		} else {
			conv = stored
		}
	}

	result := h.Service.ProcessMessage(c.Request.Context(), req.Message, conv)

	if err := h.Store.Set(c.Request.Context(), convID, result.Context); err != nil {
		// The turn still succeeded; the client has the context in the response.
		logger.Warn("failed to persist conversation context",
			zap.String("conversationID", convID), zap.Error(err))
	}

	c.JSON(http.StatusOK, ChatResponse{
		ConversationID: convID,
		Message:        result.Message,
		Action:         result.Action,
		Context:        result.Context,
	})
}

// ResetConversationHandler drops the stored context for a conversation.
func (h *AgentHandler) ResetConversationHandler(c *gin.Context) {
	convID := c.Param("conversationID")
	if err := h.Store.Clear(c.Request.Context(), convID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared", "conversationId": convID})
}
