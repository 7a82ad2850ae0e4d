package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chatbot-service/internal/config"
	api "github.com/s21platform/chatbot-service/internal/generated"
	"github.com/s21platform/chatbot-service/internal/model"
)

const defaultMessageLimit = 50

type Handler struct {
	repository DBRepo
	relay      EventRelay
	scheduler  TaskScheduler
	validator  Validator
}

func New(
	repo DBRepo,
	relay EventRelay,
	scheduler TaskScheduler,
	validator Validator,
) *Handler {
	return &Handler{
		repository: repo,
		relay:      relay,
		scheduler:  scheduler,
		validator:  validator,
	}
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Chat")

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateChat(&req); err != nil {
		logger.Error(fmt.Sprintf("chat validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("chat validation failed: %v", err), http.StatusBadRequest)
		return
	}

	responseMsg := fmt.Sprintf(model.EchoResponseFormat, req.Content)

	slots := map[string]interface{}{}
	if req.Slots != nil {
		slots = *req.Slots
	}

	// Messages are only persisted when the request names a conversation the
	// store knows about; otherwise the reply is produced without a trace.
	if req.ConversationId != nil && *req.ConversationId != "" {
		conversation, err := h.repository.GetConversation(r.Context(), *req.ConversationId)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
			h.writeError(w, "failed to get conversation", http.StatusInternalServerError)
			return
		}

		if conversation != nil {
			userMessage := &model.Message{
				ID:             uuid.New().String(),
				ConversationID: conversation.ID,
				Role:           model.RoleUser,
				Content:        req.Content,
				CreatedAt:      time.Now().UTC(),
			}
			if err := h.repository.SaveMessage(r.Context(), userMessage); err != nil {
				logger.Error(fmt.Sprintf("failed to save user message: %v", err))
				h.writeError(w, "failed to save message", http.StatusInternalServerError)
				return
			}

			if strings.Contains(req.Content, model.DelayTrigger) {
				responseMsg = model.ProcessingMessage
				h.scheduler.ScheduleReply(conversation.ID)
			} else {
				assistantMessage := &model.Message{
					ID:             uuid.New().String(),
					ConversationID: conversation.ID,
					Role:           model.RoleAssistant,
					Content:        responseMsg,
					CreatedAt:      time.Now().UTC(),
				}
				if err := h.repository.SaveMessage(r.Context(), assistantMessage); err != nil {
					logger.Error(fmt.Sprintf("failed to save assistant message: %v", err))
					h.writeError(w, "failed to save message", http.StatusInternalServerError)
					return
				}
			}

			if err := h.repository.TouchConversation(r.Context(), conversation.ID); err != nil {
				logger.Error(fmt.Sprintf("failed to touch conversation: %v", err))
			}
		}
	}

	response := api.ChatResponse{
		Type:     model.TextResponseType,
		Message:  responseMsg,
		Slots:    slots,
		NextNode: nil,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListConversations")

	conversations, err := h.repository.ListConversations(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list conversations: %v", err))
		h.writeError(w, "failed to list conversations", http.StatusInternalServerError)
		return
	}

	response := make([]api.ConversationSummary, len(*conversations))
	for i, conversation := range *conversations {
		response[i] = toAPIConversation(conversation)
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	var req api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	title := ""
	if req.Title != nil {
		title = *req.Title
	}

	conversation, err := h.repository.CreateConversation(r.Context(), title)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create conversation: %v", err))
		h.writeError(w, "failed to create conversation", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIConversation(*conversation), http.StatusCreated)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request, conversationId string, params api.GetConversationParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversation")

	limit := defaultMessageLimit
	if params.Limit != nil {
		limit = *params.Limit
	}
	offset := 0
	if params.Offset != nil {
		offset = *params.Offset
	}

	if limit < 1 || offset < 0 {
		logger.Error(fmt.Sprintf("invalid pagination: limit=%d offset=%d", limit, offset))
		h.writeError(w, "limit must be >= 1 and offset must be >= 0", http.StatusBadRequest)
		return
	}

	conversation, err := h.repository.GetConversation(r.Context(), conversationId)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "conversation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeError(w, "failed to get conversation", http.StatusInternalServerError)
		return
	}

	messages, err := h.repository.GetConversationMessages(r.Context(), conversationId, int64(offset), int64(limit))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, "failed to fetch messages", http.StatusInternalServerError)
		return
	}

	apiMessages := make([]api.Message, len(*messages))
	for i, message := range *messages {
		apiMessages[i] = api.Message{
			Id:        message.ID,
			Role:      message.Role,
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		}
	}

	response := api.ConversationDetail{
		Id:        conversation.ID,
		Title:     conversation.Title,
		IsPinned:  conversation.IsPinned,
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
		Messages:  apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) UpdateConversation(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateConversation")

	var req api.UpdateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateUpdateConversation(&req); err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	conversation, err := h.repository.UpdateConversation(r.Context(), conversationId, model.ConversationPatch{
		Title:    req.Title,
		IsPinned: req.IsPinned,
	})
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "conversation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update conversation: %v", err))
		h.writeError(w, "failed to update conversation", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIConversation(*conversation), http.StatusOK)
}

func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteConversation")

	err := h.repository.DeleteConversation(r.Context(), conversationId)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "conversation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete conversation: %v", err))
		h.writeError(w, "failed to delete conversation", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request, tenantId string, stage string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListScenarios")

	scenarios, err := h.repository.ListScenarios(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list scenarios: %v", err))
		h.writeError(w, "failed to list scenarios", http.StatusInternalServerError)
		return
	}

	response := make([]api.Scenario, len(*scenarios))
	for i, scenario := range *scenarios {
		response[i] = toAPIScenario(scenario)
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request, tenantId string, stage string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateScenario")

	var req api.ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateScenario(&req); err != nil {
		logger.Error(fmt.Sprintf("scenario validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("scenario validation failed: %v", err), http.StatusBadRequest)
		return
	}

	scenario, err := h.repository.CreateScenario(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, fromAPIScenarioRequest(&req))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create scenario: %v", err))
		h.writeError(w, "failed to create scenario", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIScenario(*scenario), http.StatusCreated)
}

func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request, tenantId string, stage string, scenarioId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetScenario")

	scenario, err := h.repository.GetScenario(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, scenarioId)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "scenario not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get scenario: %v", err))
		h.writeError(w, "failed to get scenario", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIScenario(*scenario), http.StatusOK)
}

func (h *Handler) UpdateScenario(w http.ResponseWriter, r *http.Request, tenantId string, stage string, scenarioId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateScenario")

	var req api.ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateScenario(&req); err != nil {
		logger.Error(fmt.Sprintf("scenario validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("scenario validation failed: %v", err), http.StatusBadRequest)
		return
	}

	scenario, err := h.repository.UpdateScenario(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, scenarioId, fromAPIScenarioRequest(&req))
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "scenario not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update scenario: %v", err))
		h.writeError(w, "failed to update scenario", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIScenario(*scenario), http.StatusOK)
}

func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request, tenantId string, stage string, scenarioId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteScenario")

	err := h.repository.DeleteScenario(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, scenarioId)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "scenario not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete scenario: %v", err))
		h.writeError(w, "failed to delete scenario", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request, tenantId string, stage string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListTemplates")

	templates, err := h.repository.ListTemplates(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list templates: %v", err))
		h.writeError(w, "failed to list templates", http.StatusInternalServerError)
		return
	}

	response := make([]api.Template, len(*templates))
	for i, template := range *templates {
		response[i] = toAPITemplate(template)
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request, tenantId string, stage string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateTemplate")

	var req api.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateTemplate(&req); err != nil {
		logger.Error(fmt.Sprintf("template validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("template validation failed: %v", err), http.StatusBadRequest)
		return
	}

	template, err := h.repository.CreateTemplate(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, &model.Template{
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create template: %v", err))
		h.writeError(w, "failed to create template", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPITemplate(*template), http.StatusCreated)
}

func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request, tenantId string, stage string, templateId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTemplate")

	template, err := h.repository.GetTemplate(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, templateId)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "template not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get template: %v", err))
		h.writeError(w, "failed to get template", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPITemplate(*template), http.StatusOK)
}

func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request, tenantId string, stage string, templateId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateTemplate")

	var req api.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateTemplate(&req); err != nil {
		logger.Error(fmt.Sprintf("template validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("template validation failed: %v", err), http.StatusBadRequest)
		return
	}

	template, err := h.repository.UpdateTemplate(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, templateId, &model.Template{
		Name:    req.Name,
		Content: req.Content,
	})
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "template not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update template: %v", err))
		h.writeError(w, "failed to update template", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPITemplate(*template), http.StatusOK)
}

func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request, tenantId string, stage string, templateId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteTemplate")

	err := h.repository.DeleteTemplate(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, templateId)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "template not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete template: %v", err))
		h.writeError(w, "failed to delete template", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request, tenantId string, stage string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSettings")

	settings, err := h.repository.GetSettings(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get settings: %v", err))
		h.writeError(w, "failed to get settings", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.Settings{Data: settings.Data, UpdatedAt: settings.UpdatedAt}, http.StatusOK)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request, tenantId string, stage string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateSettings")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read request body: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !json.Valid(body) {
		logger.Error("settings payload is not valid json")
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	settings, err := h.repository.PutSettings(r.Context(), model.TenantScope{TenantID: tenantId, Stage: stage}, body)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to put settings: %v", err))
		h.writeError(w, "failed to put settings", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.Settings{Data: settings.Data, UpdatedAt: settings.UpdatedAt}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func toAPIConversation(conversation model.Conversation) api.ConversationSummary {
	return api.ConversationSummary{
		Id:        conversation.ID,
		Title:     conversation.Title,
		IsPinned:  conversation.IsPinned,
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
	}
}

func toAPIScenario(scenario model.Scenario) api.Scenario {
	nodes := make([]api.Node, len(scenario.Nodes))
	for i, node := range scenario.Nodes {
		apiNode := api.Node{
			Id:   node.ID,
			Type: node.Type,
			Position: api.Position{
				X: node.Position.X,
				Y: node.Position.Y,
			},
		}
		if len(node.Data) > 0 {
			data := node.Data
			apiNode.Data = &data
		}
		if node.Size != nil {
			apiNode.Size = &api.Size{Width: node.Size.Width, Height: node.Size.Height}
		}
		nodes[i] = apiNode
	}

	edges := make([]api.Edge, len(scenario.Edges))
	for i, edge := range scenario.Edges {
		edges[i] = api.Edge{
			Id:           edge.ID,
			Source:       edge.Source,
			Target:       edge.Target,
			SourceHandle: edge.SourceHandle,
		}
	}

	return api.Scenario{
		Id:          scenario.ID,
		Name:        scenario.Name,
		Job:         scenario.Job,
		Nodes:       nodes,
		Edges:       edges,
		StartNodeId: scenario.StartNodeID,
		CreatedAt:   scenario.CreatedAt,
		UpdatedAt:   scenario.UpdatedAt,
	}
}

func fromAPIScenarioRequest(req *api.ScenarioRequest) *model.Scenario {
	scenario := &model.Scenario{
		Name:        req.Name,
		StartNodeID: req.StartNodeId,
	}
	if req.Job != nil {
		scenario.Job = *req.Job
	}

	if req.Nodes != nil {
		scenario.Nodes = make(model.NodeList, len(*req.Nodes))
		for i, node := range *req.Nodes {
			modelNode := model.Node{
				ID:   node.Id,
				Type: node.Type,
				Position: model.Position{
					X: node.Position.X,
					Y: node.Position.Y,
				},
			}
			if node.Data != nil {
				modelNode.Data = *node.Data
			}
			if node.Size != nil {
				modelNode.Size = &model.Size{Width: node.Size.Width, Height: node.Size.Height}
			}
			scenario.Nodes[i] = modelNode
		}
	}

	if req.Edges != nil {
		scenario.Edges = make(model.EdgeList, len(*req.Edges))
		for i, edge := range *req.Edges {
			scenario.Edges[i] = model.Edge{
				ID:           edge.Id,
				Source:       edge.Source,
				Target:       edge.Target,
				SourceHandle: edge.SourceHandle,
			}
		}
	}

	return scenario
}

func toAPITemplate(template model.Template) api.Template {
	return api.Template{
		Id:        template.ID,
		Name:      template.Name,
		Content:   template.Content,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
