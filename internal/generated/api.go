// Package generated holds the HTTP API surface: request/response models,
// the ServerInterface contract, and chi routing with oapi-codegen/runtime
// parameter binding. It follows the shape of oapi-codegen server output
// and is maintained by hand alongside the handlers.
package generated

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ChatRequest defines model for ChatRequest.
type ChatRequest struct {
	Content        string                  `json:"content"`
	ConversationId *string                 `json:"conversation_id,omitempty"`
	Language       *string                 `json:"language,omitempty"`
	Slots          *map[string]interface{} `json:"slots,omitempty"`
}

// ChatResponse defines model for ChatResponse.
type ChatResponse struct {
	Message  string                  `json:"message"`
	NextNode *map[string]interface{} `json:"next_node"`
	Slots    map[string]interface{}  `json:"slots"`
	Type     string                  `json:"type"`
}

// ConversationSummary defines model for ConversationSummary.
type ConversationSummary struct {
	CreatedAt time.Time `json:"created_at"`
	Id        string    `json:"id"`
	IsPinned  bool      `json:"is_pinned"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationDetail defines model for ConversationDetail.
type ConversationDetail struct {
	CreatedAt time.Time `json:"created_at"`
	Id        string    `json:"id"`
	IsPinned  bool      `json:"is_pinned"`
	Messages  []Message `json:"messages"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateConversationRequest defines model for CreateConversationRequest.
type CreateConversationRequest struct {
	Title *string `json:"title,omitempty"`
}

// UpdateConversationRequest defines model for UpdateConversationRequest.
type UpdateConversationRequest struct {
	IsPinned *bool   `json:"is_pinned,omitempty"`
	Title    *string `json:"title,omitempty"`
}

// Message defines model for Message.
type Message struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Id        string    `json:"id"`
	Role      string    `json:"role"`
}

// NotificationEvent defines model for NotificationEvent.
type NotificationEvent struct {
	ConversationId string    `json:"conversation_id"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

// Position defines model for Position.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size defines model for Size.
type Size struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Node defines model for Node.
type Node struct {
	Data     *json.RawMessage `json:"data,omitempty"`
	Id       string           `json:"id"`
	Position Position         `json:"position"`
	Size     *Size            `json:"size,omitempty"`
	Type     string           `json:"type"`
}

// Edge defines model for Edge.
type Edge struct {
	Id           string  `json:"id"`
	Source       string  `json:"source"`
	SourceHandle *string `json:"source_handle,omitempty"`
	Target       string  `json:"target"`
}

// Scenario defines model for Scenario.
type Scenario struct {
	CreatedAt   time.Time `json:"created_at"`
	Edges       []Edge    `json:"edges"`
	Id          string    `json:"id"`
	Job         string    `json:"job"`
	Name        string    `json:"name"`
	Nodes       []Node    `json:"nodes"`
	StartNodeId *string   `json:"start_node_id,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ScenarioRequest defines model for ScenarioRequest.
type ScenarioRequest struct {
	Edges       *[]Edge `json:"edges,omitempty"`
	Job         *string `json:"job,omitempty"`
	Name        string  `json:"name"`
	Nodes       *[]Node `json:"nodes,omitempty"`
	StartNodeId *string `json:"start_node_id,omitempty"`
}

// Template defines model for Template.
type Template struct {
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	Id        string          `json:"id"`
	Name      string          `json:"name"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TemplateRequest defines model for TemplateRequest.
type TemplateRequest struct {
	Content json.RawMessage `json:"content"`
	Name    string          `json:"name"`
}

// Settings defines model for Settings.
type Settings struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// GetConversationParams defines parameters for GetConversation.
type GetConversationParams struct {
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /chat)
	Chat(w http.ResponseWriter, r *http.Request)
	// (GET /conversations)
	ListConversations(w http.ResponseWriter, r *http.Request)
	// (POST /conversations)
	CreateConversation(w http.ResponseWriter, r *http.Request)
	// (DELETE /conversations/{conversation_id})
	DeleteConversation(w http.ResponseWriter, r *http.Request, conversationId string)
	// (GET /conversations/{conversation_id})
	GetConversation(w http.ResponseWriter, r *http.Request, conversationId string, params GetConversationParams)
	// (PATCH /conversations/{conversation_id})
	UpdateConversation(w http.ResponseWriter, r *http.Request, conversationId string)
	// (GET /events)
	StreamEvents(w http.ResponseWriter, r *http.Request)
	// (GET /tenants/{tenant_id}/stages/{stage}/scenarios)
	ListScenarios(w http.ResponseWriter, r *http.Request, tenantId string, stage string)
	// (POST /tenants/{tenant_id}/stages/{stage}/scenarios)
	CreateScenario(w http.ResponseWriter, r *http.Request, tenantId string, stage string)
	// (DELETE /tenants/{tenant_id}/stages/{stage}/scenarios/{scenario_id})
	DeleteScenario(w http.ResponseWriter, r *http.Request, tenantId string, stage string, scenarioId string)
	// (GET /tenants/{tenant_id}/stages/{stage}/scenarios/{scenario_id})
	GetScenario(w http.ResponseWriter, r *http.Request, tenantId string, stage string, scenarioId string)
	// (PUT /tenants/{tenant_id}/stages/{stage}/scenarios/{scenario_id})
	UpdateScenario(w http.ResponseWriter, r *http.Request, tenantId string, stage string, scenarioId string)
	// (GET /tenants/{tenant_id}/stages/{stage}/settings)
	GetSettings(w http.ResponseWriter, r *http.Request, tenantId string, stage string)
	// (PUT /tenants/{tenant_id}/stages/{stage}/settings)
	UpdateSettings(w http.ResponseWriter, r *http.Request, tenantId string, stage string)
	// (GET /tenants/{tenant_id}/stages/{stage}/templates)
	ListTemplates(w http.ResponseWriter, r *http.Request, tenantId string, stage string)
	// (POST /tenants/{tenant_id}/stages/{stage}/templates)
	CreateTemplate(w http.ResponseWriter, r *http.Request, tenantId string, stage string)
	// (DELETE /tenants/{tenant_id}/stages/{stage}/templates/{template_id})
	DeleteTemplate(w http.ResponseWriter, r *http.Request, tenantId string, stage string, templateId string)
	// (GET /tenants/{tenant_id}/stages/{stage}/templates/{template_id})
	GetTemplate(w http.ResponseWriter, r *http.Request, tenantId string, stage string, templateId string)
	// (PUT /tenants/{tenant_id}/stages/{stage}/templates/{template_id})
	UpdateTemplate(w http.ResponseWriter, r *http.Request, tenantId string, stage string, templateId string)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

func (siw *ServerInterfaceWrapper) bindPathParam(w http.ResponseWriter, r *http.Request, name string, dst *string) bool {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dst, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return false
	}
	return true
}

func (siw *ServerInterfaceWrapper) run(w http.ResponseWriter, r *http.Request, fn func(w http.ResponseWriter, r *http.Request)) {
	handler := http.Handler(http.HandlerFunc(fn))
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

// Chat operation middleware
func (siw *ServerInterfaceWrapper) Chat(w http.ResponseWriter, r *http.Request) {
	siw.run(w, r, siw.Handler.Chat)
}

// ListConversations operation middleware
func (siw *ServerInterfaceWrapper) ListConversations(w http.ResponseWriter, r *http.Request) {
	siw.run(w, r, siw.Handler.ListConversations)
}

// CreateConversation operation middleware
func (siw *ServerInterfaceWrapper) CreateConversation(w http.ResponseWriter, r *http.Request) {
	siw.run(w, r, siw.Handler.CreateConversation)
}

// DeleteConversation operation middleware
func (siw *ServerInterfaceWrapper) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	var conversationId string
	if !siw.bindPathParam(w, r, "conversation_id", &conversationId) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteConversation(w, r, conversationId)
	})
}

// GetConversation operation middleware
func (siw *ServerInterfaceWrapper) GetConversation(w http.ResponseWriter, r *http.Request) {
	var err error

	var conversationId string
	if !siw.bindPathParam(w, r, "conversation_id", &conversationId) {
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetConversationParams

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	// ------------- Optional query parameter "offset" -------------

	err = runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "offset", Err: err})
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetConversation(w, r, conversationId, params)
	})
}

// UpdateConversation operation middleware
func (siw *ServerInterfaceWrapper) UpdateConversation(w http.ResponseWriter, r *http.Request) {
	var conversationId string
	if !siw.bindPathParam(w, r, "conversation_id", &conversationId) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateConversation(w, r, conversationId)
	})
}

// StreamEvents operation middleware
func (siw *ServerInterfaceWrapper) StreamEvents(w http.ResponseWriter, r *http.Request) {
	siw.run(w, r, siw.Handler.StreamEvents)
}

// ListScenarios operation middleware
func (siw *ServerInterfaceWrapper) ListScenarios(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListScenarios(w, r, tenantId, stage)
	})
}

// CreateScenario operation middleware
func (siw *ServerInterfaceWrapper) CreateScenario(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateScenario(w, r, tenantId, stage)
	})
}

// DeleteScenario operation middleware
func (siw *ServerInterfaceWrapper) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage, scenarioId string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) || !siw.bindPathParam(w, r, "scenario_id", &scenarioId) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteScenario(w, r, tenantId, stage, scenarioId)
	})
}

// GetScenario operation middleware
func (siw *ServerInterfaceWrapper) GetScenario(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage, scenarioId string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) || !siw.bindPathParam(w, r, "scenario_id", &scenarioId) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetScenario(w, r, tenantId, stage, scenarioId)
	})
}

// UpdateScenario operation middleware
func (siw *ServerInterfaceWrapper) UpdateScenario(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage, scenarioId string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) || !siw.bindPathParam(w, r, "scenario_id", &scenarioId) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateScenario(w, r, tenantId, stage, scenarioId)
	})
}

// GetSettings operation middleware
func (siw *ServerInterfaceWrapper) GetSettings(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetSettings(w, r, tenantId, stage)
	})
}

// UpdateSettings operation middleware
func (siw *ServerInterfaceWrapper) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateSettings(w, r, tenantId, stage)
	})
}

// ListTemplates operation middleware
func (siw *ServerInterfaceWrapper) ListTemplates(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTemplates(w, r, tenantId, stage)
	})
}

// CreateTemplate operation middleware
func (siw *ServerInterfaceWrapper) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateTemplate(w, r, tenantId, stage)
	})
}

// DeleteTemplate operation middleware
func (siw *ServerInterfaceWrapper) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage, templateId string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) || !siw.bindPathParam(w, r, "template_id", &templateId) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteTemplate(w, r, tenantId, stage, templateId)
	})
}

// GetTemplate operation middleware
func (siw *ServerInterfaceWrapper) GetTemplate(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage, templateId string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) || !siw.bindPathParam(w, r, "template_id", &templateId) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetTemplate(w, r, tenantId, stage, templateId)
	})
}

// UpdateTemplate operation middleware
func (siw *ServerInterfaceWrapper) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var tenantId, stage, templateId string
	if !siw.bindPathParam(w, r, "tenant_id", &tenantId) || !siw.bindPathParam(w, r, "stage", &stage) || !siw.bindPathParam(w, r, "template_id", &templateId) {
		return
	}

	siw.run(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateTemplate(w, r, tenantId, stage, templateId)
	})
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

type UnmarshalingParamError struct {
	ParamName string
	Err       error
}

func (e *UnmarshalingParamError) Error() string {
	return fmt.Sprintf("Error unmarshaling parameter %s as JSON: %s", e.ParamName, e.Err.Error())
}

func (e *UnmarshalingParamError) Unwrap() error {
	return e.Err
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

func HandlerFromMuxWithBaseURL(si ServerInterface, r chi.Router, baseURL string) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseURL:    baseURL,
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/chat", wrapper.Chat)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/conversations", wrapper.ListConversations)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/conversations", wrapper.CreateConversation)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/conversations/{conversation_id}", wrapper.DeleteConversation)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/conversations/{conversation_id}", wrapper.GetConversation)
	})
	r.Group(func(r chi.Router) {
		r.Patch(options.BaseURL+"/conversations/{conversation_id}", wrapper.UpdateConversation)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/events", wrapper.StreamEvents)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/scenarios", wrapper.ListScenarios)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/scenarios", wrapper.CreateScenario)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/scenarios/{scenario_id}", wrapper.DeleteScenario)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/scenarios/{scenario_id}", wrapper.GetScenario)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/scenarios/{scenario_id}", wrapper.UpdateScenario)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/settings", wrapper.GetSettings)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/settings", wrapper.UpdateSettings)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/templates", wrapper.ListTemplates)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/templates", wrapper.CreateTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/templates/{template_id}", wrapper.DeleteTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/templates/{template_id}", wrapper.GetTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/tenants/{tenant_id}/stages/{stage}/templates/{template_id}", wrapper.UpdateTemplate)
	})

	return r
}
