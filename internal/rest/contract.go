//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"encoding/json"

	api "github.com/s21platform/chatbot-service/internal/generated"
	"github.com/s21platform/chatbot-service/internal/model"
)

type DBRepo interface {
	ListConversations(ctx context.Context) (*model.ConversationList, error)
	CreateConversation(ctx context.Context, title string) (*model.Conversation, error)
	GetConversation(ctx context.Context, id string) (*model.Conversation, error)
	UpdateConversation(ctx context.Context, id string, patch model.ConversationPatch) (*model.Conversation, error)
	DeleteConversation(ctx context.Context, id string) error
	SaveMessage(ctx context.Context, message *model.Message) error
	GetConversationMessages(ctx context.Context, conversationID string, offset, limit int64) (*model.MessageList, error)
	TouchConversation(ctx context.Context, id string) error

	ListScenarios(ctx context.Context, scope model.TenantScope) (*model.ScenarioList, error)
	CreateScenario(ctx context.Context, scope model.TenantScope, scenario *model.Scenario) (*model.Scenario, error)
	GetScenario(ctx context.Context, scope model.TenantScope, id string) (*model.Scenario, error)
	UpdateScenario(ctx context.Context, scope model.TenantScope, id string, scenario *model.Scenario) (*model.Scenario, error)
	DeleteScenario(ctx context.Context, scope model.TenantScope, id string) error

	ListTemplates(ctx context.Context, scope model.TenantScope) (*model.TemplateList, error)
	CreateTemplate(ctx context.Context, scope model.TenantScope, template *model.Template) (*model.Template, error)
	GetTemplate(ctx context.Context, scope model.TenantScope, id string) (*model.Template, error)
	UpdateTemplate(ctx context.Context, scope model.TenantScope, id string, template *model.Template) (*model.Template, error)
	DeleteTemplate(ctx context.Context, scope model.TenantScope, id string) error

	GetSettings(ctx context.Context, scope model.TenantScope) (*model.Settings, error)
	PutSettings(ctx context.Context, scope model.TenantScope, data json.RawMessage) (*model.Settings, error)
}

type EventRelay interface {
	Publish(event model.NotificationEvent)
	Next(ctx context.Context) (model.NotificationEvent, error)
}

type TaskScheduler interface {
	ScheduleReply(conversationID string)
}

type Validator interface {
	ValidateChat(req *api.ChatRequest) error
	ValidateUpdateConversation(req *api.UpdateConversationRequest) error
	ValidateScenario(req *api.ScenarioRequest) error
	ValidateTemplate(req *api.TemplateRequest) error
}
