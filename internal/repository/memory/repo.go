package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/chatbot-service/internal/model"
)

// Repository is the in-memory storage backend. It implements the same
// contract as the postgres repository so the two are interchangeable
// behind config.
type Repository struct {
	mu            sync.RWMutex
	conversations map[string]model.Conversation
	messages      map[string][]model.Message
	scenarios     map[model.TenantScope]map[string]model.Scenario
	templates     map[model.TenantScope]map[string]model.Template
	settings      map[model.TenantScope]model.Settings
}

func New() *Repository {
	return &Repository{
		conversations: make(map[string]model.Conversation),
		messages:      make(map[string][]model.Message),
		scenarios:     make(map[model.TenantScope]map[string]model.Scenario),
		templates:     make(map[model.TenantScope]map[string]model.Template),
		settings:      make(map[model.TenantScope]model.Settings),
	}
}

func (r *Repository) Close() {}

// bump returns a timestamp strictly after prev, so updated_at strictly
// increases even when two mutations land within clock resolution.
func bump(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func (r *Repository) ListConversations(_ context.Context) (*model.ConversationList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make(model.ConversationList, 0, len(r.conversations))
	for _, conversation := range r.conversations {
		list = append(list, conversation)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})

	return &list, nil
}

func (r *Repository) CreateConversation(_ context.Context, title string) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if title == "" {
		title = model.DefaultConversationTitle
	}

	now := time.Now().UTC()
	conversation := model.Conversation{
		ID:        uuid.New().String(),
		Title:     title,
		IsPinned:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.conversations[conversation.ID] = conversation
	r.messages[conversation.ID] = nil

	return &conversation, nil
}

func (r *Repository) GetConversation(_ context.Context, id string) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	return &conversation, nil
}

func (r *Repository) UpdateConversation(_ context.Context, id string, patch model.ConversationPatch) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	if patch.Title != nil {
		conversation.Title = *patch.Title
	}
	if patch.IsPinned != nil {
		conversation.IsPinned = *patch.IsPinned
	}
	conversation.UpdatedAt = bump(conversation.UpdatedAt)

	r.conversations[id] = conversation

	return &conversation, nil
}

func (r *Repository) DeleteConversation(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[id]; !ok {
		return model.ErrNotFound
	}

	delete(r.conversations, id)
	delete(r.messages, id)

	return nil
}

func (r *Repository) SaveMessage(_ context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[message.ConversationID]; !ok {
		return model.ErrNotFound
	}

	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], *message)

	return nil
}

func (r *Repository) GetConversationMessages(_ context.Context, conversationID string, offset, limit int64) (*model.MessageList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.conversations[conversationID]; !ok {
		return nil, model.ErrNotFound
	}

	stored := r.messages[conversationID]
	list := make(model.MessageList, len(stored))
	copy(list, stored)

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})

	if offset >= int64(len(list)) {
		empty := model.MessageList{}
		return &empty, nil
	}
	list = list[offset:]
	if limit > 0 && limit < int64(len(list)) {
		list = list[:limit]
	}

	return &list, nil
}

func (r *Repository) TouchConversation(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return model.ErrNotFound
	}

	conversation.UpdatedAt = bump(conversation.UpdatedAt)
	r.conversations[id] = conversation

	return nil
}

func (r *Repository) ListScenarios(_ context.Context, scope model.TenantScope) (*model.ScenarioList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make(model.ScenarioList, 0, len(r.scenarios[scope]))
	for _, scenario := range r.scenarios[scope] {
		list = append(list, scenario)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})

	return &list, nil
}

func (r *Repository) CreateScenario(_ context.Context, scope model.TenantScope, scenario *model.Scenario) (*model.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := *scenario
	stored.ID = uuid.New().String()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if r.scenarios[scope] == nil {
		r.scenarios[scope] = make(map[string]model.Scenario)
	}
	r.scenarios[scope][stored.ID] = stored

	return &stored, nil
}

func (r *Repository) GetScenario(_ context.Context, scope model.TenantScope, id string) (*model.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scenario, ok := r.scenarios[scope][id]
	if !ok {
		return nil, model.ErrNotFound
	}

	return &scenario, nil
}

func (r *Repository) UpdateScenario(_ context.Context, scope model.TenantScope, id string, scenario *model.Scenario) (*model.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.scenarios[scope][id]
	if !ok {
		return nil, model.ErrNotFound
	}

	stored := *scenario
	stored.ID = existing.ID
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = bump(existing.UpdatedAt)

	r.scenarios[scope][id] = stored

	return &stored, nil
}

func (r *Repository) DeleteScenario(_ context.Context, scope model.TenantScope, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scenarios[scope][id]; !ok {
		return model.ErrNotFound
	}

	delete(r.scenarios[scope], id)

	return nil
}

func (r *Repository) ListTemplates(_ context.Context, scope model.TenantScope) (*model.TemplateList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make(model.TemplateList, 0, len(r.templates[scope]))
	for _, template := range r.templates[scope] {
		list = append(list, template)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})

	return &list, nil
}

func (r *Repository) CreateTemplate(_ context.Context, scope model.TenantScope, template *model.Template) (*model.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := *template
	stored.ID = uuid.New().String()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if r.templates[scope] == nil {
		r.templates[scope] = make(map[string]model.Template)
	}
	r.templates[scope][stored.ID] = stored

	return &stored, nil
}

func (r *Repository) GetTemplate(_ context.Context, scope model.TenantScope, id string) (*model.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.templates[scope][id]
	if !ok {
		return nil, model.ErrNotFound
	}

	return &template, nil
}

func (r *Repository) UpdateTemplate(_ context.Context, scope model.TenantScope, id string, template *model.Template) (*model.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.templates[scope][id]
	if !ok {
		return nil, model.ErrNotFound
	}

	stored := *template
	stored.ID = existing.ID
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = bump(existing.UpdatedAt)

	r.templates[scope][id] = stored

	return &stored, nil
}

func (r *Repository) DeleteTemplate(_ context.Context, scope model.TenantScope, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[scope][id]; !ok {
		return model.ErrNotFound
	}

	delete(r.templates[scope], id)

	return nil
}

func (r *Repository) GetSettings(_ context.Context, scope model.TenantScope) (*model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.settings[scope]
	if !ok {
		settings = model.Settings{Data: json.RawMessage("{}")}
	}

	return &settings, nil
}

func (r *Repository) PutSettings(_ context.Context, scope model.TenantScope, data json.RawMessage) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings := model.Settings{
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	r.settings[scope] = settings

	return &settings, nil
}
