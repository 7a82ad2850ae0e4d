package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/chatbot-service/internal/config"
	"github.com/s21platform/chatbot-service/internal/model"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) ListConversations(ctx context.Context) (*model.ConversationList, error) {
	query, args, err := sq.Select("id", "title", "is_pinned", "created_at", "updated_at").
		From("conversations").
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversations model.ConversationList
	err = r.connection.SelectContext(ctx, &conversations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %v", err)
	}

	return &conversations, nil
}

func (r *Repository) CreateConversation(ctx context.Context, title string) (*model.Conversation, error) {
	if title == "" {
		title = model.DefaultConversationTitle
	}

	query, args, err := sq.Insert("conversations").
		Columns("id", "title", "is_pinned").
		Values(uuid.New().String(), title, false).
		Suffix("RETURNING id, title, is_pinned, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.connection.GetContext(ctx, &conversation, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %v", err)
	}

	return &conversation, nil
}

func (r *Repository) GetConversation(ctx context.Context, id string) (*model.Conversation, error) {
	query, args, err := sq.Select("id", "title", "is_pinned", "created_at", "updated_at").
		From("conversations").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.connection.GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	return &conversation, nil
}

func (r *Repository) UpdateConversation(ctx context.Context, id string, patch model.ConversationPatch) (*model.Conversation, error) {
	queryBuilder := sq.Update("conversations").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, is_pinned, created_at, updated_at")

	if patch.Title != nil {
		queryBuilder = queryBuilder.Set("title", *patch.Title)
	}
	if patch.IsPinned != nil {
		queryBuilder = queryBuilder.Set("is_pinned", *patch.IsPinned)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.connection.GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update conversation: %v", err)
	}

	return &conversation, nil
}

// DeleteConversation removes the conversation and its messages. The two
// deletes are independent statements, not a transaction.
func (r *Repository) DeleteConversation(ctx context.Context, id string) error {
	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"conversation_id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete conversation messages: %v", err)
	}

	query, args, err = sq.Delete("conversations").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "conversation_id", "role", "content", "created_at").
		Values(message.ID, message.ConversationID, message.Role, message.Content, message.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) GetConversationMessages(ctx context.Context, conversationID string, offset, limit int64) (*model.MessageList, error) {
	if _, err := r.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	queryBuilder := sq.Select("id", "conversation_id", "role", "content", "created_at").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("created_at ASC")

	if offset > 0 {
		queryBuilder = queryBuilder.Offset(uint64(offset))
	}
	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.connection.SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %v", err)
	}

	return &messages, nil
}

func (r *Repository) TouchConversation(ctx context.Context, id string) error {
	query, args, err := sq.Update("conversations").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *Repository) ListScenarios(ctx context.Context, scope model.TenantScope) (*model.ScenarioList, error) {
	query, args, err := sq.Select("id", "name", "job", "nodes", "edges", "start_node_id", "created_at", "updated_at").
		From("scenarios").
		Where(sq.Eq{"tenant_id": scope.TenantID, "stage": scope.Stage}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var scenarios model.ScenarioList
	err = r.connection.SelectContext(ctx, &scenarios, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %v", err)
	}

	return &scenarios, nil
}

func (r *Repository) CreateScenario(ctx context.Context, scope model.TenantScope, scenario *model.Scenario) (*model.Scenario, error) {
	query, args, err := sq.Insert("scenarios").
		Columns("id", "tenant_id", "stage", "name", "job", "nodes", "edges", "start_node_id").
		Values(uuid.New().String(), scope.TenantID, scope.Stage, scenario.Name, scenario.Job, scenario.Nodes, scenario.Edges, scenario.StartNodeID).
		Suffix("RETURNING id, name, job, nodes, edges, start_node_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stored model.Scenario
	err = r.connection.GetContext(ctx, &stored, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario: %v", err)
	}

	return &stored, nil
}

func (r *Repository) GetScenario(ctx context.Context, scope model.TenantScope, id string) (*model.Scenario, error) {
	query, args, err := sq.Select("id", "name", "job", "nodes", "edges", "start_node_id", "created_at", "updated_at").
		From("scenarios").
		Where(sq.Eq{"id": id, "tenant_id": scope.TenantID, "stage": scope.Stage}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var scenario model.Scenario
	err = r.connection.GetContext(ctx, &scenario, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario: %v", err)
	}

	return &scenario, nil
}

func (r *Repository) UpdateScenario(ctx context.Context, scope model.TenantScope, id string, scenario *model.Scenario) (*model.Scenario, error) {
	query, args, err := sq.Update("scenarios").
		Set("name", scenario.Name).
		Set("job", scenario.Job).
		Set("nodes", scenario.Nodes).
		Set("edges", scenario.Edges).
		Set("start_node_id", scenario.StartNodeID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "tenant_id": scope.TenantID, "stage": scope.Stage}).
		Suffix("RETURNING id, name, job, nodes, edges, start_node_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stored model.Scenario
	err = r.connection.GetContext(ctx, &stored, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update scenario: %v", err)
	}

	return &stored, nil
}

func (r *Repository) DeleteScenario(ctx context.Context, scope model.TenantScope, id string) error {
	query, args, err := sq.Delete("scenarios").
		Where(sq.Eq{"id": id, "tenant_id": scope.TenantID, "stage": scope.Stage}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *Repository) ListTemplates(ctx context.Context, scope model.TenantScope) (*model.TemplateList, error) {
	query, args, err := sq.Select("id", "name", "content", "created_at", "updated_at").
		From("templates").
		Where(sq.Eq{"tenant_id": scope.TenantID, "stage": scope.Stage}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var templates model.TemplateList
	err = r.connection.SelectContext(ctx, &templates, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %v", err)
	}

	return &templates, nil
}

func (r *Repository) CreateTemplate(ctx context.Context, scope model.TenantScope, template *model.Template) (*model.Template, error) {
	query, args, err := sq.Insert("templates").
		Columns("id", "tenant_id", "stage", "name", "content").
		Values(uuid.New().String(), scope.TenantID, scope.Stage, template.Name, []byte(template.Content)).
		Suffix("RETURNING id, name, content, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stored model.Template
	err = r.connection.GetContext(ctx, &stored, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %v", err)
	}

	return &stored, nil
}

func (r *Repository) GetTemplate(ctx context.Context, scope model.TenantScope, id string) (*model.Template, error) {
	query, args, err := sq.Select("id", "name", "content", "created_at", "updated_at").
		From("templates").
		Where(sq.Eq{"id": id, "tenant_id": scope.TenantID, "stage": scope.Stage}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var template model.Template
	err = r.connection.GetContext(ctx, &template, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %v", err)
	}

	return &template, nil
}

func (r *Repository) UpdateTemplate(ctx context.Context, scope model.TenantScope, id string, template *model.Template) (*model.Template, error) {
	query, args, err := sq.Update("templates").
		Set("name", template.Name).
		Set("content", []byte(template.Content)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "tenant_id": scope.TenantID, "stage": scope.Stage}).
		Suffix("RETURNING id, name, content, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stored model.Template
	err = r.connection.GetContext(ctx, &stored, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %v", err)
	}

	return &stored, nil
}

func (r *Repository) DeleteTemplate(ctx context.Context, scope model.TenantScope, id string) error {
	query, args, err := sq.Delete("templates").
		Where(sq.Eq{"id": id, "tenant_id": scope.TenantID, "stage": scope.Stage}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete template: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *Repository) GetSettings(ctx context.Context, scope model.TenantScope) (*model.Settings, error) {
	query, args, err := sq.Select("data", "updated_at").
		From("settings").
		Where(sq.Eq{"tenant_id": scope.TenantID, "stage": scope.Stage}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var settings model.Settings
	err = r.connection.GetContext(ctx, &settings, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return &model.Settings{Data: json.RawMessage("{}")}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %v", err)
	}

	return &settings, nil
}

func (r *Repository) PutSettings(ctx context.Context, scope model.TenantScope, data json.RawMessage) (*model.Settings, error) {
	query, args, err := sq.Insert("settings").
		Columns("tenant_id", "stage", "data").
		Values(scope.TenantID, scope.Stage, []byte(data)).
		Suffix("ON CONFLICT (tenant_id, stage) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		Suffix("RETURNING data, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var settings model.Settings
	err = r.connection.GetContext(ctx, &settings, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to put settings: %v", err)
	}

	return &settings, nil
}
