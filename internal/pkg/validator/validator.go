package validator

import (
	"fmt"
	"strings"

	api "github.com/s21platform/chatbot-service/internal/generated"
)

const maxContentLength = 4000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateChat(req *api.ChatRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}

func (v *Validator) ValidateUpdateConversation(req *api.UpdateConversationRequest) error {
	if req.Title == nil && req.IsPinned == nil {
		return fmt.Errorf("at least one of title or is_pinned is required")
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	return nil
}

func (v *Validator) ValidateScenario(req *api.ScenarioRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}

	return nil
}

func (v *Validator) ValidateTemplate(req *api.TemplateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("template name is required")
	}

	if len(req.Content) == 0 {
		return fmt.Errorf("template content is required")
	}

	return nil
}
