package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasksplit/internal/domain"
)

// ShowConfigTemplateInput contains the input for the ShowConfigTemplate use case.
type ShowConfigTemplateInput struct{}

// ShowConfigTemplateOutput contains the output of the ShowConfigTemplate use case.
type ShowConfigTemplateOutput struct {
	Template string // Configuration template content
}

// ShowConfigTemplate generates a configuration template and returns it as a string.
// It does not read any configuration file, so it works even when they are broken.
type ShowConfigTemplate struct {
	configManager domain.ConfigManager
}

// NewShowConfigTemplate creates a new ShowConfigTemplate use case.
func NewShowConfigTemplate(configManager domain.ConfigManager) *ShowConfigTemplate {
	return &ShowConfigTemplate{configManager: configManager}
}

// Execute generates and returns a configuration template.
func (uc *ShowConfigTemplate) Execute(_ context.Context, _ ShowConfigTemplateInput) (*ShowConfigTemplateOutput, error) {
	template, err := uc.configManager.Template()
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return &ShowConfigTemplateOutput{Template: template}, nil
}
