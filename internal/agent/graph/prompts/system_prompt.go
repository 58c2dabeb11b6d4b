package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/graph/tools"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/model"
)

//go:embed template/system_prompt.txt
var systemPrompt string

// RenderSystem renders the assistant system prompt via the Eino prompt
// component, so prompt callbacks fire on every render.
func RenderSystem(ctx context.Context, config model.PromptConfig) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(systemPrompt),
	)
	vars := map[string]any{
		"AssistantName":   config.AssistantName,
		"BusinessName":    config.BusinessName,
		"BusinessType":    config.BusinessType,
		"BusinessHours":   config.BusinessHours,
		"BusinessAddress": config.BusinessAddress,
		"BusinessPhone":   config.BusinessPhone,
		"BusinessEmail":   config.BusinessEmail,
		"SearchTool":      tools.ToolSearchProduct,
		"DetailsTool":     tools.ToolGetProductDetails,
		"CalculatorTool":  tools.ToolCalculator,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}
	return msgs[0].Content, nil
}
