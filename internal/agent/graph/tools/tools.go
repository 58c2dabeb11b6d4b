package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/catalog"
)

// Tool names bound to the response model.
const (
	ToolSearchProduct     = "search_product"
	ToolGetProductDetails = "get_product_details"
	ToolCalculator        = "calculator"
)

// Set holds the business tools available to the assistant, bound to the
// product catalog they query.
type Set struct {
	catalog *catalog.Repository
}

// NewSet builds the tool set over the given catalog.
func NewSet(cat *catalog.Repository) *Set {
	return &Set{catalog: cat}
}

// All returns every tool for binding into the tools node.
func (s *Set) All() []tool.BaseTool {
	return []tool.BaseTool{
		s.searchProductTool(),
		s.productDetailsTool(),
		calculatorTool(),
	}
}

// Infos extracts the ToolInfo of every tool for model binding.
func Infos(ctx context.Context, ts []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(ts))
	for _, t := range ts {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
