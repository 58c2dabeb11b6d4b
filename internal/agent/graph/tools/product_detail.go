package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

type GetProductDetailsInput struct {
	ProductID string `json:"product_id"`
}

type GetProductDetailsOutput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	InStock     bool    `json:"in_stock"`
}

func (s *Set) productDetailsTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductDetails,
			Desc: "Obtiene la información completa de un producto o servicio: descripción, precio y disponibilidad. Usa esta herramienta cuando el cliente necesite detalles de un producto ya identificado con search_product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "ID del producto obtenido de los resultados de search_product (ej: prod-001, serv-001). Debe ser el ID exacto.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			if in.ProductID == "" {
				return nil, fmt.Errorf("product_id is required")
			}

			p, err := s.catalog.Get(in.ProductID)
			if err != nil {
				return nil, fmt.Errorf("load product: %w", err)
			}
			if p == nil {
				return nil, fmt.Errorf("product not found: %s", in.ProductID)
			}

			return &GetProductDetailsOutput{
				ID:          p.ID,
				Name:        p.Name,
				Category:    p.Category,
				Description: p.Description,
				Price:       p.Price,
				InStock:     p.InStock,
			}, nil
		},
	)
}
