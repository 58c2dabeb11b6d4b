package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/catalog"
)

type SearchProductInput struct {
	Query      string `json:"query"`
	Category   string `json:"category,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchProductOutput struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
}

func (s *Set) searchProductTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchProduct,
			Desc: "Busca productos y servicios disponibles en el catálogo del negocio. Devuelve datos estructurados con ID, nombre, precio y disponibilidad. Usa esta herramienta cuando el cliente mencione cualquier producto o servicio. Busca siempre por palabra en singular (ej: 'arepa', no 'arepas').",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Palabras clave de búsqueda en español. Ejemplos: miel, café, arepa, mochila, asesoría, domicilio.",
					Required: true,
				},
				"category": {
					Type: "string",
					Desc: "Filtro opcional por categoría. Categorías disponibles: alimentos, artesanias, servicios",
				},
				"max_results": {
					Type: "number",
					Desc: "Número máximo de productos a devolver (por defecto: 10, máximo: 20)",
				},
			}),
		},
		func(ctx context.Context, in *SearchProductInput) (*SearchProductOutput, error) {
			if in.Query == "" {
				return nil, fmt.Errorf("query is required")
			}

			if in.MaxResults == 0 {
				in.MaxResults = 10
			}

			products, err := s.catalog.Search(in.Query, in.Category, in.MaxResults)
			if err != nil {
				return nil, fmt.Errorf("search catalog: %w", err)
			}

			return &SearchProductOutput{
				Products: products,
				Total:    len(products),
			}, nil
		},
	)
}
