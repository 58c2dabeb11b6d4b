package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

type CalculatorInput struct {
	Expression string `json:"expression"`
}

type CalculatorOutput struct {
	Result string `json:"result"`
}

func calculatorTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCalculator,
			Desc: "Realiza cálculos matemáticos básicos relacionados con productos y precios: totales de varios productos, descuentos, impuestos. Acepta expresiones aritméticas con + - * / % y paréntesis, y devuelve el resultado.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"expression": {
					Type:     "string",
					Desc:     "Expresión aritmética a evaluar. Ejemplos: 3 * 18000, (28000 + 32000) * 0.9, 85000 * 1.19",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *CalculatorInput) (*CalculatorOutput, error) {
			result, err := evalExpression(in.Expression)
			if err != nil {
				// The model copes better with an explanatory result than a
				// hard tool failure.
				return &CalculatorOutput{Result: fmt.Sprintf("Error al realizar el cálculo: %v", err)}, nil
			}
			return &CalculatorOutput{Result: strconv.FormatFloat(round2(result), 'f', -1, 64)}, nil
		},
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// evalExpression evaluates a basic arithmetic expression supporting
// + - * / %, parentheses and unary minus. Anything else is rejected.
func evalExpression(expr string) (float64, error) {
	p := &exprParser{input: strings.TrimSpace(expr)}
	if p.input == "" {
		return 0, fmt.Errorf("la expresión está vacía")
	}
	v, err := p.parseAddSub()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("carácter inesperado en la posición %d", p.pos)
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *exprParser) parseAddSub() (float64, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseMulDiv()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *exprParser) parseMulDiv() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/' && c != '%') {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch c {
		case '*':
			left *= right
		case '/':
			if right == 0 {
				return 0, fmt.Errorf("división por cero")
			}
			left /= right
		case '%':
			if right == 0 {
				return 0, fmt.Errorf("división por cero")
			}
			left = math.Mod(left, right)
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	c, ok := p.peek()
	if ok && c == '-' {
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (float64, error) {
	c, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("expresión incompleta")
	}
	if c == '(' {
		p.pos++
		v, err := p.parseAddSub()
		if err != nil {
			return 0, err
		}
		c, ok = p.peek()
		if !ok || c != ')' {
			return 0, fmt.Errorf("falta paréntesis de cierre")
		}
		p.pos++
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("la expresión no contiene operaciones matemáticas válidas")
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("número inválido %q", p.input[start:p.pos])
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
