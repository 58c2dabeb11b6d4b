package model

// ================ Config ================
type ConversationConfig struct {
	// TTL is how long conversation history survives in Redis without a
	// new message. Parsed with time.ParseDuration at startup.
	TTL string `envconfig:"CONVERSATION_TTL" default:"24h"`
	// MaxTurns bounds how many stored messages are replayed into the
	// model context per query.
	MaxTurns int `envconfig:"CONVERSATION_MAX_TURNS" default:"30"`
	Tools    struct {
		MaxCalls int `envconfig:"CONVERSATION_TOOL_MAX_CALLS" default:"10"`
	}
}

type ResponseModelConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.6"`
}

type PromptConfig struct {
	BusinessName    string `envconfig:"PROMPT_BUSINESS_NAME" default:"Liwaisi Tech"`
	BusinessType    string `envconfig:"PROMPT_BUSINESS_TYPE" default:"micronegocio de productos y servicios"`
	AssistantName   string `envconfig:"PROMPT_ASSISTANT_NAME" default:"Sara"`
	BusinessHours   string `envconfig:"PROMPT_BUSINESS_HOURS" default:"Lunes a Viernes de 8:00 AM a 6:00 PM (UTC-5)"`
	BusinessAddress string `envconfig:"PROMPT_BUSINESS_ADDRESS" default:"Calle Principal #123, Barrio Centro, Maní, Casanare, Colombia"`
	BusinessPhone   string `envconfig:"PROMPT_BUSINESS_PHONE" default:"+57 365 842 5187"`
	BusinessEmail   string `envconfig:"PROMPT_BUSINESS_EMAIL" default:"info@liwaisi.tech"`
}
