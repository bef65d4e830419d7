package service

type ValidateInput struct {
	Validator  string `json:"validator" binding:"required" validate:"required"`
	Value      any    `json:"value"`
	AllowBlank bool   `json:"allow_blank"`
	MinLength  int    `json:"min_length" binding:"gte=0" validate:"gte=0"`
	MaxLength  int    `json:"max_length" binding:"gte=0" validate:"gte=0"`
}

type ValidateRequest struct {
	Value      any  `json:"value"`
	AllowBlank bool `json:"allow_blank"`
	MinLength  int  `json:"min_length" binding:"gte=0"`
	MaxLength  int  `json:"max_length" binding:"gte=0"`
}

type ValidateOutput struct {
	Validator string `json:"validator"`
	Value     string `json:"value"`
}

type BatchInput struct {
	Items []ValidateInput `json:"items" binding:"required,min=1,dive" validate:"required,min=1,dive"`
}

type BatchResult struct {
	Validator string `json:"validator"`
	Valid     bool   `json:"valid"`
	Value     string `json:"value"`
	Kind      string `json:"kind,omitempty"`
	Message   string `json:"message,omitempty"`
}

type BatchOutput struct {
	Results []BatchResult `json:"results"`
}

type ValidatorOutput struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	Description string `json:"description"`
}

type SubdivisionOutput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
