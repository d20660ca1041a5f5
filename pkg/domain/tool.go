package domain

// ToolCall is one planned tool invocation.
type ToolCall struct {
	Name string         `json:"name" mapstructure:"name"`
	Args map[string]any `json:"args,omitempty" mapstructure:"args"`
}

// ToolOutcome is the recorded result of one tool invocation.
// Outcomes are appended in plan order; a failed tool yields an outcome
// with IsError set instead of aborting the remaining plan.
type ToolOutcome struct {
	Tool    string `json:"tool"`
	Result  any    `json:"result,omitempty"`
	IsError bool   `json:"is_error,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ToolDescriptor describes a registered tool for listing and schema generation.
type ToolDescriptor struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Parameters  map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}
