package extraction

import (
	"errors"
	"fmt"

	"github.com/agenthands/conceptgraph/internal/llm"
)

// Kind classifies why an extraction failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindCredentialMissing
	KindEmptyResponse
	KindMalformedJSON
	KindSchemaViolation
	KindProviderError
	KindInvalidConfig
)

func (k Kind) String() string {
	switch k {
	case KindCredentialMissing:
		return "credential_missing"
	case KindEmptyResponse:
		return "empty_response"
	case KindMalformedJSON:
		return "malformed_json"
	case KindSchemaViolation:
		return "schema_violation"
	case KindProviderError:
		return "provider_error"
	case KindInvalidConfig:
		return "invalid_config"
	default:
		return "unknown"
	}
}

// Rule names the structural check a SchemaViolation failed.
type Rule string

const (
	RuleShape        Rule = "shape"
	RuleMinNodes     Rule = "min_nodes"
	RuleNodeFields   Rule = "node_fields"
	RuleNodeTypes    Rule = "node_types"
	RuleDuplicateID  Rule = "duplicate_id"
	RuleMinGroups    Rule = "min_groups"
	RuleEdgeFields   Rule = "edge_fields"
	RuleEdgeTypes    Rule = "edge_types"
	RuleDanglingEdge Rule = "dangling_edge"
)

// Error is returned for every failed extraction. Subject holds the offending
// identifier when there is one (a duplicate id, a missing edge endpoint).
type Error struct {
	Kind    Kind
	Rule    Rule
	Subject string
	Msg     string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func schemaError(rule Rule, subject string, format string, args ...any) *Error {
	return &Error{
		Kind:    KindSchemaViolation,
		Rule:    rule,
		Subject: subject,
		Msg:     fmt.Sprintf(format, args...),
	}
}

// providerFailure maps a collaborator error onto the taxonomy.
func providerFailure(err error) *Error {
	kind := KindProviderError
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		kind = KindCredentialMissing
	case errors.Is(err, llm.ErrEmptyResponse):
		kind = KindEmptyResponse
	}
	return &Error{Kind: kind, Msg: "llm call failed", Err: err}
}

// ConfigError marks err as a rejected provider configuration.
func ConfigError(err error) *Error {
	return &Error{Kind: KindInvalidConfig, Msg: "invalid llm config", Err: err}
}

// KindOf classifies any error returned by this package or by the llm
// package. Unrelated errors give KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var pe *llm.ProviderError
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		return KindCredentialMissing
	case errors.Is(err, llm.ErrEmptyResponse):
		return KindEmptyResponse
	case errors.As(err, &pe):
		return KindProviderError
	}
	return KindUnknown
}

// Message turns an extraction error into the text shown to users.
func Message(err error) string {
	if err == nil {
		return ""
	}
	switch KindOf(err) {
	case KindCredentialMissing:
		return "API key not set. Please configure an API key for the selected provider."
	case KindEmptyResponse:
		return "API returned empty response."
	case KindMalformedJSON:
		return fmt.Sprintf("Invalid JSON format in API response: %v", errors.Unwrap(err))
	case KindSchemaViolation:
		return fmt.Sprintf("Failed to extract valid knowledge graph (%v). Please modify your input text.", err)
	case KindProviderError:
		return fmt.Sprintf("API call error: %v", err)
	case KindInvalidConfig:
		return fmt.Sprintf("Invalid model configuration: %v", errors.Unwrap(err))
	default:
		return fmt.Sprintf("Error during knowledge extraction: %v", err)
	}
}
