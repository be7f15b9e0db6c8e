// Package rules contains the built-in layout validation rules.
package rules

import "github.com/flying-elephant/libwacom/pkg/check"

// RegisterAllRules registers all validation rules with the given registry.
func RegisterAllRules(registry *check.RuleRegistry) {
	RegisterDocumentRules(registry)
	RegisterControlRules(registry)
}

// NewDefaultRegistry creates a new registry with all rules registered.
func NewDefaultRegistry() *check.RuleRegistry {
	registry := check.NewRuleRegistry()
	RegisterAllRules(registry)
	return registry
}
