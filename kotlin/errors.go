package kotlin

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Rule names the structural invariant a failing builder call violated.
type Rule string

const (
	RuleIdentifier          Rule = "identifier"
	RuleKindFeature         Rule = "kind_feature"
	RuleEnumConstants       Rule = "enum_constants"
	RuleAnnotationBody      Rule = "annotation_body"
	RuleSuperclass          Rule = "superclass"
	RuleDelegation          Rule = "delegation"
	RuleCompanion           Rule = "companion"
	RulePrimaryConstructor  Rule = "primary_constructor"
	RuleInterfaceFunction   Rule = "interface_function"
	RuleExpect              Rule = "expect"
	RuleAbstractFunction    Rule = "abstract_function"
	RuleConstructorConflict Rule = "constructor_conflict"
	RuleAnonymous           Rule = "anonymous"
)

// ConfigError is returned by a Builder call that adds an illegal facet.
type ConfigError struct {
	Rule    Rule
	Message string
}

func (e *ConfigError) Error() string {
	return string(e.Rule) + ": " + e.Message
}

// ValidationError is returned by Build when a whole-object invariant fails.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Rule) + ": " + e.Message
}

func configErrorf(rule Rule, format string, args ...any) error {
	return errors.WithStack(&ConfigError{Rule: rule, Message: fmt.Sprintf(format, args...)})
}

func validationErrorf(rule Rule, format string, args ...any) error {
	return errors.WithStack(&ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)})
}

// RuleOf reports the rule carried by a ConfigError or ValidationError
// anywhere in err's chain.
func RuleOf(err error) (Rule, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Rule, true
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Rule, true
	}
	return "", false
}
