// Package decl reads declaration documents, YAML, TOML or JSON files that
// describe Kotlin type declarations, and turns them into kotlin.File values.
package decl

// Document is the root of a declaration document.
type Document struct {
	Package string   `yaml:"package" toml:"package" json:"package"`
	Imports []string `yaml:"imports" toml:"imports" json:"imports" validate:"dive,kotlin_type"`
	// Normalize converts names to Kotlin conventions: types to UpperCamel,
	// enum constants to SCREAMING_SNAKE and members to lowerCamel.
	Normalize bool       `yaml:"normalize" toml:"normalize" json:"normalize"`
	Types     []TypeDecl `yaml:"types" toml:"types" json:"types" validate:"required,min=1,dive"`
}

type TypeDecl struct {
	Kind            string               `yaml:"kind" toml:"kind" json:"kind" validate:"required,oneof=class object interface enum annotation"`
	Name            string               `yaml:"name" toml:"name" json:"name" validate:"required"`
	Doc             string               `yaml:"doc" toml:"doc" json:"doc"`
	Modifiers       []string             `yaml:"modifiers" toml:"modifiers" json:"modifiers" validate:"dive,kotlin_modifier"`
	Annotations     []AnnotationDecl     `yaml:"annotations" toml:"annotations" json:"annotations" validate:"dive"`
	TypeVariables   []TypeVariableDecl   `yaml:"typeVariables" toml:"typeVariables" json:"typeVariables" validate:"dive"`
	Constructor     *ConstructorDecl     `yaml:"constructor" toml:"constructor" json:"constructor"`
	Superclass      string               `yaml:"superclass" toml:"superclass" json:"superclass" validate:"omitempty,kotlin_type"`
	SuperclassArgs  []string             `yaml:"superclassArgs" toml:"superclassArgs" json:"superclassArgs"`
	Superinterfaces []SuperinterfaceDecl `yaml:"superinterfaces" toml:"superinterfaces" json:"superinterfaces" validate:"dive"`
	EnumConstants   []EnumConstantDecl   `yaml:"enumConstants" toml:"enumConstants" json:"enumConstants" validate:"dive"`
	Properties      []PropertyDecl       `yaml:"properties" toml:"properties" json:"properties" validate:"dive"`
	Init            []string             `yaml:"init" toml:"init" json:"init"`
	Functions       []FunctionDecl       `yaml:"functions" toml:"functions" json:"functions" validate:"dive"`
	Types           []TypeDecl           `yaml:"types" toml:"types" json:"types" validate:"dive"`
	Companion       *CompanionDecl       `yaml:"companion" toml:"companion" json:"companion"`
}

type AnnotationDecl struct {
	Type    string   `yaml:"type" toml:"type" json:"type" validate:"required,kotlin_type"`
	Members []string `yaml:"members" toml:"members" json:"members"`
	// Target is a use-site target such as "get" or "field".
	Target string `yaml:"target" toml:"target" json:"target"`
}

type TypeVariableDecl struct {
	Name     string   `yaml:"name" toml:"name" json:"name" validate:"required"`
	Bounds   []string `yaml:"bounds" toml:"bounds" json:"bounds" validate:"dive,kotlin_type"`
	Variance string   `yaml:"variance" toml:"variance" json:"variance" validate:"omitempty,oneof=in out"`
	Reified  bool     `yaml:"reified" toml:"reified" json:"reified"`
}

type ConstructorDecl struct {
	Modifiers  []string        `yaml:"modifiers" toml:"modifiers" json:"modifiers" validate:"dive,kotlin_modifier"`
	Parameters []ParameterDecl `yaml:"parameters" toml:"parameters" json:"parameters" validate:"dive"`
	Body       string          `yaml:"body" toml:"body" json:"body"`
}

type ParameterDecl struct {
	Name      string   `yaml:"name" toml:"name" json:"name" validate:"required"`
	Type      string   `yaml:"type" toml:"type" json:"type" validate:"required,kotlin_type"`
	Default   string   `yaml:"default" toml:"default" json:"default"`
	Modifiers []string `yaml:"modifiers" toml:"modifiers" json:"modifiers" validate:"dive,kotlin_modifier"`
	// Property also declares a property initialized from this parameter,
	// which renders as `val name: Type` inside the constructor.
	Property bool `yaml:"property" toml:"property" json:"property"`
	Mutable  bool `yaml:"mutable" toml:"mutable" json:"mutable"`
}

type SuperinterfaceDecl struct {
	Type     string `yaml:"type" toml:"type" json:"type" validate:"required,kotlin_type"`
	Delegate string `yaml:"delegate" toml:"delegate" json:"delegate"`
	// DelegateParameter names a primary constructor parameter to delegate to.
	DelegateParameter string `yaml:"delegateParameter" toml:"delegateParameter" json:"delegateParameter" validate:"excluded_with=Delegate"`
}

type EnumConstantDecl struct {
	Name       string         `yaml:"name" toml:"name" json:"name" validate:"required"`
	Doc        string         `yaml:"doc" toml:"doc" json:"doc"`
	Args       []string       `yaml:"args" toml:"args" json:"args"`
	Properties []PropertyDecl `yaml:"properties" toml:"properties" json:"properties" validate:"dive"`
	Functions  []FunctionDecl `yaml:"functions" toml:"functions" json:"functions" validate:"dive"`
}

type PropertyDecl struct {
	Name        string   `yaml:"name" toml:"name" json:"name" validate:"required"`
	Type        string   `yaml:"type" toml:"type" json:"type" validate:"required,kotlin_type"`
	Doc         string   `yaml:"doc" toml:"doc" json:"doc"`
	Modifiers   []string `yaml:"modifiers" toml:"modifiers" json:"modifiers" validate:"dive,kotlin_modifier"`
	Mutable     bool     `yaml:"mutable" toml:"mutable" json:"mutable"`
	Initializer string   `yaml:"initializer" toml:"initializer" json:"initializer" validate:"excluded_with=Delegate"`
	Delegate    string   `yaml:"delegate" toml:"delegate" json:"delegate"`
	Getter      string   `yaml:"getter" toml:"getter" json:"getter"`
	Setter      string   `yaml:"setter" toml:"setter" json:"setter"`
}

type FunctionDecl struct {
	Name          string             `yaml:"name" toml:"name" json:"name" validate:"required_without=Constructor"`
	Doc           string             `yaml:"doc" toml:"doc" json:"doc"`
	Modifiers     []string           `yaml:"modifiers" toml:"modifiers" json:"modifiers" validate:"dive,kotlin_modifier"`
	TypeVariables []TypeVariableDecl `yaml:"typeVariables" toml:"typeVariables" json:"typeVariables" validate:"dive"`
	Receiver      string             `yaml:"receiver" toml:"receiver" json:"receiver" validate:"omitempty,kotlin_type"`
	Parameters    []ParameterDecl    `yaml:"parameters" toml:"parameters" json:"parameters" validate:"dive"`
	Returns       string             `yaml:"returns" toml:"returns" json:"returns" validate:"omitempty,kotlin_type"`
	Body          string             `yaml:"body" toml:"body" json:"body"`
	// Constructor marks a secondary constructor; Name is ignored.
	Constructor    bool     `yaml:"constructor" toml:"constructor" json:"constructor"`
	Delegation     string   `yaml:"delegation" toml:"delegation" json:"delegation" validate:"omitempty,oneof=this super"`
	DelegationArgs []string `yaml:"delegationArgs" toml:"delegationArgs" json:"delegationArgs"`
}

// CompanionDecl describes a companion object. An empty name declares the
// default `companion object`.
type CompanionDecl struct {
	Name            string               `yaml:"name" toml:"name" json:"name"`
	Doc             string               `yaml:"doc" toml:"doc" json:"doc"`
	Superinterfaces []SuperinterfaceDecl `yaml:"superinterfaces" toml:"superinterfaces" json:"superinterfaces" validate:"dive"`
	Properties      []PropertyDecl       `yaml:"properties" toml:"properties" json:"properties" validate:"dive"`
	Functions       []FunctionDecl       `yaml:"functions" toml:"functions" json:"functions" validate:"dive"`
	Types           []TypeDecl           `yaml:"types" toml:"types" json:"types" validate:"dive"`
}
