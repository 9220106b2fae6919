package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/kpoet/kotlin"
)

type JSONEncoder struct {
	w    io.Writer
	spec *kotlin.TypeSpec
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(spec *kotlin.TypeSpec) error {
	e.spec = spec
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildTypeData(e.spec), "", "  ")
}

type jsonType struct {
	Name            string         `json:"name"`
	Kind            string         `json:"kind"`
	Modifiers       []string       `json:"modifiers,omitempty"`
	TypeVariables   []string       `json:"typeVariables,omitempty"`
	Superclass      string         `json:"superclass,omitempty"`
	Superinterfaces []jsonSuper    `json:"superinterfaces,omitempty"`
	Constructor     []jsonParam    `json:"constructor,omitempty"`
	EnumConstants   []jsonConstant `json:"enumConstants,omitempty"`
	Properties      []jsonProperty `json:"properties,omitempty"`
	Functions       []jsonFunction `json:"functions,omitempty"`
	Types           []jsonType     `json:"types,omitempty"`
	Companion       *jsonType      `json:"companion,omitempty"`
}

type jsonSuper struct {
	Type     string `json:"type"`
	Delegate string `json:"delegate,omitempty"`
}

type jsonConstant struct {
	Name string    `json:"name"`
	Body *jsonType `json:"body,omitempty"`
}

type jsonProperty struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Mutable     bool     `json:"mutable,omitempty"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Constructor bool     `json:"constructor,omitempty"`
}

type jsonFunction struct {
	Name        string      `json:"name"`
	ReturnType  string      `json:"returnType,omitempty"`
	Parameters  []jsonParam `json:"parameters,omitempty"`
	Modifiers   []string    `json:"modifiers,omitempty"`
	Constructor bool        `json:"constructor,omitempty"`
}

type jsonParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func buildTypeData(spec *kotlin.TypeSpec) jsonType {
	data := jsonType{
		Name:      declarationName(spec),
		Kind:      spec.Kind().String(),
		Modifiers: modifierStrings(spec.Modifiers()),
	}
	for _, tv := range spec.TypeVariables() {
		data.TypeVariables = append(data.TypeVariables, tv.Name)
	}
	if sc := spec.Superclass(); !sc.IsZero() {
		data.Superclass = sc.String()
	}
	for _, si := range spec.Superinterfaces() {
		data.Superinterfaces = append(data.Superinterfaces, jsonSuper{
			Type:     si.Type.String(),
			Delegate: si.Delegate.String(),
		})
	}
	if pc, ok := spec.PrimaryConstructor(); ok {
		data.Constructor = buildParameters(pc.Parameters)
	}
	for _, c := range spec.EnumConstants() {
		constant := jsonConstant{Name: c.Name}
		if !c.Body.HasNoBody() {
			body := buildTypeData(c.Body)
			constant.Body = &body
		}
		data.EnumConstants = append(data.EnumConstants, constant)
	}
	elided := spec.ConstructorProperties()
	for _, p := range spec.Properties() {
		_, inConstructor := elided[p.Name]
		data.Properties = append(data.Properties, jsonProperty{
			Name:        p.Name,
			Type:        p.Type.String(),
			Mutable:     p.Mutable,
			Modifiers:   modifierStrings(p.Modifiers),
			Constructor: inConstructor,
		})
	}
	for _, f := range spec.Functions() {
		fn := jsonFunction{
			Name:        f.Name,
			Parameters:  buildParameters(f.Parameters),
			Modifiers:   modifierStrings(f.Modifiers),
			Constructor: f.Constructor,
		}
		if !f.ReturnType.IsZero() {
			fn.ReturnType = f.ReturnType.String()
		}
		data.Functions = append(data.Functions, fn)
	}
	for _, n := range spec.NestedTypes() {
		data.Types = append(data.Types, buildTypeData(n))
	}
	if c := spec.Companion(); c != nil {
		companion := buildTypeData(c)
		data.Companion = &companion
	}
	return data
}

func buildParameters(params []kotlin.ParameterSpec) []jsonParam {
	if len(params) == 0 {
		return nil
	}
	result := make([]jsonParam, len(params))
	for i, p := range params {
		result[i] = jsonParam{Name: p.Name, Type: p.Type.String()}
	}
	return result
}
