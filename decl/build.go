package decl

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dhamidi/kpoet/kotlin"
	"github.com/iancoleman/strcase"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("kpoet.decl")

// Build turns a validated document into a file. Errors carry the path of the
// offending declaration, e.g. types[0].functions[1].
func Build(doc *Document) (*kotlin.File, error) {
	b := &builder{normalize: doc.Normalize}
	file := &kotlin.File{Package: doc.Package, Imports: doc.Imports}
	for i, td := range doc.Types {
		spec, err := b.typeSpec(td, fmt.Sprintf("types[%d]", i))
		if err != nil {
			return nil, err
		}
		file.Types = append(file.Types, spec)
	}
	return file, nil
}

type builder struct {
	normalize bool
}

func at(path string, err error) error {
	return errors.Wrap(err, path)
}

func (b *builder) typeName(s string) string {
	if !b.normalize || strings.HasPrefix(s, "`") {
		return s
	}
	return strcase.ToCamel(s)
}

func (b *builder) memberName(s string) string {
	if !b.normalize || strings.HasPrefix(s, "`") {
		return s
	}
	return strcase.ToLowerCamel(s)
}

func (b *builder) constantName(s string) string {
	if !b.normalize || strings.HasPrefix(s, "`") {
		return s
	}
	return strcase.ToScreamingSnake(s)
}

// literal wraps document text as code. A trailing newline from block scalars
// is dropped so that bodies do not end in a blank line.
func literal(s string) kotlin.CodeBlock {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return kotlin.CodeBlock{}
	}
	return kotlin.Code("%L", s)
}

func literals(ss []string) []kotlin.CodeBlock {
	var out []kotlin.CodeBlock
	for _, s := range ss {
		out = append(out, literal(s))
	}
	return out
}

func parseType(s string) (kotlin.TypeName, error) {
	t, err := kotlin.ParseTypeName(s)
	if err != nil {
		return kotlin.TypeName{}, errors.Wrapf(err, "type %q", s)
	}
	return t, nil
}

func parseModifiers(names []string) ([]kotlin.Modifier, error) {
	var mods []kotlin.Modifier
	for _, n := range names {
		m, ok := kotlin.ParseModifier(n)
		if !ok {
			return nil, errors.Newf("unknown modifier %q", n)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

func (b *builder) typeSpec(td TypeDecl, path string) (*kotlin.TypeSpec, error) {
	kind, ok := kotlin.ParseKind(td.Kind)
	if !ok {
		return nil, at(path, errors.Newf("unknown kind %q", td.Kind))
	}
	tb, err := kotlin.NewBuilder(kind, b.typeName(td.Name))
	if err != nil {
		return nil, at(path, err)
	}
	if err := b.header(tb, td, path); err != nil {
		return nil, err
	}
	if err := b.members(tb, td, path); err != nil {
		return nil, err
	}
	spec, err := tb.Build()
	if err != nil {
		return nil, at(path, err)
	}
	log.Debugf("built %s %s at %s", kind, spec.Name(), path)
	return spec, nil
}

func (b *builder) header(tb *kotlin.Builder, td TypeDecl, path string) error {
	if doc := literal(td.Doc); !doc.IsEmpty() {
		if err := tb.AddDoc("%L\n", doc); err != nil {
			return at(path+".doc", err)
		}
	}
	mods, err := parseModifiers(td.Modifiers)
	if err != nil {
		return at(path+".modifiers", err)
	}
	if err := tb.AddModifiers(mods...); err != nil {
		return at(path+".modifiers", err)
	}
	for i, ad := range td.Annotations {
		p := fmt.Sprintf("%s.annotations[%d]", path, i)
		a, err := annotation(ad)
		if err != nil {
			return at(p, err)
		}
		if err := tb.AddAnnotation(a); err != nil {
			return at(p, err)
		}
	}
	for i, vd := range td.TypeVariables {
		p := fmt.Sprintf("%s.typeVariables[%d]", path, i)
		v, err := typeVariable(vd)
		if err != nil {
			return at(p, err)
		}
		if err := tb.AddTypeVariable(v); err != nil {
			return at(p, err)
		}
	}
	if td.Constructor != nil {
		if err := b.primaryConstructor(tb, *td.Constructor, path+".constructor"); err != nil {
			return err
		}
	}
	if td.Superclass != "" {
		t, err := parseType(td.Superclass)
		if err != nil {
			return at(path+".superclass", err)
		}
		if err := tb.SetSuperclass(t); err != nil {
			return at(path+".superclass", err)
		}
	}
	for i, arg := range td.SuperclassArgs {
		if err := tb.AddSuperclassConstructorParameter("%L", arg); err != nil {
			return at(fmt.Sprintf("%s.superclassArgs[%d]", path, i), err)
		}
	}
	return b.superinterfaces(tb, td.Superinterfaces, path)
}

func (b *builder) superinterfaces(tb *kotlin.Builder, decls []SuperinterfaceDecl, path string) error {
	for i, sd := range decls {
		p := fmt.Sprintf("%s.superinterfaces[%d]", path, i)
		t, err := parseType(sd.Type)
		if err != nil {
			return at(p, err)
		}
		switch {
		case sd.Delegate != "":
			err = tb.AddSuperinterfaceDelegate(t, "%L", sd.Delegate)
		case sd.DelegateParameter != "":
			err = tb.AddSuperinterfaceByParameter(t, b.memberName(sd.DelegateParameter))
		default:
			err = tb.AddSuperinterface(t)
		}
		if err != nil {
			return at(p, err)
		}
	}
	return nil
}

// primaryConstructor sets the constructor and declares a property for every
// parameter marked as one, so that it folds into the constructor.
func (b *builder) primaryConstructor(tb *kotlin.Builder, cd ConstructorDecl, path string) error {
	params, err := b.parameters(cd.Parameters, path)
	if err != nil {
		return err
	}
	ctor := kotlin.NewConstructor(params...)
	mods, err := parseModifiers(cd.Modifiers)
	if err != nil {
		return at(path+".modifiers", err)
	}
	ctor.Modifiers = kotlin.NewModifierSet(mods...)
	ctor.Body = literal(cd.Body)
	if err := tb.SetPrimaryConstructor(ctor); err != nil {
		return at(path, err)
	}
	for i, pd := range cd.Parameters {
		if !pd.Property {
			continue
		}
		p := params[i]
		prop := kotlin.NewProperty(p.Name, p.Type).WithInitializer("%N", p.Name)
		prop.Mutable = pd.Mutable
		if err := tb.AddProperty(prop); err != nil {
			return at(fmt.Sprintf("%s.parameters[%d]", path, i), err)
		}
	}
	return nil
}

func (b *builder) parameters(decls []ParameterDecl, path string) ([]kotlin.ParameterSpec, error) {
	var out []kotlin.ParameterSpec
	for i, pd := range decls {
		p := fmt.Sprintf("%s.parameters[%d]", path, i)
		t, err := parseType(pd.Type)
		if err != nil {
			return nil, at(p, err)
		}
		mods, err := parseModifiers(pd.Modifiers)
		if err != nil {
			return nil, at(p, err)
		}
		param := kotlin.NewParameter(b.memberName(pd.Name), t, mods...)
		param.Default = literal(pd.Default)
		out = append(out, param)
	}
	return out, nil
}

func annotation(ad AnnotationDecl) (kotlin.AnnotationSpec, error) {
	t, err := parseType(ad.Type)
	if err != nil {
		return kotlin.AnnotationSpec{}, err
	}
	a := kotlin.NewAnnotation(t, literals(ad.Members)...)
	a.UseSiteTarget = ad.Target
	return a, nil
}

func typeVariable(vd TypeVariableDecl) (kotlin.TypeVariable, error) {
	var bounds []kotlin.TypeName
	for _, s := range vd.Bounds {
		t, err := parseType(s)
		if err != nil {
			return kotlin.TypeVariable{}, err
		}
		bounds = append(bounds, t)
	}
	v := kotlin.NewTypeVariable(vd.Name, bounds...)
	v.Reified = vd.Reified
	switch vd.Variance {
	case "out":
		v.Variance = kotlin.Covariant
	case "in":
		v.Variance = kotlin.Contravariant
	}
	return v, nil
}

func (b *builder) members(tb *kotlin.Builder, td TypeDecl, path string) error {
	for i, cd := range td.EnumConstants {
		p := fmt.Sprintf("%s.enumConstants[%d]", path, i)
		body, err := b.constantBody(cd, p)
		if err != nil {
			return err
		}
		if err := tb.AddEnumConstant(b.constantName(cd.Name), body); err != nil {
			return at(p, err)
		}
	}
	if err := b.addProperties(tb, td.Properties, path); err != nil {
		return err
	}
	for i, s := range td.Init {
		if err := tb.AddInitializerBlock(literal(s)); err != nil {
			return at(fmt.Sprintf("%s.init[%d]", path, i), err)
		}
	}
	if err := b.addFunctions(tb, td.Functions, path); err != nil {
		return err
	}
	if err := b.addTypes(tb, td.Types, path); err != nil {
		return err
	}
	if td.Companion != nil {
		return b.companion(tb, *td.Companion, path+".companion")
	}
	return nil
}

func (b *builder) constantBody(cd EnumConstantDecl, path string) (*kotlin.TypeSpec, error) {
	body := kotlin.AnonymousBuilder()
	if doc := literal(cd.Doc); !doc.IsEmpty() {
		if err := body.AddDoc("%L\n", doc); err != nil {
			return nil, at(path+".doc", err)
		}
	}
	for i, arg := range cd.Args {
		if err := body.AddAnonymousArgument("%L", arg); err != nil {
			return nil, at(fmt.Sprintf("%s.args[%d]", path, i), err)
		}
	}
	if err := b.addProperties(body, cd.Properties, path); err != nil {
		return nil, err
	}
	if err := b.addFunctions(body, cd.Functions, path); err != nil {
		return nil, err
	}
	spec, err := body.Build()
	if err != nil {
		return nil, at(path, err)
	}
	return spec, nil
}

func (b *builder) companion(tb *kotlin.Builder, cd CompanionDecl, path string) error {
	name := cd.Name
	if name != "" {
		name = b.typeName(name)
	}
	cb, err := kotlin.CompanionBuilder(name)
	if err != nil {
		return at(path, err)
	}
	if doc := literal(cd.Doc); !doc.IsEmpty() {
		if err := cb.AddDoc("%L\n", doc); err != nil {
			return at(path+".doc", err)
		}
	}
	if err := b.superinterfaces(cb, cd.Superinterfaces, path); err != nil {
		return err
	}
	if err := b.addProperties(cb, cd.Properties, path); err != nil {
		return err
	}
	if err := b.addFunctions(cb, cd.Functions, path); err != nil {
		return err
	}
	if err := b.addTypes(cb, cd.Types, path); err != nil {
		return err
	}
	spec, err := cb.Build()
	if err != nil {
		return at(path, err)
	}
	if err := tb.SetCompanion(spec); err != nil {
		return at(path, err)
	}
	return nil
}

func (b *builder) addProperties(tb *kotlin.Builder, decls []PropertyDecl, path string) error {
	for i, pd := range decls {
		p := fmt.Sprintf("%s.properties[%d]", path, i)
		prop, err := b.property(pd)
		if err != nil {
			return at(p, err)
		}
		if err := tb.AddProperty(prop); err != nil {
			return at(p, err)
		}
	}
	return nil
}

func (b *builder) property(pd PropertyDecl) (kotlin.PropertySpec, error) {
	t, err := parseType(pd.Type)
	if err != nil {
		return kotlin.PropertySpec{}, err
	}
	mods, err := parseModifiers(pd.Modifiers)
	if err != nil {
		return kotlin.PropertySpec{}, err
	}
	prop := kotlin.NewProperty(b.memberName(pd.Name), t, mods...)
	prop.Mutable = pd.Mutable
	prop.Doc = docBlock(pd.Doc)
	switch {
	case pd.Delegate != "":
		prop.Initializer = literal(pd.Delegate)
		prop.Delegated = true
	case pd.Initializer != "":
		prop.Initializer = literal(pd.Initializer)
	}
	if pd.Getter != "" {
		g := kotlin.NewGetter(literal(pd.Getter))
		prop.Getter = &g
	}
	if pd.Setter != "" {
		value := kotlin.NewParameter("value", t)
		s := kotlin.NewSetter(&value, literal(pd.Setter))
		prop.Setter = &s
	}
	return prop, nil
}

func docBlock(s string) kotlin.CodeBlock {
	doc := literal(s)
	if doc.IsEmpty() {
		return doc
	}
	return kotlin.Code("%L\n", doc)
}

func (b *builder) addFunctions(tb *kotlin.Builder, decls []FunctionDecl, path string) error {
	for i, fd := range decls {
		p := fmt.Sprintf("%s.functions[%d]", path, i)
		f, err := b.function(fd, p)
		if err != nil {
			return err
		}
		if err := tb.AddFunction(f); err != nil {
			return at(p, err)
		}
	}
	return nil
}

func (b *builder) function(fd FunctionDecl, path string) (kotlin.FunSpec, error) {
	params, err := b.parameters(fd.Parameters, path)
	if err != nil {
		return kotlin.FunSpec{}, err
	}
	mods, err := parseModifiers(fd.Modifiers)
	if err != nil {
		return kotlin.FunSpec{}, at(path+".modifiers", err)
	}
	var f kotlin.FunSpec
	if fd.Constructor {
		f = kotlin.NewConstructor(params...)
		f.Modifiers = kotlin.NewModifierSet(mods...)
		f.Delegation = fd.Delegation
		f.DelegationArgs = literals(fd.DelegationArgs)
	} else {
		f = kotlin.NewFun(b.memberName(fd.Name), mods...)
		f.Parameters = params
	}
	f.Doc = docBlock(fd.Doc)
	f.Body = literal(fd.Body)
	for i, vd := range fd.TypeVariables {
		v, err := typeVariable(vd)
		if err != nil {
			return kotlin.FunSpec{}, at(fmt.Sprintf("%s.typeVariables[%d]", path, i), err)
		}
		f.TypeVariables = append(f.TypeVariables, v)
	}
	if fd.Receiver != "" {
		if f.Receiver, err = parseType(fd.Receiver); err != nil {
			return kotlin.FunSpec{}, at(path+".receiver", err)
		}
	}
	if fd.Returns != "" {
		if f.ReturnType, err = parseType(fd.Returns); err != nil {
			return kotlin.FunSpec{}, at(path+".returns", err)
		}
	}
	return f, nil
}

func (b *builder) addTypes(tb *kotlin.Builder, decls []TypeDecl, path string) error {
	for i, td := range decls {
		p := fmt.Sprintf("%s.types[%d]", path, i)
		spec, err := b.typeSpec(td, p)
		if err != nil {
			return err
		}
		if err := tb.AddType(spec); err != nil {
			return at(p, err)
		}
	}
	return nil
}
