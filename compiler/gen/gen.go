package gen

import (
	"bytes"
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/audialab/syrinx/schema/field"
	"github.com/audialab/syrinx/variant"
)

// Generate renders one typed struct per composed variant and writes the
// files to the target directory. Optional and nillable fields become
// pointers so omission and explicit null survive marshaling; partial
// variants render every field as a pointer with omitempty.
func Generate(ctx context.Context, cfg *Config, vs ...*variant.Variant) error {
	if cfg == nil {
		return NewConfigError("Config", nil, "configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	files := make([]genFile, 0, len(vs))
	for _, v := range vs {
		if v == nil {
			return NewGenerationError("", "", "nil variant", nil)
		}
		src, err := renderVariant(cfg, v)
		if err != nil {
			return err
		}
		files = append(files, genFile{name: fileName(v.Name()), src: src})
	}
	return newWriter(cfg.Target).writeFiles(ctx, files)
}

// renderVariant renders the struct declaration for one variant.
func renderVariant(cfg *Config, v *variant.Variant) ([]byte, error) {
	f := jen.NewFilePathName(cfg.Package, cfg.PackageName())
	f.HeaderComment("Code generated by syrinxgen. DO NOT EDIT.")
	if cfg.Header != "" {
		f.HeaderComment(cfg.Header)
	}
	var fields []jen.Code
	for _, fd := range v.FieldDescriptors() {
		stmt := jen.Id(goName(fd.Name)).Add(typeCode(fd))
		tag := fd.Name
		if fd.Optional || fd.Nillable {
			tag += ",omitempty"
		}
		stmt = stmt.Tag(map[string]string{"json": tag})
		if fd.Comment != "" {
			fields = append(fields, jen.Comment(fd.Comment))
		}
		fields = append(fields, stmt)
	}
	switch {
	case v.Partial():
		f.Commentf("%s is the partial payload of the %q variant. A nil pointer means the field was omitted.", v.Name(), v.Name())
	case v.Strict():
		f.Commentf("%s is the payload of the strict %q variant.", v.Name(), v.Name())
	default:
		f.Commentf("%s is the record shape of the %q variant.", v.Name(), v.Name())
	}
	f.Type().Id(v.Name()).Struct(fields...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError(v.Name(), "", "render struct", err)
	}
	return buf.Bytes(), nil
}

// typeCode maps a field descriptor to its generated Go type. Optional and
// nillable fields are pointers; enums render as strings.
func typeCode(fd *field.Descriptor) jen.Code {
	var base *jen.Statement
	switch fd.Info.Type {
	case field.TypeBool:
		base = jen.Bool()
	case field.TypeInt:
		base = jen.Int()
	case field.TypeFloat:
		base = jen.Float64()
	case field.TypeString, field.TypeEnum:
		base = jen.String()
	case field.TypeTime:
		base = jen.Qual("time", "Time")
	case field.TypeUUID:
		base = jen.Qual("github.com/google/uuid", "UUID")
	default:
		base = jen.Any()
	}
	if fd.Optional || fd.Nillable {
		return jen.Op("*").Add(base)
	}
	return base
}
