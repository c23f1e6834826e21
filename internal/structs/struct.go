// Package structs renders struct definitions for error messages.
package structs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zhamlin/pathroute/internal/color"
)

const indent = "    "

// Render writes the definition of typ, a struct type, with the named
// field underlined and followed by msg. An empty field renders the
// struct alone.
func Render(typ reflect.Type, field, msg string, colors color.Colors) string {
	if typ.Kind() != reflect.Struct {
		panic("provided type is not a struct")
	}

	maxNameLen, maxTypeLen := 0, 0
	for i := range typ.NumField() {
		f := typ.Field(i)
		maxNameLen = max(maxNameLen, len(f.Name))
		maxTypeLen = max(maxTypeLen, len(fieldType(f, typ.PkgPath())))
	}

	var sb strings.Builder
	if name := typ.Name(); name != "" {
		fmt.Fprintf(&sb, "type %s struct {\n", name)
	} else {
		sb.WriteString("struct {\n")
	}

	for i := range typ.NumField() {
		f := typ.Field(i)
		name := f.Name + strings.Repeat(" ", maxNameLen-len(f.Name))
		typName := fieldType(f, typ.PkgPath())

		line := name + " " + typName
		if f.Tag != "" {
			line += strings.Repeat(" ", maxTypeLen-len(typName)) + " `" + string(f.Tag) + "`"
		}
		fmt.Fprintf(&sb, "%s%s\n", indent, line)

		if f.Name == field {
			mark := strings.Repeat("^", len(f.Name))
			fmt.Fprintf(&sb, "%s%s%s%s\n", indent, colors.Mark, mark, colors.Reset)
			fmt.Fprintf(&sb, "%s%s%s%s\n", indent, colors.Error, msg, colors.Reset)
		}
	}

	sb.WriteString("}")
	return sb.String()
}

// fieldType returns the field type without the package qualifier of the
// struct it is declared in.
func fieldType(f reflect.StructField, pkgPath string) string {
	typ := f.Type.String()
	if pkgPath == "" {
		return typ
	}

	parts := strings.Split(pkgPath, "/")
	pkg := parts[len(parts)-1]
	return strings.ReplaceAll(typ, pkg+".", "")
}
