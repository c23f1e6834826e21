package param

import (
	"reflect"
	"strings"

	"github.com/zhamlin/pathroute/internal/stringz"
)

// Namer turns a struct field name into a parameter name.
type Namer func(field string) string

// NamerCapitals turns UserID into user_id.
func NamerCapitals(name string) string {
	chunks := stringz.SplitByCapitals(name)
	for i := range chunks {
		chunks[i] = strings.ToLower(chunks[i])
	}

	return strings.Join(chunks, "_")
}

// NamerLowerFirst turns UserID into userID, matching camel case
// parameter names like {userID:number}.
func NamerLowerFirst(name string) string {
	return stringz.LowerFirst(name)
}

// NameFromField returns the name tag of the field, or the namer's
// result when there is none. A tag of "-" returns an empty string.
func NameFromField(f reflect.StructField, namer Namer) string {
	name := f.Tag.Get("name")
	switch {
	case name == "-":
		return ""
	case name != "":
		return name
	case namer == nil:
		return f.Name
	}
	return namer(f.Name)
}
