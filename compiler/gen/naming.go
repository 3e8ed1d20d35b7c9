package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms kept upper-case in generated Go identifiers.
var initialisms = map[string]bool{
	"id":   true,
	"uuid": true,
	"url":  true,
	"uri":  true,
	"api":  true,
	"json": true,
	"sql":  true,
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// goName converts a snake_case wire name to an exported Go identifier:
// created_at becomes CreatedAt, id becomes ID.
func goName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		switch {
		case w == "":
		case initialisms[w]:
			words[i] = strings.ToUpper(w)
		default:
			words[i] = titleCaser.String(w)
		}
	}
	return strings.Join(words, "")
}

// fileName converts a variant name to its generated file name:
// SubgenreCreateInternal becomes subgenre_create_internal.go.
func fileName(variantName string) string {
	return inflect.Underscore(variantName) + ".go"
}
