package source

import (
	"net/url"
	"strconv"
)

// Field names a value of the generic Query.
type Field int

const (
	FieldNone Field = iota
	FieldTerms
	FieldPage
	FieldResultsPerPage
	FieldStartIndex
)

// Param maps one wire-level query parameter either to a Query field or to a fixed literal.
type Param struct {
	Name    string
	Field   Field
	Literal string
}

// From binds a parameter to a query field.
func From(name string, field Field) Param {
	return Param{Name: name, Field: field}
}

// Fixed binds a parameter to a literal value.
func Fixed(name, value string) Param {
	return Param{Name: name, Literal: value}
}

// Params is a source's translation table from wire parameters to the generic query.
type Params []Param

// Values resolves the table against q.
func (p Params) Values(q Query) url.Values {
	values := make(url.Values, len(p))
	for _, param := range p {
		values.Set(param.Name, param.value(q))
	}
	return values
}

// Encode appends the resolved parameters to base.
func (p Params) Encode(base string, q Query) string {
	return base + "?" + p.Values(q).Encode()
}

func (p Param) value(q Query) string {
	switch p.Field {
	case FieldTerms:
		return q.Terms
	case FieldPage:
		return strconv.Itoa(q.Page)
	case FieldResultsPerPage:
		return strconv.Itoa(q.ResultsPerPage)
	case FieldStartIndex:
		return strconv.Itoa(q.StartIndex)
	default:
		return p.Literal
	}
}
