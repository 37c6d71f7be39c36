// Package feature resolves the feature tokens stored on hierarchy nodes
// into human-readable labels and fill colours.
//
// Every sector of a sunburst carries a token describing the condition it
// represents, such as "age:>30". A [Lookup] turns the token into an
// [Info] with four renderings of the label:
//
//	Name       "age"
//	Value      ">30"
//	NameValue  "age: >30"
//	ShortValue "age: >30"   (abbreviated name, same value)
//
// [Registry] is the standard Lookup. It serves explicit entries loaded from
// a file and falls back to [ParseToken] for anything else, so it is total
// over all tokens.
package feature

import (
	"strings"
	"unicode/utf8"
)

// Info holds the label renderings of one feature token.
type Info struct {
	Name       string `json:"name" toml:"name"`
	Value      string `json:"value" toml:"value"`
	NameValue  string `json:"name_value" toml:"name_value"`
	ShortValue string `json:"short_value" toml:"short_value"`
}

// Lookup resolves feature tokens. Implementations must be pure: the same
// token always yields the same Info.
type Lookup interface {
	Lookup(token string) Info
}

// LookupFunc adapts a function to [Lookup].
type LookupFunc func(token string) Info

// Lookup calls f(token).
func (f LookupFunc) Lookup(token string) Info { return f(token) }

const (
	separator    = ":"
	maxShortName = 4
	abbrevLen    = 3
)

// ParseToken derives an Info from a "name:value" token.
//
// The token is split on its first colon and both halves are trimmed. A
// token without a colon renders as itself in every field.
func ParseToken(token string) Info {
	name, value, ok := strings.Cut(token, separator)
	if !ok {
		return Info{Name: token, Value: token, NameValue: token, ShortValue: token}
	}
	return Compose(strings.TrimSpace(name), strings.TrimSpace(value), "")
}

// Compose builds an Info from its parts. An empty short name is derived
// with [Abbreviate].
func Compose(name, value, short string) Info {
	if short == "" {
		short = Abbreviate(name)
	}
	return Info{
		Name:       name,
		Value:      value,
		NameValue:  join(name, value),
		ShortValue: join(short, value),
	}
}

func join(name, value string) string {
	if value == "" {
		return name
	}
	return name + separator + " " + value
}

// Abbreviate shortens names longer than four runes to their first three
// runes followed by a period.
func Abbreviate(name string) string {
	if utf8.RuneCountInString(name) <= maxShortName {
		return name
	}
	runes := []rune(name)
	return string(runes[:abbrevLen]) + "."
}
