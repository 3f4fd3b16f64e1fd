// Package vars holds the values a ZPM program manipulates and the table that
// binds them to names.
package vars

import "strconv"

// Kind is the type tag of a Value
type Kind int

const (
	KindInt Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindText:
		return "text"
	}
	panic("unreachable")
}

// Value is either an Int or a Text
type Value interface {
	Kind() Kind
	String() string
}

// Int is a signed integer value; arithmetic on it wraps on overflow
type Int int

// Text is a string value
type Text string

func (_ Int) Kind() Kind  { return KindInt }
func (_ Text) Kind() Kind { return KindText }

func (v Int) String() string  { return strconv.Itoa(int(v)) }
func (v Text) String() string { return string(v) }

// Env maps case-sensitive variable names to their current values
type Env map[string]Value

// NewEnv returns an empty environment
func NewEnv() Env {
	return make(Env, 64)
}

// Get returns the value bound to name, if any
func (e Env) Get(name string) (Value, bool) {
	v, ok := e[name]
	return v, ok
}

// Set binds name to v, replacing whatever was bound before
func (e Env) Set(name string, v Value) {
	e[name] = v
}
