package clipper

import (
	"fmt"
	"slices"
	"strings"
)

// Char is the value type for single-character options. It is a distinct type
// rather than an alias for rune so that character options can take the first
// character of the supplied token instead of parsing it as a number.
type Char rune

// Value is the set of types an option can hold: integers, floats, strings
// (including file paths) and [Char]. Booleans are deliberately excluded; use
// [Clipper.AddFlag] for presence-only arguments.
type Value interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string | Char
}

// argument is the uniform contract the parse engine dispatches through. Both
// descriptor variants ([Option] and [Flag]) implement it, which keeps the
// engine free of any per-type knowledge.
type argument interface {
	// assign converts the token and writes it to the caller-owned target. On
	// any conversion or validation failure the target is left unchanged and a
	// non-nil error is returned.
	assign(token string) error

	// takesValue reports whether the descriptor consumes the following token
	// as its value. Flags never do.
	takesValue() bool

	Required() bool
	Description() string
	ValueInfo() string
	Synopsis() string
	DetailedSynopsis() string
}

// Option describes a single named, value-bearing command-line argument. It is
// created with [AddOption] and configured with the fluent methods below during
// the build phase. The parse engine writes the converted value into the
// caller-owned target bound by [Option.Set].
type Option[T Value] struct {
	name      string
	altName   string
	valueName string
	doc       string
	required  bool

	// target points at caller-owned storage. The caller must keep it valid
	// for every Parse call; the option never owns it.
	target *T

	allowList   []T
	validator   func(T) bool
	validateDoc string

	reqCount *int
}

// Set binds the caller-owned target variable and the display label used for
// the expected value in help text. The target must stay valid for as long as
// the owning [Clipper] is parsed. An optional default is written to the target
// immediately; without one the target is reset to the zero value.
func (o *Option[T]) Set(valueName string, target *T, def ...T) *Option[T] {
	if target == nil {
		panic(fmt.Sprintf("clipper: option %s: Set target must not be nil", o.name))
	}
	if valueName != "" {
		o.valueName = valueName
	}
	o.target = target
	var v T
	if len(def) > 0 {
		v = def[0]
	}
	*o.target = v
	return o
}

// Doc sets the option description shown in help text.
func (o *Option[T]) Doc(text string) *Option[T] {
	o.doc = text
	return o
}

// Req marks the option as required. A successful parse must match the option
// by name at least once. Calling Req twice double-counts the option in the
// required-argument accounting; call it once.
func (o *Option[T]) Req() *Option[T] {
	o.required = true
	*o.reqCount++
	return o
}

// Match restricts the option to the given values. An empty allow-list accepts
// anything that converts to the option type. Duplicate values are ignored.
func (o *Option[T]) Match(vals ...T) *Option[T] {
	for _, v := range vals {
		if !slices.Contains(o.allowList, v) {
			o.allowList = append(o.allowList, v)
		}
	}
	return o
}

// Allow is an alias for [Option.Match].
func (o *Option[T]) Allow(vals ...T) *Option[T] {
	return o.Match(vals...)
}

// Validate sets a predicate that accepted values must satisfy, together with a
// short description of the requirement (e.g. "[0; 1]" or "lower case"). The
// predicate only ever sees values that already passed type conversion. Only
// one validator can be active; the last call wins.
func (o *Option[T]) Validate(doc string, pred func(T) bool) *Option[T] {
	o.validateDoc = doc
	o.validator = pred
	return o
}

// Require is an alias for [Option.Validate].
func (o *Option[T]) Require(doc string, pred func(T) bool) *Option[T] {
	return o.Validate(doc, pred)
}

// Description returns the option documentation set with [Option.Doc].
func (o *Option[T]) Description() string { return o.doc }

// Required reports whether the option was marked required.
func (o *Option[T]) Required() bool { return o.required }

// ValueInfo describes the accepted values: "<label>" for an unrestricted
// option, or a parenthesized enumeration of the allow-listed values.
func (o *Option[T]) ValueInfo() string {
	if len(o.allowList) == 0 {
		return "<" + o.valueName + ">"
	}
	parts := make([]string, len(o.allowList))
	for i, v := range o.allowList {
		parts[i] = formatValue(v)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Synopsis returns the option names followed by its value info, with the
// alternate name first when present, e.g. "-c, --count <number>".
func (o *Option[T]) Synopsis() string {
	return joinNames(o.name, o.altName) + " " + o.ValueInfo()
}

// DetailedSynopsis extends [Option.Synopsis] with the option documentation and
// the validator requirement, for use in error and help output.
func (o *Option[T]) DetailedSynopsis() string {
	s := o.Synopsis()
	if o.doc != "" {
		s += ": " + o.doc
	}
	if o.validateDoc != "" {
		s += " (requires: " + o.validateDoc + ")"
	}
	return s
}

func (o *Option[T]) takesValue() bool { return true }

func (o *Option[T]) assign(token string) error {
	v, err := convert[T](token)
	if err != nil {
		return err
	}
	if len(o.allowList) > 0 && !slices.Contains(o.allowList, v) {
		return fmt.Errorf("value %q is not allowed", token)
	}
	if o.validator != nil && !o.validator(v) {
		return fmt.Errorf("value %q is not allowed", token)
	}
	if o.target != nil {
		*o.target = v
	}
	return nil
}

// Flag describes a named, presence-only command-line argument. It never
// consumes a following token; matching it by name sets the bound target to
// true.
type Flag struct {
	name     string
	altName  string
	doc      string
	required bool
	target   *bool

	reqCount *int
}

// Set binds the caller-owned target variable. The target must stay valid for
// as long as the owning [Clipper] is parsed. An optional default is written to
// the target immediately; without one the target is reset to false.
func (f *Flag) Set(target *bool, def ...bool) *Flag {
	if target == nil {
		panic(fmt.Sprintf("clipper: flag %s: Set target must not be nil", f.name))
	}
	f.target = target
	*f.target = len(def) > 0 && def[0]
	return f
}

// Doc sets the flag description shown in help text.
func (f *Flag) Doc(text string) *Flag {
	f.doc = text
	return f
}

// Req marks the flag as required. Calling Req twice double-counts the flag in
// the required-argument accounting; call it once.
func (f *Flag) Req() *Flag {
	f.required = true
	*f.reqCount++
	return f
}

// Description returns the flag documentation set with [Flag.Doc].
func (f *Flag) Description() string { return f.doc }

// Required reports whether the flag was marked required.
func (f *Flag) Required() bool { return f.required }

// ValueInfo always returns an empty string; flags carry no value.
func (f *Flag) ValueInfo() string { return "" }

// Synopsis returns the flag names, alternate name first when present,
// e.g. "-v, --verbose".
func (f *Flag) Synopsis() string { return joinNames(f.name, f.altName) }

// DetailedSynopsis extends [Flag.Synopsis] with the flag documentation.
func (f *Flag) DetailedSynopsis() string {
	s := f.Synopsis()
	if f.doc != "" {
		s += ": " + f.doc
	}
	return s
}

func (f *Flag) takesValue() bool { return false }

func (f *Flag) assign(string) error {
	if f.target != nil {
		*f.target = true
	}
	return nil
}

func joinNames(name, altName string) string {
	if altName == "" {
		return name
	}
	return altName + ", " + name
}

func formatValue(v any) string {
	if c, ok := v.(Char); ok {
		return string(rune(c))
	}
	return fmt.Sprint(v)
}
