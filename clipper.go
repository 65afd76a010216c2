// Package clipper declares and parses command-line arguments. Callers
// register named options (value-bearing) and flags (boolean presence
// markers), bind caller-owned target variables, describe defaults, allowed
// values and validation rules, then invoke [Clipper.Parse] against the
// process argument vector. Parsing resolves every token against the
// registered names, converts and validates values, and reports either success
// or the full list of human-readable errors via [Clipper.Wrong].
//
// There is no support for positional arguments, subcommands, `--opt=value`
// syntax or prefix matching; name resolution is exact and case-sensitive.
package clipper

import (
	"fmt"
)

// Clipper holds the registered options and flags, the application metadata
// used for help and version output, and the result of the most recent parse
// run. The zero value is ready to use.
//
// A Clipper is not safe for concurrent use. The expected lifecycle is
// strictly sequential: register and configure descriptors, then parse.
type Clipper struct {
	// Application metadata, consumed by MakeHelp and MakeVersionInfo.
	Name        string
	Description string
	Version     string
	Author      string
	License     string
	WebLink     string

	// names maps every registered name, primary and alternate alike, to its
	// descriptor. Each descriptor is owned exactly once; an alternate name is
	// a second key for the same entry.
	names map[string]argument

	// optionNames and flagNames map primary name to alternate name (possibly
	// empty) and drive the help sections.
	optionNames map[string]string
	flagNames   map[string]string

	// required counts descriptors marked required, maintained at
	// registration time and copied per parse run.
	required int

	helpFlag    infoFlag
	versionFlag infoFlag

	allowNoArgs bool

	// Per-run state, reset by every Parse call.
	wrong    []string
	argsSeen int
}

// infoFlag holds a dedicated single-token trigger such as --help or
// --version. Its names live outside the regular name index.
type infoFlag struct {
	name    string
	altName string
	handle  Flag
}

func (f *infoFlag) matches(token string) bool {
	if f.name == "" || token == "" {
		return false
	}
	return token == f.name || token == f.altName
}

// AddOption registers a new option of type T under the given name and an
// optional alternate name, and returns it for fluent configuration:
//
//	var count int
//	clipper.AddOption[int](cli, "--count", "-c").Set("number", &count, 1).Req()
//
// AddOption is a function rather than a method because methods cannot carry
// their own type parameters. It panics if a name is empty, already taken, or
// more than one alternate name is given; registration mistakes are
// programming errors and fail fast instead of surfacing at parse time.
func AddOption[T Value](c *Clipper, name string, altName ...string) *Option[T] {
	alt := altArg(name, altName)
	opt := &Option[T]{
		name:      name,
		altName:   alt,
		valueName: "value",
		reqCount:  &c.required,
	}
	c.register(opt, name, alt)
	if c.optionNames == nil {
		c.optionNames = make(map[string]string)
	}
	c.optionNames[name] = alt
	return opt
}

// AddFlag registers a new boolean flag under the given name and an optional
// alternate name, and returns it for fluent configuration. Flags are pure
// presence markers: they never consume a following token. The same
// registration rules as [AddOption] apply.
func (c *Clipper) AddFlag(name string, altName ...string) *Flag {
	alt := altArg(name, altName)
	f := &Flag{
		name:     name,
		altName:  alt,
		reqCount: &c.required,
	}
	c.register(f, name, alt)
	if c.flagNames == nil {
		c.flagNames = make(map[string]string)
	}
	c.flagNames[name] = alt
	return f
}

// HelpFlag registers the dedicated help trigger names and returns the flag
// handle so a target can be bound with [Flag.Set]. The names are recognized
// only when they make up the entire argument list; combined with any other
// argument they are unknown.
func (c *Clipper) HelpFlag(name string, altName ...string) *Flag {
	c.helpFlag = infoFlag{name: name, altName: altArg(name, altName)}
	c.helpFlag.handle = Flag{
		name:     name,
		altName:  c.helpFlag.altName,
		doc:      "displays help",
		reqCount: &c.required,
	}
	return &c.helpFlag.handle
}

// VersionFlag registers the dedicated version trigger names and returns the
// flag handle. The same single-token rule as [Clipper.HelpFlag] applies.
func (c *Clipper) VersionFlag(name string, altName ...string) *Flag {
	c.versionFlag = infoFlag{name: name, altName: altArg(name, altName)}
	c.versionFlag.handle = Flag{
		name:     name,
		altName:  c.versionFlag.altName,
		doc:      "displays version information",
		reqCount: &c.required,
	}
	return &c.versionFlag.handle
}

// Wrong returns the errors accumulated by the most recent [Clipper.Parse]
// call, in the order they were found. The slice is owned by the Clipper and
// is replaced by the next parse run.
func (c *Clipper) Wrong() []string { return c.wrong }

// NoArgs reports whether the most recent [Clipper.Parse] call was given an
// empty argument list.
func (c *Clipper) NoArgs() bool { return c.argsSeen == 0 }

// AllowNoArgs makes an empty argument list a trivially successful parse: no
// descriptor is touched and no required-argument accounting takes place.
// Without it, an empty invocation still fails when required arguments exist.
func (c *Clipper) AllowNoArgs() { c.allowNoArgs = true }

func (c *Clipper) register(arg argument, name, altName string) {
	if name == "" {
		panic("clipper: argument name must not be empty")
	}
	if c.names == nil {
		c.names = make(map[string]argument)
	}
	if _, taken := c.names[name]; taken {
		panic(fmt.Sprintf("clipper: name %q is already registered", name))
	}
	c.names[name] = arg
	if altName != "" {
		if _, taken := c.names[altName]; taken {
			panic(fmt.Sprintf("clipper: name %q is already registered", altName))
		}
		c.names[altName] = arg
	}
}

func altArg(name string, altName []string) string {
	switch len(altName) {
	case 0:
		return ""
	case 1:
		return altName[0]
	default:
		panic(fmt.Sprintf("clipper: argument %s: at most one alternate name is allowed", name))
	}
}
