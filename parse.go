package clipper

import (
	"fmt"
)

// Parse walks the given argument tokens, typically os.Args[1:], against the
// registered names and writes matched values into the caller-owned targets.
// It returns true when the whole run produced no errors; otherwise it returns
// false and [Clipper.Wrong] holds every problem found, not just the first.
//
// The run recognizes four error categories, all recovered locally: unknown
// argument, missing value, disallowed value, and missing required
// argument(s). An unknown token is consumed on its own and never treated as a
// value for a neighboring option. Repeated occurrences of the same option
// overwrite earlier ones; the last occurrence wins.
//
// Parse may be called again on the same Clipper. Each run starts with a fresh
// error list and required-argument accounting, but defaults bound with Set
// are not re-applied.
func (c *Clipper) Parse(args []string) bool {
	c.wrong = nil
	c.argsSeen = len(args)

	if c.allowNoArgs && len(args) == 0 {
		return true
	}

	// Help and version are recognized only as the entire argument list.
	// Mixed with anything else their names fall through to the main loop,
	// where they are unknown.
	if len(args) == 1 {
		switch {
		case c.helpFlag.matches(args[0]):
			_ = c.helpFlag.handle.assign(args[0])
			return true
		case c.versionFlag.matches(args[0]):
			_ = c.versionFlag.handle.assign(args[0])
			return true
		}
	}

	requiredRemaining := c.required

	for i := 0; i < len(args); {
		name := args[i]
		i++

		arg, ok := c.names[name]
		if !ok {
			c.fail("unknown argument %q", name)
			continue
		}
		if arg.Required() {
			requiredRemaining--
		}
		if !arg.takesValue() {
			_ = arg.assign("")
			continue
		}
		if i == len(args) {
			c.fail("missing value for %s", name)
			break
		}
		value := args[i]
		i++
		if err := arg.assign(value); err != nil {
			c.fail("value %q is not allowed for %s", value, arg.DetailedSynopsis())
		}
	}

	if requiredRemaining > 0 {
		c.fail("missing %d required argument(s)", requiredRemaining)
	}
	return len(c.wrong) == 0
}

func (c *Clipper) fail(format string, args ...any) {
	c.wrong = append(c.wrong, fmt.Sprintf(format, args...))
}
