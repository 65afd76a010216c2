package clipper

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsageCLI() *Clipper {
	cli := &Clipper{
		Name:        "convert",
		Description: "Converts text files between encodings.",
		Version:     "1.2.0",
		Author:      "Jane Doe",
		License:     "MIT License",
		WebLink:     "https://example.com/convert",
	}
	var in string
	var jobs int
	var verbose bool
	AddOption[string](cli, "--input", "-i").Set("file", &in).Req().Doc("input file")
	AddOption[int](cli, "--jobs", "-j").Set("count", &jobs, 1).Doc("worker count")
	cli.AddFlag("--verbose", "-v").Set(&verbose).Doc("enable verbose output")
	cli.HelpFlag("--help", "-h")
	cli.VersionFlag("--version", "-V")
	return cli
}

func TestMakeHelp(t *testing.T) {
	t.Parallel()

	t.Run("full layout", func(t *testing.T) {
		t.Parallel()
		cli := newUsageCLI()
		want := `DESCRIPTION
  Converts text files between encodings.

SYNOPSIS
  convert -i <file> [...]

FLAGS
  -h, --help       displays help
  -V, --version    displays version information
  -v, --verbose    enable verbose output

OPTIONS
  -i, --input <file>    input file
  -j, --jobs <count>    worker count

LICENSE
  MIT License

AUTHOR
  Jane Doe

https://example.com/convert
`
		if diff := cmp.Diff(want, cli.MakeHelp()); diff != "" {
			t.Errorf("MakeHelp() mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("required flags appear in the synopsis", func(t *testing.T) {
		t.Parallel()
		cli := newUsageCLI()
		var force bool
		cli.AddFlag("--force", "-F").Set(&force).Req().Doc("overwrite the output file")
		assert.Contains(t, cli.MakeHelp(), "convert -i <file> -F [...]")
	})
	t.Run("allow-listed options show their values", func(t *testing.T) {
		t.Parallel()
		cli := newUsageCLI()
		var format string
		AddOption[string](cli, "--format", "-f").
			Set("format", &format, "plain").
			Match("plain", "json", "csv").
			Doc("output format")
		assert.Contains(t, cli.MakeHelp(), "-f, --format (plain json csv)")
	})
	t.Run("minimal metadata", func(t *testing.T) {
		t.Parallel()
		cli := &Clipper{Name: "tool"}
		var v bool
		cli.AddFlag("-v").Set(&v).Doc("verbose")
		out := cli.MakeHelp()
		assert.NotContains(t, out, "DESCRIPTION")
		assert.NotContains(t, out, "OPTIONS")
		assert.NotContains(t, out, "LICENSE")
		assert.NotContains(t, out, "AUTHOR")
		assert.Contains(t, out, "SYNOPSIS\n  tool [...]")
		assert.Contains(t, out, "FLAGS\n  -v    verbose")
	})
	t.Run("long descriptions wrap into the description column", func(t *testing.T) {
		t.Parallel()
		cli := &Clipper{Name: "tool"}
		var n int
		AddOption[int](cli, "--number", "-n").Set("n", &n).
			Doc("a very long description that certainly will not fit on a single " +
				"line of the generated help output and therefore has to wrap onto " +
				"a continuation line")
		out := cli.MakeHelp()
		require.Contains(t, out, "  -n, --number <n>    a very long description")
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, len(line), 80, "line %q", line)
		}
	})
	t.Run("rendering does not mutate parse results", func(t *testing.T) {
		t.Parallel()
		cli := newUsageCLI()
		require.False(t, cli.Parse([]string{"--jobs", "x"}))
		wrongBefore := len(cli.Wrong())
		_ = cli.MakeHelp()
		_ = cli.MakeVersionInfo()
		assert.Len(t, cli.Wrong(), wrongBefore)
	})
}

func TestMakeVersionInfo(t *testing.T) {
	t.Parallel()
	cli := newUsageCLI()
	assert.Equal(t, "convert 1.2.0\nJane Doe\n", cli.MakeVersionInfo())
}
