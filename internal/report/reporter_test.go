package report

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/harrison/rgrep/internal/config"
	"github.com/harrison/rgrep/internal/linesource"
	"github.com/harrison/rgrep/internal/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func rec(index int, text string) linesource.LineRecord {
	return linesource.LineRecord{Index: index, Text: text}
}

func TestReporter_LineDefault(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	m := matcher.New("foo", false)

	require.NoError(t, r.Line("a.txt", rec(0, "foo"), m))
	require.NoError(t, r.Line("a.txt", rec(2, "foobar"), m))

	assert.Equal(t, "a.txt:foo\na.txt:foobar\n", buf.String())
}

func TestReporter_LineNumbers(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{LineNumbers: true})
	m := matcher.New("bar", false)

	require.NoError(t, r.Line("dir/b.txt", rec(4, "x bar y"), m))

	assert.Equal(t, "dir/b.txt:5:x bar y\n", buf.String())
}

func TestReporter_HighlightOnlyChangesStyling(t *testing.T) {
	lines := []linesource.LineRecord{
		rec(0, "the FOO and the foo"),
		rec(1, "prefix foo"),
		rec(2, "Foo"),
	}
	m := matcher.New("foo", true)

	var plain, colored bytes.Buffer
	rp := New(&plain, Options{LineNumbers: true, Color: false})
	rc := New(&colored, Options{LineNumbers: true, Color: true})

	for _, l := range lines {
		require.NoError(t, rp.Line("f", l, m))
		require.NoError(t, rc.Line("f", l, m))
	}

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Equal(t, plain.String(), stripANSI(colored.String()))
	assert.Equal(t, "f:1:the FOO and the foo\nf:2:prefix foo\nf:3:Foo\n", plain.String())
}

func TestReporter_HighlightWrapsFirstOccurrenceOnly(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Color: true})
	m := matcher.New("ab", false)

	require.NoError(t, r.Line("f", rec(0, "xab ab"), m))

	out := buf.String()
	assert.Regexp(t, `^f:x\x1b\[[0-9;]*mab\x1b\[[0-9;]*m ab\n$`, out)
}

func TestReporter_EmptyPatternIsNeverHighlighted(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Color: true})
	m := matcher.New("", false)

	require.NoError(t, r.Line("f", rec(0, "plain text"), m))

	assert.Equal(t, "f:plain text\n", buf.String())
}

func TestReporter_CountOnly(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{CountOnly: true, Color: true})
	m := matcher.New("foo", false)

	assert.False(t, r.EmitsLines())
	assert.False(t, r.StopAtFirstMatch())

	require.NoError(t, r.Line("a", rec(0, "foo"), m))
	require.NoError(t, r.FileDone(FileResult{Path: "a", Matches: 2}))
	require.NoError(t, r.FileDone(FileResult{Path: "b", Matches: 0}))

	assert.Equal(t, "a:2\nb:0\n", buf.String())
}

func TestReporter_FilesWithMatches(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{FilesWithMatches: true, LineNumbers: true})
	m := matcher.New("foo", false)

	assert.False(t, r.EmitsLines())
	assert.True(t, r.StopAtFirstMatch())

	require.NoError(t, r.Line("a", rec(0, "foo"), m))
	require.NoError(t, r.FileDone(FileResult{Path: "a", Matches: 1}))
	require.NoError(t, r.FileDone(FileResult{Path: "b", Matches: 0}))

	assert.Equal(t, "a\n", buf.String())
}

func TestReporter_FilesWithMatchesAndCount(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{FilesWithMatches: true, CountOnly: true})

	require.NoError(t, r.FileDone(FileResult{Path: "a", Matches: 1}))
	require.NoError(t, r.FileDone(FileResult{Path: "b", Matches: 0}))

	assert.Equal(t, "a\na:1\nb:0\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReporter_WriteErrors(t *testing.T) {
	m := matcher.New("x", false)

	err := New(brokenWriter{}, Options{}).Line("f", rec(0, "x"), m)
	var outErr *OutputError
	require.ErrorAs(t, err, &outErr)
	assert.Contains(t, err.Error(), "broken pipe")

	err = New(brokenWriter{}, Options{CountOnly: true}).FileDone(FileResult{Path: "f"})
	require.ErrorAs(t, err, &outErr)

	err = New(brokenWriter{}, Options{FilesWithMatches: true}).FileDone(FileResult{Path: "f", Matches: 1})
	require.ErrorAs(t, err, &outErr)
}

func TestResolveColor(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, ResolveColor(config.ColorAlways, &buf))
	assert.False(t, ResolveColor(config.ColorNever, &buf))
	assert.False(t, ResolveColor(config.ColorAuto, &buf), "a buffer is never a terminal")
}

func TestResolveColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.False(t, ResolveColor(config.ColorAuto, &buf))
	assert.True(t, ResolveColor(config.ColorAlways, &buf), "always overrides NO_COLOR")
}
