package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanorc-tools/nrc/keywords"
	"github.com/nanorc-tools/nrc/lexer"
	"github.com/nanorc-tools/nrc/rcfile"
	"github.com/nanorc-tools/nrc/scan"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errw bytes.Buffer
	require.NoError(t, rootCmd.PersistentFlags().Set("mode", "user"))
	require.NoError(t, rootCmd.PersistentFlags().Set("lib", "false"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errw)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errw.String(), err
}

func TestScanAndList(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.h"), []byte("class Widget {};\ntypedef int Size;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b.cpp"), []byte("namespace ns { class Widget; }\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("class Ignored;\n"), 0o644))
	rc := filepath.Join(dir, "cpp.nanorc")

	out, errOut, err := execute(t, "scan", "--plain", "--yes", "-r", "-o", rc, src)
	require.NoError(t, err)
	assert.Contains(t, out, "After processing 2 files, the User Keyword set is now")
	assert.Contains(t, out, "Wrote 3 user keywords to "+rc)
	assert.Contains(t, errOut, "[lex] "+filepath.Join(src, "a.h"))

	kws, err := rcfile.Load(rc, rcfile.NewSection(rcfile.ModeUser, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"Size", "Widget", "ns"}, kws)

	out, _, err = execute(t, "list", "--plain", "-o", rc)
	require.NoError(t, err)
	assert.Contains(t, out, "User Keyword set in "+rc+" (3):")
	assert.Contains(t, out, "Widget")

	out, _, err = execute(t, "scan", "--plain", "--yes", "-r", "-o", rc, src)
	require.NoError(t, err)
	assert.Contains(t, out, "no new keywords were found")
}

func TestAddRejectsNonIdentifiers(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "rc")
	_, _, err := execute(t, "add", "--plain", "--yes", "-o", rc, "Good", "1bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"1bad"`)

	_, statErr := os.Stat(rc)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestAddToLibrarySection(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "rc")
	_, _, err := execute(t, "add", "--plain", "--yes", "--lib", "-o", rc, "vector", "map")
	require.NoError(t, err)

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "## library keywords\n\tcolor brightyellow "))
	assert.Contains(t, string(data), "(map|vector)")
}

func TestModeFlag(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "rc")
	_, _, err := execute(t, "add", "--plain", "--yes", "--mode", "library", "-o", rc, "string")
	require.NoError(t, err)

	kws, err := rcfile.Load(rc, rcfile.NewSection(rcfile.ModeLibrary, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"string"}, kws)

	out, _, err := execute(t, "list", "--plain", "--mode", "user", "-o", rc)
	require.NoError(t, err)
	assert.Contains(t, out, "User Keyword set in "+rc+" (0):")

	_, _, err = execute(t, "list", "--plain", "--mode", "system", "-o", rc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown keyword mode "system"`)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.nanorc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".nanorc"), got)

	got, err = expandHome("rel/path")
	require.NoError(t, err)
	assert.Equal(t, "rel/path", got)

	_, err = expandHome("")
	assert.Error(t, err)
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, isKeyword("Widget"))
	assert.True(t, isKeyword("size_t"))
	assert.False(t, isKeyword("1bad"))
	assert.False(t, isKeyword("two words"))
	assert.False(t, isKeyword("a-b"))
	assert.False(t, isKeyword(""))
}

func TestDumpLexemes(t *testing.T) {
	lexemes, err := lexer.TokenizeBytes("a.h", []byte("class A;"), lexer.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	dumpLexemes(&buf, lexemes, false)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "identifier")
	assert.Contains(t, lines[0], `"class"`)

	buf.Reset()
	dumpLexemes(&buf, lexemes, true)
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

func TestTerminalEventListener(t *testing.T) {
	var out, errw bytes.Buffer
	listen := terminalEventListener(&out, &errw, listenerOptions{verbose: true, confirm: true})

	fact := keywords.Fact{Name: "Foo", Specifier: "class", File: "a.h", Line: 2, Context: "class >>Foo<<;"}
	listen(scan.FileStartedEvent("a.h", 0))
	listen(scan.KeywordFoundEvent(fact))
	listen(scan.InterviewStartedEvent("Add Foo to the keyword set?", "a.h:2"))
	listen(scan.KeywordRejectedEvent(fact))
	listen(scan.FileFailedEvent("b.h", errors.New("b.h:1:1: unexpected character")))

	assert.Contains(t, out.String(), "Keyword specifier found in line 2 of file a.h")
	assert.Contains(t, out.String(), "    class >>Foo<<;\n")
	assert.Contains(t, errw.String(), "[lex] a.h\n")
	assert.Contains(t, errw.String(), "[keyword] Foo rejected\n")
	assert.Contains(t, errw.String(), "[lex] b.h failed: b.h:1:1: unexpected character\n")
}
