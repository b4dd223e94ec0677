package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mdwerror "github.com/msto63/strview/foundation/core/error"
	mdwerrors "github.com/msto63/strview/foundation/core/errors"
	"github.com/msto63/strview/pkg/core/version"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI in an isolated directory without configuration files
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("STRVIEW_CONFIG", "")

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		printError(&errOut, err)
	}
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "strview v"+version.CLI) {
		t.Errorf("version output = %q", out)
	}

	out, _, err = execute(t, "", "--json", "version")
	if err != nil {
		t.Fatalf("version --json error = %v", err)
	}
	var info version.Info
	if err := json.Unmarshal([]byte(out), &info); err != nil || info.Library != version.Library {
		t.Errorf("version --json = %q (%v)", out, err)
	}
}

func TestQueryCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"find", []string{"find", "key=value", "="}, []string{"Position:", "3", "key[=]value"}},
		{"find reverse", []string{"find", "--reverse", "a.b.c", "."}, []string{"3", "a.b[.]c"}},
		{"find all", []string{"find", "--all", "abcabc", "bc"}, []string{"Positionen:", "1, 4"}},
		{"find wide", []string{"--width", "16", "find", "Grüße", "ß"}, []string{"(Breite 16, Größe 5)", "Grü[ß]e"}},
		{"find-of", []string{"find-of", "--last", "path/to/file", "/"}, []string{"Position:", "7"}},
		{"at", []string{"at", "hello", "1"}, []string{`"e"`}},
		{"contains", []string{"contains", "key=value", "y=v"}, []string{"Gefunden:", "ja"}},
		{"starts-with", []string{"starts-with", "key=value", "key="}, []string{`"value"`}},
		{"ends-with", []string{"ends-with", "report.toml", ".yaml"}, []string{"nein"}},
		{"substr", []string{"substr", "hello world", "6"}, []string{`"world"`, "hello [world]"}},
		{"substr count", []string{"substr", "hello world", "0", "5"}, []string{`"hello"`}},
		{"compare", []string{"compare", "abc", "abd"}, []string{"kleiner (-1)"}},
		{"compare ranged", []string{"compare", "--pos", "6", "--count", "5", "hello world", "world"}, []string{"gleich (0)"}},
		{"compare fold", []string{"compare", "--fold", "HeLLo", "hello"}, []string{"ja"}},
		{"compare fold ranged", []string{"compare", "--fold", "--pos", "4", "--count", "5", "say HELLO now", "hello"}, []string{"ja"}},
		{"trim", []string{"trim", "--set", "-_", "--name__"}, []string{`"name"`}},
		{"cut", []string{"cut", "key=value", "="}, []string{`"key"`, `"value"`}},
		{"split", []string{"split", "a,b,,c", ","}, []string{"Teile:", "4", `""`}},
		{"fields", []string{"fields", "--unique", " x y  x "}, []string{"Teile:", "2"}},
		{"tokens", []string{"tokens", "a;b,,c", ";,"}, []string{`"a"`, `"b"`, `"c"`}},
		{"inspect", []string{"inspect", "hé"}, []string{"Einheiten:", "68 c3 a9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("%v error = %v (%s)", tt.args, err, errOut)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	out, _, err := execute(t, "", "--json", "find", "key=value", "=")
	if err != nil {
		t.Fatalf("find --json error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if doc["position"] != float64(3) || doc["operation"] != "find" {
		t.Errorf("unexpected document: %s", out)
	}
}

func TestFileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("one\n\n  two \nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "lines", "--file", path, "--skip-blank", "--trim")
	if err != nil {
		t.Fatalf("lines error = %v", err)
	}
	for _, want := range []string{`"one"`, `"two"`, `"three"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "x y", "fields", "--file", "-")
	if err != nil {
		t.Fatalf("fields from stdin error = %v", err)
	}
	if !strings.Contains(out, `"x"`) || !strings.Contains(out, `"y"`) {
		t.Errorf("stdin fields output:\n%s", out)
	}

	_, errOut, err := execute(t, "", "inspect", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("missing input file should fail")
	}
	if !strings.Contains(errOut, "reading input failed") {
		t.Errorf("stderr should log the read failure:\n%s", errOut)
	}
}

func TestBinaryInputWarning(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    []string
	}{
		{"invalid byte", []byte{'a', 0xff, 'b'}, []string{"input is not UTF-8 text", "offset 1"}},
		{"nul byte", []byte("ab\x00"), []string{"input is not UTF-8 text", "offset 2"}},
		{"text", []byte("abc"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "input.bin")
			if err := os.WriteFile(path, tt.content, 0o644); err != nil {
				t.Fatal(err)
			}

			_, errOut, err := execute(t, "", "inspect", "--file", path)
			if err != nil {
				t.Fatalf("inspect error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(errOut, want) {
					t.Errorf("stderr missing %q:\n%s", want, errOut)
				}
			}
			if tt.want == nil && errOut != "" {
				t.Errorf("text input should not warn:\n%s", errOut)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strview.toml")
	content := "[query]\nmax_results = 2\n\n[output]\nformat = \"text\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "--config", path, "split", "a,b,c", ",")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	if !strings.Contains(out, `"b,c"`) || !strings.Contains(out, "gekürzt") {
		t.Errorf("limited split output:\n%s", out)
	}

	limited := filepath.Join(t.TempDir(), "limited.yaml")
	if err := os.WriteFile(limited, []byte("query:\n  max_input: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err = execute(t, "0123456789", "--config", limited, "inspect", "--file", "-")
	if !mdwerror.HasCode(err, mdwerror.Code(mdwerrors.CodeFilexTooLarge)) {
		t.Errorf("oversized input error = %v", err)
	}

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "none.toml"), "version")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing config error = %v", err)
	}
}

func TestCommandErrors(t *testing.T) {
	_, errOut, err := execute(t, "", "substr", "hello", "9")
	if err == nil {
		t.Fatal("substr past the end should fail")
	}
	if !strings.Contains(errOut, "Fehler:") || !strings.Contains(errOut, "out of range") {
		t.Errorf("stderr = %q", errOut)
	}

	_, _, err = execute(t, "", "--width", "7", "inspect", "x")
	if !mdwerror.HasCode(err, mdwerror.Code(mdwerrors.CodeQueryInvalidWidth)) {
		t.Errorf("invalid width error = %v", err)
	}

	_, _, err = execute(t, "", "at", "hello", "one")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("non-numeric position error = %v", err)
	}

	if _, _, err = execute(t, "", "find", "only-text"); err == nil {
		t.Error("find without needle should fail")
	}

	if _, _, err = execute(t, "", "trim", "--left", "--right", "x"); err == nil {
		t.Error("trim --left --right should fail")
	}

	if _, _, err = execute(t, "", "split", "abc", ""); err == nil {
		t.Error("split with empty separator should fail")
	}
}

func TestLanguageFlag(t *testing.T) {
	out, _, err := execute(t, "", "--lang", "en", "contains", "key=value", "y=v")
	if err != nil {
		t.Fatalf("contains --lang en error = %v", err)
	}
	for _, want := range []string{"(width 8, size 9)", "Found:", "yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	_, errOut, err := execute(t, "", "--lang", "en", "--width", "7", "inspect", "x")
	if err == nil || !strings.HasPrefix(errOut, "Error: ") {
		t.Errorf("stderr = %q (%v)", errOut, err)
	}

	if _, _, err := execute(t, "", "--lang", "?", "inspect", "x"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("invalid language error = %v", err)
	}
}
