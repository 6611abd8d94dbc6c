package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/ava12/salgol/internal/test"
)

func TestDefaults(t *testing.T) {
	c := Default()
	ExpectString(t, JSONFormat, c.Output.Format)
	ExpectInt(t, 0, c.Log.Verbosity)
	ExpectString(t, "", c.Grammar.File)
	ExpectBool(t, false, c.Source.NoPrelude)

	c, e := Decode("")
	ExpectNoError(t, e)
	ExpectString(t, JSONFormat, c.Output.Format)
}

func TestDecode(t *testing.T) {
	c, e := Decode(`
[log]
verbosity = 2
file = "salgol.log"

[grammar]
file = "custom.ebnf"

[output]
format = "YAML"

[source]
prelude = "lib.S"
no_prelude = true
`)
	ExpectNoError(t, e)
	ExpectInt(t, 2, c.Log.Verbosity)
	ExpectString(t, "salgol.log", c.Log.File)
	ExpectString(t, "custom.ebnf", c.Grammar.File)
	ExpectString(t, YAMLFormat, c.Output.Format)
	ExpectString(t, "lib.S", c.Source.Prelude)
	ExpectBool(t, true, c.Source.NoPrelude)
}

func TestDecodeErrors(t *testing.T) {
	samples := map[string]string{
		"[output]\nformat = \"xml\"\n": "unknown output format",
		"[output]\nfromat = \"json\"\n": "unknown config keys: output.fromat",
		"[log\n":                        "failed to parse config",
		"[log]\nverbosity = \"high\"\n": "failed to parse config",
	}

	for text, msg := range samples {
		_, e := Decode(text)
		Assert(t, e != nil, "expecting error for %q", text)
		Assert(t, strings.Contains(e.Error(), msg), "expecting %q in %q", msg, e.Error())
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "salgol.toml")
	ExpectNoError(t, os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0o644))

	t.Setenv(EnvVar, "")
	c, e := LoadDefault("")
	ExpectNoError(t, e)
	ExpectString(t, JSONFormat, c.Output.Format)

	t.Setenv(EnvVar, path)
	c, e = LoadDefault("")
	ExpectNoError(t, e)
	ExpectString(t, YAMLFormat, c.Output.Format)

	_, e = LoadDefault(filepath.Join(dir, "missing.toml"))
	Assert(t, e != nil && strings.Contains(e.Error(), "failed to read config"), "expecting read error, got %v", e)
}
