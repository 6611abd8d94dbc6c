package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/ava12/salgol/grammar"
	"github.com/ava12/salgol/internal/config"
	"github.com/ava12/salgol/lang"
	"github.com/ava12/salgol/langdef"
	"github.com/ava12/salgol/parser"
)

const configEnvVar = config.EnvVar

// app holds state shared by subcommands, filled by setup before any command runs.
type app struct {
	configPath  string
	grammarPath string
	verbose     int

	cfg     *config.Config
	grammar *grammar.Grammar
	parser  *parser.Parser
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("salgol.salgolc")
}

func (a *app) setup() error {
	cfg, e := config.LoadDefault(a.configPath)
	if e != nil {
		return e
	}
	if a.grammarPath != "" {
		cfg.Grammar.File = a.grammarPath
	}
	a.cfg = cfg

	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity+a.verbose, logFile)

	return a.loadGrammar()
}

func (a *app) loadGrammar() error {
	if a.cfg.Grammar.File == "" {
		p, e := lang.Parser()
		if e != nil {
			return e
		}
		a.grammar, a.parser = p.Grammar(), p
		return nil
	}

	content, e := os.ReadFile(a.cfg.Grammar.File)
	if e != nil {
		return fmt.Errorf("read grammar: %w", e)
	}
	g, e := langdef.ParseBytes(a.cfg.Grammar.File, content)
	if e != nil {
		return e
	}
	logger().Infof("loaded grammar %s", a.cfg.Grammar.File)
	a.grammar, a.parser = g, parser.New(g)
	return nil
}

// prelude returns text prepended to checked programs.
func (a *app) prelude() (string, error) {
	if a.cfg.Source.NoPrelude {
		return "", nil
	}
	if a.cfg.Source.Prelude == "" {
		if a.cfg.Grammar.File != "" {
			return "", nil
		}
		return lang.DefaultPrelude(), nil
	}

	content, e := os.ReadFile(os.ExpandEnv(a.cfg.Source.Prelude))
	if e != nil {
		return "", fmt.Errorf("read prelude: %w", e)
	}
	return string(content), nil
}

// format returns output format, flag value takes precedence over configuration.
func (a *app) format(flag string) (string, error) {
	if flag == "" {
		return a.cfg.Output.Format, nil
	}
	if !config.IsFormat(flag) {
		return "", fmt.Errorf("unknown format: %s", flag)
	}
	return flag, nil
}

// readInput reads named file or stdin if args are empty, returns source name and content.
func readInput(in io.Reader, args []string) (string, string, error) {
	if len(args) == 0 {
		content, e := io.ReadAll(in)
		if e != nil {
			return "", "", fmt.Errorf("read stdin: %w", e)
		}
		return "stdin", string(content), nil
	}

	content, e := os.ReadFile(args[0])
	if e != nil {
		return "", "", fmt.Errorf("read file: %w", e)
	}
	return args[0], string(content), nil
}
