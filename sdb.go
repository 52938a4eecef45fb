//Command sdb parses an sdb program and prints the resulting expression
//tree, either as canonical source or as an indented structural dump.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/willmcpherson2/sdb/internal/ast"
	"github.com/willmcpherson2/sdb/internal/config"
	"github.com/willmcpherson2/sdb/internal/parse"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		cfgFile = flag.String("config", "", "config file")
		srcFile = flag.String("f", "", "source file (defaults to stdin)")
		expr    = flag.String("e", "", "single expression")
		format  = flag.String("format", "", "output format: source or tree")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	//flags override file and environment settings
	if *srcFile != "" {
		cfg.Input = *srcFile
	}
	if *expr != "" {
		cfg.Expr = *expr
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = log.Level(lvl)

	src, name := readSource(log, cfg)
	log.Debug().Str("input", name).Int("bytes", len(src)).Msg("parsing")

	e, err := parse.Parse(name, src)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	switch cfg.Format {
	case config.FormatTree:
		_, err = io.WriteString(os.Stdout, ast.Tree(e))
	default:
		if err = e.Print(os.Stdout); err == nil {
			_, err = io.WriteString(os.Stdout, "\n")
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("cannot write output")
	}
}

func readSource(log zerolog.Logger, cfg *config.Config) (src, name string) {
	switch {
	case cfg.Expr != "":
		return cfg.Expr, "<EXPR>"
	case cfg.Input != "" && cfg.Input != "/dev/stdin": //force use of os.Stdin
		b, err := os.ReadFile(cfg.Input)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read source file")
		}
		return string(b), cfg.Input
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read stdin")
		}
		return string(b), "<STDIN>"
	}
}
