package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/siddhu225/interview-prep/internal/config"
	"github.com/siddhu225/interview-prep/internal/fixture"
	"github.com/siddhu225/interview-prep/internal/schema"
	"github.com/siddhu225/interview-prep/pkg/tree"
	"gopkg.in/yaml.v3"
)

var (
	configPath = flag.String("config", "", "Optional YAML config file")
	order      = flag.String("order", "", "Traversal order: depth or breadth")
	format     = flag.String("format", "", "Output format: text or yaml")
	openapi    = flag.String("openapi", "", "Walk the schemas of this OpenAPI document instead of the sample tree")
	check      = flag.Bool("check", true, "Reject cyclic or shared trees before traversing")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath, flagOptions()...)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("Traversal failed: %v", err)
	}
}

// flagOptions turns the flags given on the command line into overrides, so
// unset flags leave the config file values alone.
func flagOptions() []config.Option {
	var opts []config.Option
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "order":
			opts = append(opts, config.WithOrder(*order))
		case "format":
			opts = append(opts, config.WithFormat(*format))
		case "openapi":
			opts = append(opts, config.WithOpenAPI(*openapi))
		case "check":
			opts = append(opts, config.WithCheck(*check))
		}
	})
	return opts
}

func run(cfg config.Config, w io.Writer) error {
	var values []string
	if cfg.OpenAPI != "" {
		doc, err := schema.Load(cfg.OpenAPI)
		if err != nil {
			return err
		}
		if values, err = schema.Paths(doc, tree.Order(cfg.Order), schema.WithCheck(cfg.Check)); err != nil {
			return err
		}
	} else {
		var err error
		if values, err = traverse(fixture.Letters(), cfg); err != nil {
			return err
		}
	}
	return write(w, values, cfg.Format)
}

func traverse(root *tree.Node[string], cfg config.Config) ([]string, error) {
	if cfg.Check {
		if err := tree.Check(root); err != nil {
			return nil, err
		}
	}

	return tree.Traverse(root, tree.Order(cfg.Order))
}

func write(w io.Writer, values []string, format string) error {
	switch format {
	case config.FormatYAML:
		data, err := yaml.Marshal(values)
		if err != nil {
			return fmt.Errorf("marshal values: %w", err)
		}
		_, err = w.Write(data)
		return err
	case config.FormatText:
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
