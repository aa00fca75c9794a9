package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// outputOptions control how a command renders its result. Tables are the
// default; --json and --query switch to JSON output.
type outputOptions struct {
	JSON  bool
	Query string
}

func addOutputFlags(fs *flag.FlagSet, opts *outputOptions) {
	fs.BoolVar(&opts.JSON, "json", false, "Print the raw JSON response")
	fs.StringVar(&opts.Query, "query", "", "JMESPath expression applied to the JSON response (implies --json)")
}

func (o outputOptions) wantsJSON() bool {
	return o.JSON || strings.TrimSpace(o.Query) != ""
}

// QueryEvaluator abstracts JMESPath operations for testability.
type QueryEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements QueryEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// emitJSON prints v as indented JSON, first applying the --query expression
// when one was given.
func emitJSON(v any, opts outputOptions) error {
	return emitJSONWith(v, opts, jmespathLibEvaluator{})
}

func emitJSONWith(v any, opts outputOptions, eval QueryEvaluator) error {
	payload := any(v)

	if expr := strings.TrimSpace(opts.Query); expr != "" {
		if err := eval.Validate(expr); err != nil {
			return fmt.Errorf("invalid --query expression: %w", err)
		}

		// JMESPath operates on decoded JSON, not on Go structs.
		decoded, err := toJSONValue(v)
		if err != nil {
			return err
		}
		payload, err = eval.Evaluate(expr, decoded)
		if err != nil {
			return fmt.Errorf("evaluate --query expression: %w", err)
		}
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return writeln(os.Stdout, string(out))
}

func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return decoded, nil
}
