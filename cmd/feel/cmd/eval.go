package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/feel-lang/feel/pkg/feel"
)

var (
	evalExpr    string
	contextJSON string
	jsonOutput  bool
	unaryInput  string
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a FEEL expression",
	Long: `Evaluate evaluates a FEEL expression against an optional variable context.

Examples:
  feel eval -e "2 * (3 + 5)"
  feel eval -e "age >= 18" --context '{"age": 21}'
  feel eval script.feel --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate this expression instead of reading a file")
	evalCmd.Flags().StringVar(&contextJSON, "context", "", "JSON object of variables available to the expression")
	evalCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as a JSON document instead of plain text")
	evalCmd.Flags().StringVar(&unaryInput, "input", "", "JSON-encoded implicit input `?`, switching to unary-test matching")
}

func runEval(_ *cobra.Command, args []string) error {
	exprs, err := readExpressions(evalExpr, args)
	if err != nil {
		return err
	}

	variables := map[string]any{}
	if contextJSON != "" {
		if !gjson.Valid(contextJSON) {
			fmt.Fprintln(os.Stderr, "warning: --context is not valid JSON, ignoring")
		} else {
			gjson.Parse(contextJSON).ForEach(func(key, value gjson.Result) bool {
				variables[key.String()] = gjsonToAny(value)
				return true
			})
		}
	}

	engine, err := feel.New()
	if err != nil {
		return err
	}

	failed := false
	for _, expr := range exprs {
		var result feel.Result
		if unaryInput != "" {
			var input any
			if gjson.Valid(unaryInput) {
				input = gjsonToAny(gjson.Parse(unaryInput))
			}
			result = engine.EvaluateUnaryTests(expr, input, variables)
		} else {
			result = engine.EvaluateExpression(expr, variables)
		}
		if !printResult(expr, result) {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("evaluation failed")
	}
	return nil
}

func printResult(expr string, result feel.Result) bool {
	if result.Failure != nil {
		fmt.Fprintf(os.Stderr, "%s\n", result.Failure.Message)
		for _, w := range result.Failure.Warnings {
			fmt.Fprintf(os.Stderr, "  warning[%s]: %s\n", w.Kind, w.Message)
		}
		return false
	}
	for _, w := range result.Success.Warnings {
		fmt.Fprintf(os.Stderr, "warning[%s]: %s\n", w.Kind, w.Message)
	}
	if jsonOutput {
		doc, err := sjson.Set("{}", "expression", expr)
		if err == nil {
			doc, err = sjson.Set(doc, "value", result.Success.Value)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		fmt.Println(doc)
		return true
	}
	fmt.Println(valueToString(result.Success.Value))
	return true
}

func valueToString(v any) string {
	switch tv := v.(type) {
	case nil:
		return "null"
	case string:
		return tv
	case decimal.Decimal:
		return tv.String()
	default:
		return fmt.Sprintf("%v", tv)
	}
}

// readExpressions resolves the source of expressions to evaluate: the
// -e flag, a file argument (one expression per line, '#' starts a
// comment), or stdin when neither is given.
func readExpressions(inline string, args []string) ([]string, error) {
	if inline != "" {
		return []string{inline}, nil
	}

	var r *os.File
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	} else {
		r = os.Stdin
	}

	var exprs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return exprs, nil
}

// gjsonToAny converts a gjson.Result into the plain Go shapes
// pkg/feel's default value mapper understands, preserving numeric
// precision by parsing the raw JSON number text as a decimal rather
// than going through float64.
func gjsonToAny(r gjson.Result) any {
	switch {
	case r.IsArray():
		arr := r.Array()
		out := make([]any, len(arr))
		for i, item := range arr {
			out[i] = gjsonToAny(item)
		}
		return out
	case r.IsObject():
		out := map[string]any{}
		r.ForEach(func(key, value gjson.Result) bool {
			out[key.String()] = gjsonToAny(value)
			return true
		})
		return out
	}
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		return r.Str
	case gjson.Number:
		d, err := decimal.NewFromString(r.Raw)
		if err != nil {
			return r.Num
		}
		return d
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return nil
	}
}
