package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/feel-lang/feel/pkg/feel"
)

// batchCase is one entry of a batch.yaml file: an expression, its
// variable context, and an optional expected rendering to diff against.
type batchCase struct {
	Name       string         `yaml:"name"`
	Expression string         `yaml:"expression"`
	Variables  map[string]any `yaml:"variables"`
	Expected   *string        `yaml:"expected"`
}

type batchFile struct {
	Cases []batchCase `yaml:"cases"`
}

var batchCmd = &cobra.Command{
	Use:   "batch FILE.yaml",
	Short: "Run a YAML file of named expression/variable cases",
	Long: `batch runs every case in a YAML file through the engine and reports
pass/fail, a way to regression-test a rule set without a host application.

Each case has an expression, a variables map, and an optional expected
string to compare the rendered result against; a case with no expected
value is reported simply as evaluated (no pass/fail verdict).`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	engine, err := feel.New()
	if err != nil {
		return err
	}

	failures := 0
	for i, c := range file.Cases {
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("case %d", i+1)
		}

		result := engine.EvaluateExpression(c.Expression, c.Variables)
		if result.Failure != nil {
			fmt.Printf("FAIL %s: %s\n", label, result.Failure.Message)
			failures++
			continue
		}

		got := valueToString(result.Success.Value)
		if c.Expected == nil {
			fmt.Printf("OK   %s: %s\n", label, got)
			continue
		}
		if got == *c.Expected {
			fmt.Printf("PASS %s\n", label)
		} else {
			fmt.Printf("FAIL %s: expected %q, got %q\n", label, *c.Expected, got)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d case(s) failed", failures)
	}
	return nil
}
