package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/errors"
	"github.com/feel-lang/feel/internal/lexer"
	"github.com/feel-lang/feel/internal/parser"
)

var (
	parseExprFlag string
	parseAsTest   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a FEEL expression and print its AST",
	Long: `parse parses a FEEL expression (or, with --unary-test, a unary-test
list) and prints the resulting AST via its pretty-printed form, a
debugging aid rather than part of the evaluation path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExprFlag, "eval", "e", "", "parse this expression instead of reading a file")
	parseCmd.Flags().BoolVar(&parseAsTest, "unary-test", false, "parse as a unary-test list instead of an expression")
}

func runParse(_ *cobra.Command, args []string) error {
	input, err := resolveSingleInput(parseExprFlag, args)
	if err != nil {
		return err
	}

	p := parser.New(lexer.New(input))
	var expr ast.Expression
	var ok bool
	if parseAsTest {
		expr, ok = p.ParseUnaryTests()
	} else {
		expr, ok = p.ParseExpression()
	}

	if !ok {
		for _, e := range p.Errors() {
			se := errors.New(e.Pos, e.Message, input)
			fmt.Fprintln(os.Stderr, se.Format())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	fmt.Println(ast.Print(expr))
	return nil
}
