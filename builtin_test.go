package fluent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent"
	"github.com/dmitrymomot/fluent/ast"
)

func numberCall(variable string, named ...*ast.NamedArgument) ast.Expression {
	return &ast.FunctionReference{ID: "NUMBER", Arguments: &ast.CallArguments{
		Positional: []ast.Expression{&ast.VariableReference{Name: variable}},
		Named:      named,
	}}
}

func TestBuiltinNumber(t *testing.T) {
	t.Parallel()

	t.Run("requires WithBuiltins", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("n", pat(ph(numberCall("v")))),
		))

		out, errs, err := b.Format("n", fluent.Args{"v": fluent.Int(1)})
		require.NoError(t, err)
		assert.Empty(t, out)

		var refErr *fluent.ReferenceError
		require.Len(t, errs, 1)
		require.ErrorAs(t, errs[0], &refErr)
		assert.Equal(t, fluent.KindFunction, refErr.Kind)
	})

	t.Run("formats with grouping", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("n", pat(ph(numberCall("v")))),
		), fluent.WithBuiltins())

		out, errs, err := b.Format("n", fluent.Args{"v": fluent.Int(1234567)})
		require.NoError(t, err)
		require.Empty(t, errs)
		assert.Equal(t, "1,234,567", out)
	})

	t.Run("maximum fraction digits rounds", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("n", pat(ph(numberCall("v",
				&ast.NamedArgument{Name: "maximumFractionDigits", Value: ast.NumberLiteral{Value: "2"}},
			)))),
		), fluent.WithBuiltins())

		out, _, err := b.Format("n", fluent.Args{"v": fluent.Float(2.347)})
		require.NoError(t, err)
		assert.Equal(t, "2.35", out)
	})

	t.Run("minimum fraction digits pads", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("n", pat(ph(numberCall("v",
				&ast.NamedArgument{Name: "minimumFractionDigits", Value: ast.NumberLiteral{Value: "2"}},
			)))),
		), fluent.WithBuiltins())

		out, _, err := b.Format("n", fluent.Args{"v": fluent.Int(5)})
		require.NoError(t, err)
		assert.Equal(t, "5.00", out)
	})

	t.Run("hints feed plural selection", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("stars", pat(ph(sel(
				numberCall("v", &ast.NamedArgument{Name: "minimumFractionDigits", Value: ast.NumberLiteral{Value: "1"}}),
				variant(ast.Identifier{Name: "one"}, false, pat(ast.Text("one star"))),
				variant(ast.Identifier{Name: "other"}, true, pat(ast.Text("stars"))),
			)))),
		), fluent.WithBuiltins())

		out, _, err := b.Format("stars", fluent.Args{"v": fluent.Int(1)})
		require.NoError(t, err)
		assert.Equal(t, "stars", out)
	})

	t.Run("coerces numeric strings", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("n", pat(ph(numberCall("v")))),
		), fluent.WithBuiltins())

		out, errs, err := b.Format("n", fluent.Args{"v": fluent.String("42")})
		require.NoError(t, err)
		require.Empty(t, errs)
		assert.Equal(t, "42", out)
	})

	t.Run("non-numeric input renders empty", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("n", pat(ast.Text("<"), ph(numberCall("v")), ast.Text(">"))),
		), fluent.WithBuiltins())

		out, _, err := b.Format("n", fluent.Args{"v": fluent.String("abc")})
		require.NoError(t, err)
		assert.Equal(t, "<>", out)
	})

	t.Run("missing positional argument renders empty", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("n", pat(ast.Text("<"), ph(&ast.FunctionReference{ID: "NUMBER"}), ast.Text(">"))),
		), fluent.WithBuiltins())

		out, _, err := b.Format("n")
		require.NoError(t, err)
		assert.Equal(t, "<>", out)
	})

	t.Run("ignores junk hint values", func(t *testing.T) {
		t.Parallel()
		b := mustBundle(t, resource(
			msg("n", pat(ph(numberCall("v",
				&ast.NamedArgument{Name: "minimumFractionDigits", Value: ast.StringLiteral{Value: "lots"}},
				&ast.NamedArgument{Name: "maximumFractionDigits", Value: ast.NumberLiteral{Value: "-3"}},
			)))),
		), fluent.WithBuiltins())

		out, _, err := b.Format("n", fluent.Args{"v": fluent.Float(1.5)})
		require.NoError(t, err)
		assert.Equal(t, "1.5", out)
	})
}
