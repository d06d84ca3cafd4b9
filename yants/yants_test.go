package yants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvan-sraka/contracts"
	"github.com/yvan-sraka/contracts/yants"
)

func TestTypedef(t *testing.T) {
	t.Parallel()

	positive := yants.Typedef("positive", func(v any) bool {
		n, ok := v.(int)
		return ok && n > 0
	})
	assert.Equal(t, "positive", positive.Name)
	assert.True(t, positive.Check(1))
	assert.False(t, positive.Check(-1))
	assert.False(t, positive.Check("1"))
}

func TestNameTable(t *testing.T) {
	t.Parallel()

	t.Run("list delegates to listOf", func(t *testing.T) {
		l := yants.List(yants.Int)
		assert.True(t, l.Check([]any{1, 2}))
		assert.False(t, l.Check([]any{1, "x"}))
	})

	t.Run("attrs delegates to setOf", func(t *testing.T) {
		a := yants.Attrs(yants.String)
		assert.True(t, a.Check(map[string]any{"k": "v"}))
		assert.False(t, a.Check(map[string]any{"k": 1}))
	})

	t.Run("either and eitherN are unions", func(t *testing.T) {
		e := yants.Either(yants.Int, yants.String)
		assert.True(t, e.Check(5))
		assert.True(t, e.Check("x"))
		assert.False(t, e.Check(true))

		n := yants.EitherN(yants.Int, yants.String, yants.Bool)
		assert.True(t, n.Check(true))
		assert.False(t, n.Check(3.14))
	})

	t.Run("function and primitives re-export", func(t *testing.T) {
		assert.True(t, yants.Function.Check(func() {}))
		assert.True(t, yants.Float.Check(3.14))
		assert.True(t, yants.Null.Check(nil))
		assert.True(t, yants.Any.Check(struct{}{}))
	})

	t.Run("unit matches only the empty attribute set", func(t *testing.T) {
		assert.True(t, yants.Unit.Check(map[string]any{}))
		assert.False(t, yants.Unit.Check(map[string]any{"a": 1}))
		assert.False(t, yants.Unit.Check(nil))
	})
}

func TestEnumLiterals(t *testing.T) {
	t.Parallel()

	color := yants.Enum("color", "red", "green", "blue")
	assert.Equal(t, "color", color.Name)
	assert.True(t, color.Check("red"))
	assert.True(t, color.Check("blue"))
	assert.False(t, color.Check("purple"))
	assert.False(t, color.Check(0))
}

func TestOptionNullable(t *testing.T) {
	t.Parallel()

	opt := yants.Option(yants.Int)
	assert.Equal(t, "option (int)", opt.Name)
	assert.True(t, opt.Check(nil))
	assert.True(t, opt.Check(5))
	assert.False(t, opt.Check("5"))
}

func TestRestrict(t *testing.T) {
	t.Parallel()

	even := yants.Restrict("even", func(v any) bool {
		return v.(int)%2 == 0
	}, yants.Int)

	assert.Equal(t, "even", even.Name)
	assert.True(t, even.Check(4))
	assert.False(t, even.Check(3))
	assert.False(t, even.Check("4"), "refinement runs only after the base type accepts")
}

func TestStruct(t *testing.T) {
	t.Parallel()

	login := yants.Struct("login", map[string]any{
		"user":     yants.String,
		"password": yants.String,
	})
	assert.Equal(t, "login", login.Name)
	assert.True(t, login.Check(map[string]any{"user": "a", "password": "b", "extra": 1}))
	assert.False(t, login.Check(map[string]any{"user": "a"}))
}

func TestSum(t *testing.T) {
	t.Parallel()

	result := yants.Sum("result", map[string]any{
		"ok":  yants.Int,
		"err": yants.String,
	})

	t.Run("selects the variant by tag", func(t *testing.T) {
		assert.True(t, result.Check(map[string]any{"ok": 5}))
		assert.True(t, result.Check(map[string]any{"err": "boom"}))
		assert.False(t, result.Check(map[string]any{"ok": "5"}))
	})

	t.Run("rejects unknown tags and multi-key maps", func(t *testing.T) {
		assert.False(t, result.Check(map[string]any{"warn": 5}))
		assert.False(t, result.Check(map[string]any{"ok": 5, "err": "x"}))
		assert.False(t, result.Check(map[string]any{}))
		assert.False(t, result.Check("ok"))
	})
}

func TestDefun(t *testing.T) {
	t.Parallel()

	engine := contracts.New(contracts.Config{Enable: true})
	add := yants.DefunOn(engine, []any{yants.Int, yants.Int, yants.Int},
		func(args ...any) any {
			return args[0].(int) + args[1].(int)
		})

	t.Run("checked call succeeds", func(t *testing.T) {
		got, err := add(2, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("argument violation is recoverable", func(t *testing.T) {
		_, err := add("2", 3)
		require.Error(t, err)
		assert.True(t, contracts.IsContractViolation(err))
	})

	t.Run("result violation is recoverable", func(t *testing.T) {
		lying := yants.DefunOn(engine, []any{yants.Int, yants.String},
			func(args ...any) any { return args[0] })
		_, err := lying(1)
		require.Error(t, err)
		assert.True(t, contracts.IsContractViolation(err))
	})
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	t.Run("panicking validators report false", func(t *testing.T) {
		throwing := yants.Unwrap(func(v any) any {
			if _, ok := v.(int); !ok {
				panic("not an int")
			}
			return v
		})
		assert.True(t, throwing.Check(5))
		assert.False(t, throwing.Check("5"))
	})

	t.Run("boolean returns keep their verdict", func(t *testing.T) {
		boolish := yants.Unwrap(func(v any) any { return v == 1 })
		assert.True(t, boolish.Check(1))
		assert.False(t, boolish.Check(2))
	})

	t.Run("non-boolean returns count as success", func(t *testing.T) {
		coercing := yants.Unwrap(func(v any) any { return "coerced" })
		assert.True(t, coercing.Check(nil))
	})
}

func TestOpt(t *testing.T) {
	t.Parallel()

	t.Run("string becomes an ad-hoc named type", func(t *testing.T) {
		got := yants.Opt("freeform")
		assert.Equal(t, "freeform", got.Name)
		assert.True(t, got.Check(42))
		assert.True(t, got.Check(nil))
	})

	t.Run("specs delegate to Def", func(t *testing.T) {
		got := yants.Opt(map[string]any{"user": yants.String})
		assert.True(t, got.Check(map[string]any{"user": "a"}))
		assert.False(t, got.Check(map[string]any{}))
	})
}
