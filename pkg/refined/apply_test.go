package refined_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined/pkg/constant"
	"github.com/dmitrymomot/refined/pkg/refined"
)

type account struct {
	ID    refined.Refined[string, refined.UUID]
	Age   refined.Refined[int, refined.Between[int, constant.Ten[int], constant.Hundred[int]]]
	Codes refined.Vector[int, constant.Ten[int]]
}

func buildAccount(id string, age int, codes []int) (account, error) {
	var acc account
	err := refined.Apply(
		refined.Field("id", id, &acc.ID),
		refined.Field("age", age, &acc.Age),
		refined.RuleFunc("codes", func() (err error) {
			acc.Codes, err = refined.NewVector[constant.Ten[int]](codes)
			return err
		}),
	)
	return acc, err
}

func TestApply(t *testing.T) {
	t.Parallel()

	const id = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	t.Run("builds every field", func(t *testing.T) {
		acc, err := buildAccount(id, 30, sequence(10))
		require.NoError(t, err)
		assert.Equal(t, id, acc.ID.Unwrap())
		assert.Equal(t, 30, acc.Age.Unwrap())
		assert.Equal(t, 10, acc.Codes.Len())
	})

	t.Run("rejects eleven codes for a vector of ten", func(t *testing.T) {
		acc, err := buildAccount(id, 30, sequence(11))
		require.Error(t, err)
		assert.True(t, refined.IsViolation(err))

		violations := refined.ExtractViolations(err)
		require.Len(t, violations, 1)
		assert.Equal(t, []string{"codes"}, violations.Fields())
		assert.False(t, acc.Codes.IsValid())
		assert.True(t, acc.ID.IsValid())
	})

	t.Run("collects every failure", func(t *testing.T) {
		acc, err := buildAccount("nope", 5, nil)
		require.Error(t, err)

		violations := refined.ExtractViolations(err)
		assert.Equal(t, []string{"id", "age", "codes"}, violations.Fields())
		assert.True(t, violations.Has("age"))
		assert.False(t, violations.Has("name"))
		assert.False(t, acc.ID.IsValid())
		assert.False(t, acc.Age.IsValid())
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, refined.Apply())
		assert.NoError(t, refined.Apply(refined.Rule{Field: "empty"}))
	})
}

func TestViolations(t *testing.T) {
	t.Parallel()

	_, err := buildAccount("nope", 5, sequence(10))
	require.Error(t, err)
	violations := refined.ExtractViolations(err)
	require.False(t, violations.IsEmpty())

	t.Run("renders every field", func(t *testing.T) {
		assert.Equal(t,
			"constraint violations: id: constraint not satisfied: 'a valid UUID' by value: 'nope'; "+
				"age: constraint not satisfied: 'greater than 10 and less than 100' by value: '5'",
			err.Error(),
		)
	})

	t.Run("gets messages per field", func(t *testing.T) {
		msgs := violations.Get("age")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "greater than 10")
		assert.Empty(t, violations.Get("codes"))
	})

	t.Run("gets typed violations per field", func(t *testing.T) {
		vs := violations.GetViolations("id")
		require.Len(t, vs, 1)
		assert.Equal(t, refined.KeyConstraint, vs[0].TranslationKey)
		assert.Equal(t, "nope", vs[0].TranslationValues["value"])
	})

	t.Run("unwraps to the field errors", func(t *testing.T) {
		var v *refined.Violation
		require.True(t, errors.As(err, &v))
		assert.Equal(t, "a valid UUID", v.Constraint)
	})

	t.Run("add appends in order", func(t *testing.T) {
		var vs refined.Violations
		vs.Add("a", errors.New("first"))
		vs.Add("a", errors.New("second"))
		assert.Equal(t, []string{"first", "second"}, vs.Get("a"))
		assert.Equal(t, []string{"a"}, vs.Fields())
	})
}

func TestExtractViolations(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for nil", func(t *testing.T) {
		assert.Nil(t, refined.ExtractViolations(nil))
	})

	t.Run("returns nil for unrelated errors", func(t *testing.T) {
		assert.Nil(t, refined.ExtractViolations(errors.New("boom")))
	})

	t.Run("finds wrapped violations", func(t *testing.T) {
		_, err := buildAccount("nope", 30, sequence(10))
		wrapped := errors.Join(errors.New("create account"), err)
		violations := refined.ExtractViolations(wrapped)
		assert.Equal(t, []string{"id"}, violations.Fields())
	})
}
