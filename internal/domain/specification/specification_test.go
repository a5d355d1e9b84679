package specification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/catalog/internal/domain/specification"
)

// gt matches ints greater than n.
type gt int

func (g gt) IsSatisfiedBy(candidate interface{}) bool {
	v, ok := candidate.(int)
	return ok && v > int(g)
}

func (g gt) ToSQL() (string, []interface{}) {
	return "n > ?", []interface{}{int(g)}
}

func TestAll(t *testing.T) {
	all := specification.All()
	assert.True(t, all.IsSatisfiedBy(nil))
	assert.True(t, specification.IsAll(all))
	assert.True(t, specification.IsAll(nil))
	assert.False(t, specification.IsAll(gt(1)))

	sql, params := all.ToSQL()
	assert.Equal(t, "1 = 1", sql)
	assert.Empty(t, params)
}

func TestAnd(t *testing.T) {
	spec := specification.And(gt(1), nil, specification.All(), specification.Not(gt(5)))

	assert.True(t, spec.IsSatisfiedBy(3))
	assert.False(t, spec.IsSatisfiedBy(1))
	assert.False(t, spec.IsSatisfiedBy(6))

	sql, params := spec.ToSQL()
	assert.Equal(t, "(n > ? AND NOT (n > ?))", sql)
	assert.Equal(t, []interface{}{1, 5}, params)
}

func TestAnd_CollapsesOperands(t *testing.T) {
	assert.True(t, specification.IsAll(specification.And()))
	assert.True(t, specification.IsAll(specification.And(nil, specification.All())))
	assert.Equal(t, gt(2), specification.And(gt(2)))
}

func TestOr(t *testing.T) {
	spec := specification.Or(gt(10), specification.Not(gt(0)))

	assert.True(t, spec.IsSatisfiedBy(11))
	assert.True(t, spec.IsSatisfiedBy(-1))
	assert.False(t, spec.IsSatisfiedBy(5))

	sql, params := spec.ToSQL()
	assert.Equal(t, "(n > ? OR NOT (n > ?))", sql)
	assert.Equal(t, []interface{}{10, 0}, params)

	assert.True(t, specification.IsAll(specification.Or(gt(1), specification.All())))
}

func TestNested(t *testing.T) {
	spec := specification.And(specification.Or(gt(10), gt(20)), gt(15))
	sql, params := spec.ToSQL()
	assert.Equal(t, "((n > ? OR n > ?) AND n > ?)", sql)
	assert.Equal(t, []interface{}{10, 20, 15}, params)
	assert.True(t, spec.IsSatisfiedBy(16))
	assert.False(t, spec.IsSatisfiedBy(12))
}
