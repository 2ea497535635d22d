package querybuilder

import "strings"

// Condition is one SQL predicate fragment. Conditions compose with And
// and Or, so callers can build arbitrary selector unions while the
// builder keeps placeholder numbering consistent.
type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	buf.WriteString(placeholder(*argIndex))
	*args = append(*args, c.value)
	*argIndex = *argIndex + 1
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

// InStrings is In for the common string-key case.
func InStrings(column string, values []string) Condition {
	anyValues := make([]any, 0, len(values))
	for _, v := range values {
		anyValues = append(anyValues, v)
	}
	return In(column, anyValues)
}

func (c inCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	if len(c.values) == 0 {
		buf.WriteString("1=0")
		return
	}

	buf.WriteString(c.column)
	buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(placeholder(*argIndex))
		*args = append(*args, v)
		*argIndex = *argIndex + 1
	}
	buf.WriteString(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) appendSQL(buf *strings.Builder, _ *[]any, _ *int) {
	buf.WriteString(c.column)
	buf.WriteString(" IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds a raw SQL fragment with ?-style placeholders, rewritten to
// $n numbering at build time. Used for subqueries and tuple comparisons
// the typed conditions cannot express.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(rewritePlaceholders(c.expr, c.args, args, argIndex))
}

type compositeCondition struct {
	op         string
	conditions []Condition
	whenEmpty  string
}

// Or matches when any member condition matches. An empty Or matches
// nothing, mirroring an empty selector union.
func Or(conditions ...Condition) Condition {
	return compositeCondition{op: " OR ", conditions: conditions, whenEmpty: "1=0"}
}

// And matches when every member condition matches.
func And(conditions ...Condition) Condition {
	return compositeCondition{op: " AND ", conditions: conditions, whenEmpty: "1=1"}
}

func (c compositeCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	if len(c.conditions) == 0 {
		buf.WriteString(c.whenEmpty)
		return
	}
	if len(c.conditions) == 1 {
		c.conditions[0].appendSQL(buf, args, argIndex)
		return
	}

	buf.WriteString("(")
	for i, cond := range c.conditions {
		if i > 0 {
			buf.WriteString(c.op)
		}
		cond.appendSQL(buf, args, argIndex)
	}
	buf.WriteString(")")
}
