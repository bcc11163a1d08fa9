package validation

import (
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
)

// Record is one longhand assignment produced by a declaration.
type Record struct {
	Value values.Value
	// Property is a longhand, or [pr.PVariable] for custom properties.
	Property pr.KnownProp
	// FromShorthand is the shorthand the record was expanded from, or 0.
	FromShorthand pr.KnownProp
	// ShorthandIndex is the index of [FromShorthand] in the
	// shorthands setting [Property], when there are several of them.
	ShorthandIndex int
	Important      bool
	// Implicit is true for the longhands omitted in a shorthand,
	// which are set to their initial value.
	Implicit bool
}

// Mark is a savepoint of a [Collector].
type Mark int

// Collector is an append only log of records, supporting
// savepoints: records appended after a [Mark] may be discarded
// with [Collector.Rollback].
// The zero value is ready to use.
type Collector struct {
	records []Record
}

// Mark returns a savepoint.
func (c *Collector) Mark() Mark { return Mark(len(c.records)) }

// Rollback discards the records added since [m].
func (c *Collector) Rollback(m Mark) {
	if int(m) < len(c.records) {
		for i := int(m); i < len(c.records); i++ {
			c.records[i] = Record{} // release the values
		}
		c.records = c.records[:m]
	}
}

// Transaction calls [fn] and discards the records it appended
// if it returns false.
func (c *Collector) Transaction(fn func() bool) bool {
	m := c.Mark()
	if fn() {
		return true
	}
	c.Rollback(m)
	return false
}

// Len returns the number of records.
func (c *Collector) Len() int { return len(c.records) }

// Records returns the committed records.
// The slice must not be modified.
func (c *Collector) Records() []Record { return c.records }

// Since returns the records appended after [m].
func (c *Collector) Since(m Mark) []Record { return c.records[m:] }

func (c *Collector) add(r Record) { c.records = append(c.records, r) }
