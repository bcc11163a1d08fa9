package values

import (
	"sync"

	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/logger"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select(logger.KeyValues)
}

const (
	// maxPooledInteger bounds the numeric values stored in a [Pool]
	maxPooledInteger = 255
	// maxPooledKeywords and maxPooledColors bound the size of a [Pool]:
	// once reached, new values are returned without being stored.
	maxPooledKeywords = 2048
	maxPooledColors   = 1024
	maxPooledNumerics = (maxPooledInteger + 1) * 256 // one per integer and unit
)

type numericKey struct {
	value int
	unit  pr.Unit
}

// Pool stores frequently used values, like keywords, small
// integers and colors, so that identical values share the same
// boxed interface.
//
// A Pool is safe for concurrent use: the first insertion of a value
// wins, and later calls return the stored value. Its size is bounded.
type Pool struct {
	mu       sync.RWMutex
	keywords map[Keyword]Value
	numerics map[numericKey]Value
	colors   map[Color]Value
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{
		keywords: make(map[Keyword]Value),
		numerics: make(map[numericKey]Value),
		colors:   make(map[Color]Value),
	}
}

// Len returns the number of pooled values.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.keywords) + len(p.numerics) + len(p.colors)
}

func fetchOrCreate[K comparable](p *Pool, m map[K]Value, key K, limit int, create func() Value) Value {
	p.mu.RLock()
	v, ok := m[key]
	p.mu.RUnlock()
	if ok {
		return v
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := m[key]; ok { // inserted by a concurrent call
		return v
	}
	v = create()
	if len(m) >= limit {
		return v
	}
	m[key] = v
	tracer().Debugf("value pool: new entry %s", v.CSSText())
	return v
}

// Keyword returns the pooled keyword [k], which must be lower case.
func (p *Pool) Keyword(k string) Value {
	key := Keyword(k)
	return fetchOrCreate(p, p.keywords, key, maxPooledKeywords, func() Value { return key })
}

// Numeric returns a numeric value, which is pooled when [value]
// is a small non negative integer.
func (p *Pool) Numeric(value Fl, unit pr.Unit) Value {
	if value < 0 || value > maxPooledInteger || value != Fl(int(value)) {
		return Numeric{Value: value, Unit: unit}
	}
	key := numericKey{value: int(value), unit: unit}
	return fetchOrCreate(p, p.numerics, key, maxPooledNumerics, func() Value { return Numeric{Value: value, Unit: unit} })
}

// Color returns the pooled color [c].
func (p *Pool) Color(c Color) Value {
	return fetchOrCreate(p, p.colors, c, maxPooledColors, func() Value { return c })
}
