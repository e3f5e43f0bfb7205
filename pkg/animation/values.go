package animation

import (
	"sort"
	"strconv"
	"strings"
)

// Values is an ordered set of named dimensions, such as x and width, each
// holding one number. Values is immutable: With returns a new set.
//
//	pos := animation.V("x", 0).With("y", 10)
type Values struct {
	keys []string
	vals []float64
}

// V returns a one-dimensional value set.
func V(key string, value float64) Values {
	return Values{keys: []string{key}, vals: []float64{value}}
}

// FromMap builds a value set from m. Keys are sorted so that the dimension
// order is deterministic.
func FromMap(m map[string]float64) Values {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}
	return Values{keys: keys, vals: vals}
}

// With returns a copy of v with key set to value. A new key is appended
// after the existing ones.
func (v Values) With(key string, value float64) Values {
	i := v.index(key)
	out := Values{
		keys: append([]string(nil), v.keys...),
		vals: append([]float64(nil), v.vals...),
	}
	if i >= 0 {
		out.vals[i] = value
		return out
	}
	out.keys = append(out.keys, key)
	out.vals = append(out.vals, value)
	return out
}

// Len returns the number of dimensions.
func (v Values) Len() int { return len(v.keys) }

// Keys returns the dimension names in order.
func (v Values) Keys() []string {
	return append([]string(nil), v.keys...)
}

// Get returns the value of key.
func (v Values) Get(key string) (float64, bool) {
	if i := v.index(key); i >= 0 {
		return v.vals[i], true
	}
	return 0, false
}

// Map returns the values as a fresh map.
func (v Values) Map() map[string]float64 {
	m := make(map[string]float64, len(v.keys))
	for i, k := range v.keys {
		m[k] = v.vals[i]
	}
	return m
}

// Equal reports whether v and o hold the same keys, in the same order,
// with the same values.
func (v Values) Equal(o Values) bool {
	if len(v.keys) != len(o.keys) {
		return false
	}
	for i := range v.keys {
		if v.keys[i] != o.keys[i] || v.vals[i] != o.vals[i] {
			return false
		}
	}
	return true
}

func (v Values) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range v.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(strconv.FormatFloat(v.vals[i], 'g', -1, 64))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (v Values) index(key string) int {
	for i, k := range v.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// project returns v's values in the order of keys. The first key of v not
// in keys is returned as missing when the key sets differ.
func (v Values) project(keys []string) (vals []float64, missing string, ok bool) {
	vals = make([]float64, len(keys))
	for i, k := range keys {
		j := v.index(k)
		if j < 0 {
			for _, vk := range v.keys {
				if indexOf(keys, vk) < 0 {
					return nil, vk, false
				}
			}
			return nil, k, false
		}
		vals[i] = v.vals[j]
	}
	return vals, "", true
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

func valuesOf(keys []string, vals []float64) Values {
	return Values{
		keys: append([]string(nil), keys...),
		vals: append([]float64(nil), vals...),
	}
}
