package easing

// DefaultName is the curve used when a requested name is unknown.
const DefaultName = "easeInOutSine"

type entry struct {
	name string
	fn   Func
}

// registry is built once and never mutated, so lookups need no locking.
var registry = []entry{
	{"easeLinear", Linear},
	{"easeInQuad", InQuad},
	{"easeOutQuad", OutQuad},
	{"easeInOutQuad", InOutQuad},
	{"easeInCubic", InCubic},
	{"easeOutCubic", OutCubic},
	{"easeInOutCubic", InOutCubic},
	{"easeInQuartic", InQuartic},
	{"easeOutQuartic", OutQuartic},
	{"easeInOutQuartic", InOutQuartic},
	{"easeInQuintic", InQuintic},
	{"easeOutQuintic", OutQuintic},
	{"easeInOutQuintic", InOutQuintic},
	{"easeInSine", InSine},
	{"easeOutSine", OutSine},
	{"easeInOutSine", InOutSine},
	{"easeInBounce", InBounce},
	{"easeOutBounce", OutBounce},
	{"easeInOutBounce", InOutBounce},
	{"easeInElastic", InElastic},
	{"easeOutElastic", OutElastic},
	{"easeInOutElastic", InOutElastic},
}

var byName = func() map[string]Func {
	m := make(map[string]Func, len(registry))
	for _, e := range registry {
		m[e.name] = e.fn
	}
	return m
}()

// Names returns the registered curve names in registry order. The caller
// owns the returned slice.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := byName[name]
	return fn, ok
}

// Resolve returns the curve registered under name, or the default curve if
// there is none. The returned name is the one actually used; ok reports
// whether name was found.
func Resolve(name string) (fn Func, resolved string, ok bool) {
	if fn, ok := byName[name]; ok {
		return fn, name, true
	}
	return byName[DefaultName], DefaultName, false
}
