package feature

// Palette is the categorical fill palette handed out to feature names
// without an explicit colour, in order of first use.
var Palette = []string{
	"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
	"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
}

// Entry is one explicitly configured feature token.
type Entry struct {
	Token string `json:"token" toml:"token"`
	Name  string `json:"name" toml:"name"`
	Value string `json:"value" toml:"value"`
	Short string `json:"short,omitempty" toml:"short"`
	Color string `json:"color,omitempty" toml:"color"`
}

// Registry maps tokens to label renderings and feature names to fill
// colours. The zero value is ready to use and behaves like [ParseToken].
//
// A Registry is not safe for concurrent use: colour assignment mutates it.
type Registry struct {
	infos  map[string]Info
	colors map[string]string
	next   int
}

// NewRegistry builds a registry from explicit entries. Later entries with
// the same token replace earlier ones.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{}
	for _, e := range entries {
		r.Add(e)
	}
	return r
}

// Add registers e. An entry without a name is parsed from its token.
func (r *Registry) Add(e Entry) {
	if r.infos == nil {
		r.infos = make(map[string]Info)
	}
	var info Info
	if e.Name == "" {
		info = ParseToken(e.Token)
	} else {
		info = Compose(e.Name, e.Value, e.Short)
	}
	r.infos[e.Token] = info
	if e.Color != "" {
		r.setColor(info.Name, e.Color)
	}
}

func (r *Registry) setColor(name, color string) {
	if r.colors == nil {
		r.colors = make(map[string]string)
	}
	r.colors[name] = color
}

// Lookup returns the Info for token, falling back to [ParseToken].
func (r *Registry) Lookup(token string) Info {
	if info, ok := r.infos[token]; ok {
		return info
	}
	return ParseToken(token)
}

// Color returns the fill colour of the feature behind token. Names without
// a configured colour take the next [Palette] entry the first time they
// are seen.
func (r *Registry) Color(token string) string {
	name := r.Lookup(token).Name
	if c, ok := r.colors[name]; ok {
		return c
	}
	c := Palette[r.next%len(Palette)]
	r.next++
	r.setColor(name, c)
	return c
}

// Len returns the number of explicit entries.
func (r *Registry) Len() int { return len(r.infos) }

// Ensure Registry implements Lookup.
var _ Lookup = (*Registry)(nil)
