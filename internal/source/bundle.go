package source

// Citation holds the two rendered forms of one style.
type Citation struct {
	InText    string `json:"in_text"`
	Reference string `json:"reference"`
}

// Bundle is the precomputed citation bundle: every style rendered in both
// forms, computed once so that later insertion into a document never
// re-derives formatting. Keys are lowercase style names (apa, mla, chicago,
// ieee).
type Bundle map[string]Citation

// Get returns the citation for a lowercase style key.
func (b Bundle) Get(styleKey string) (Citation, bool) {
	c, ok := b[styleKey]
	return c, ok
}
