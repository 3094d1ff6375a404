package citation

import "github.com/refdeck/refdeck/internal/source"

// RenderAll computes the full citation bundle for a record: both forms for
// every style, keyed by lowercase style name. Rendering is deterministic, so
// calling RenderAll twice on an unchanged record yields byte-identical
// bundles.
func RenderAll(rec *source.Record) source.Bundle {
	bundle := make(source.Bundle, len(Styles))
	for _, style := range Styles {
		bundle[style.Key()] = source.Citation{
			InText:    InText(rec, style),
			Reference: ReferenceEntry(rec, style),
		}
	}
	return bundle
}

// Enrich returns a copy of the record with the precomputed citation bundle
// attached. If the record already carries a bundle it is returned unchanged;
// re-rendering an unchanged record would produce an identical bundle, so the
// cached one stands. Callers that change bibliographic fields should clear
// Citations before enriching again.
func Enrich(rec source.Record) source.Record {
	if rec.Citations != nil {
		return rec
	}
	rec.Citations = RenderAll(&rec)
	return rec
}

// CitationFor returns the rendered citation for a record in one style,
// preferring the precomputed bundle over ad hoc reformatting so consumers
// see the same strings the bundle was populated with.
func CitationFor(rec *source.Record, style Style) source.Citation {
	if rec.Citations != nil {
		if c, ok := rec.Citations.Get(style.Key()); ok {
			return c
		}
	}
	return source.Citation{
		InText:    InText(rec, style),
		Reference: ReferenceEntry(rec, style),
	}
}
