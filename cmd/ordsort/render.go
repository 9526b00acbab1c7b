package main

import (
	"github.com/amp-labs/ord-collections/ordmap"
	"github.com/amp-labs/ord-collections/ordseq"
	"github.com/amp-labs/ord-collections/sortable"
)

func convert[E ~string](in []string) []E {
	out := make([]E, 0, len(in))
	for _, s := range in {
		out = append(out, E(s))
	}

	return out
}

func renderSequence[E sortable.Sortable[E]](elements []E, separator string) (string, error) {
	seq, err := ordseq.FromSlice(elements)
	if err != nil {
		return "", err
	}

	return seq.Join(separator), nil
}

func renderMap[K interface {
	~string
	sortable.Sortable[K]
}](entries []entry) (string, error) {
	converted := make([]ordmap.Entry[K, string], 0, len(entries))
	for _, e := range entries {
		converted = append(converted, ordmap.NewEntry(K(e.Key), e.Value))
	}

	m, err := ordmap.FromEntries(converted...)
	if err != nil {
		return "", err
	}

	return m.Join("\n"), nil
}

// render builds the collection described by conf from doc and returns its
// display form.
func render(conf Config, doc document) (string, error) {
	switch {
	case conf.Map && conf.Natural:
		return renderMap[sortable.Natural](doc.Entries)
	case conf.Map:
		return renderMap[sortable.String](doc.Entries)
	case conf.Natural:
		return renderSequence(convert[sortable.Natural](doc.Elements), conf.Separator)
	default:
		return renderSequence(convert[sortable.String](doc.Elements), conf.Separator)
	}
}
