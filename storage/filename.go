package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

var nonWordRE = regexp.MustCompile(`[^\w]`)

// DatasetFilename names a fresh catalog dataset: {prefix}_{timestamp}.{ext}.
func DatasetFilename(prefix, ext string, ts time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, ts.Format(timestampLayout), ext)
}

// MixParams describe one mix invocation for filename purposes.
type MixParams struct {
	Components []string
	Keywords   []string
	MinPrice   *float64
	MaxPrice   *float64
	AIEnhanced bool
}

// MixFilename encodes the active filter into the output name:
// pc_mix_{components}_{keywords}_{price}[_ai]_{timestamp}.json. At most
// three keywords contribute, stripped to word characters. The name is
// purely cosmetic; nothing reads the parameters back out of it.
func MixFilename(p MixParams, ts time.Time) string {
	var b strings.Builder
	b.WriteString("pc_mix_")
	b.WriteString(strings.Join(p.Components, "_"))

	kws := p.Keywords
	if len(kws) > 3 {
		kws = kws[:3]
	}
	for _, kw := range kws {
		b.WriteString("_")
		b.WriteString(nonWordRE.ReplaceAllString(kw, ""))
	}

	switch {
	case p.MinPrice != nil && p.MaxPrice != nil:
		fmt.Fprintf(&b, "_€%.0f-%.0f", *p.MinPrice, *p.MaxPrice)
	case p.MinPrice != nil:
		fmt.Fprintf(&b, "_€%.0f+", *p.MinPrice)
	case p.MaxPrice != nil:
		fmt.Fprintf(&b, "_€%.0f-", *p.MaxPrice)
	}

	if p.AIEnhanced {
		b.WriteString("_ai")
	}
	fmt.Fprintf(&b, "_%s.json", ts.Format(timestampLayout))
	return b.String()
}
