package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one way to pull a field out of a page: a CSS selector and
// optionally an attribute to read instead of the element text. Adapters
// declare an ordered list per field; the first strategy yielding a
// non-empty value wins, which is what keeps them alive through markup
// drift.
type Strategy struct {
	Selector string
	Attr     string
}

// FirstString runs the strategies in order and returns the first
// non-empty single value.
func FirstString(doc *goquery.Document, strategies []Strategy) string {
	for _, st := range strategies {
		sel := doc.Find(st.Selector).First()
		if sel.Length() == 0 {
			continue
		}
		if v := strategyValue(sel, st); v != "" {
			return v
		}
	}
	return ""
}

// FirstList runs the strategies in order and returns the values of the
// first selector matching at least one element with non-empty content.
func FirstList(doc *goquery.Document, strategies []Strategy) []string {
	for _, st := range strategies {
		var out []string
		doc.Find(st.Selector).Each(func(_ int, sel *goquery.Selection) {
			if v := strategyValue(sel, st); v != "" {
				out = append(out, v)
			}
		})
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func strategyValue(sel *goquery.Selection, st Strategy) string {
	if st.Attr != "" {
		v, _ := sel.Attr(st.Attr)
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(sel.Text())
}
