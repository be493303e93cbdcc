package browser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pcpart-scraper/scraper"
)

// rowHandle is one listing row lifted out of the rendered page. Cell text
// and links are extracted eagerly from the row markup, so the record parser
// never reaches back into the browser.
type rowHandle struct {
	cells []rowCell
	text  string
}

type rowCell struct {
	text string
	link string
}

func (r *rowHandle) CellCount() int { return len(r.cells) }

func (r *rowHandle) CellText(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i].text
}

func (r *rowHandle) CellLink(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i].link
}

func (r *rowHandle) Text() string { return r.text }

// parseRows turns harvested row markup into row handles. pageURL anchors
// relative hrefs. Markup that will not parse is dropped silently; the
// record parser deals with rows that parsed but carry too little.
func parseRows(rowHTML []string, pageURL string) ([]scraper.Row, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	rows := make([]scraper.Row, 0, len(rowHTML))
	for _, markup := range rowHTML {
		// tr/td elements survive the HTML parser only inside a table.
		doc, err := goquery.NewDocumentFromReader(
			strings.NewReader("<table><tbody>" + markup + "</tbody></table>"))
		if err != nil {
			continue
		}
		tr := doc.Find("tr").First()
		if tr.Length() == 0 {
			continue
		}
		rows = append(rows, newRowHandle(tr, base))
	}
	return rows, nil
}

func newRowHandle(tr *goquery.Selection, base *url.URL) *rowHandle {
	handle := &rowHandle{}
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		c := rowCell{text: strings.TrimSpace(td.Text())}
		if href, ok := td.Find("a[href]").First().Attr("href"); ok {
			c.link = resolveHref(base, href)
		}
		handle.cells = append(handle.cells, c)
	})
	handle.text = strings.TrimSpace(tr.Text())
	return handle
}

func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
