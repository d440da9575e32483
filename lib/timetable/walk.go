package timetable

import (
	"regexp"
	"strings"

	"schedule-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// walkTables is a single forward pass over every row of every table in
// document order. The date context is threaded through the walk: a
// header row replaces it, a lesson row attaches to it, and lesson rows
// seen before the first header are skipped, not errors.
func (n Normalizer) walkTables(doc *goquery.Document) []Lesson {
	var candidates []Lesson
	ctx := DateContext{}

	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := htmlutil.CellTexts(tr)
			info := classifyRow(cells, ctx)

			switch info.class {
			case rowHeader:
				ctx = info.context
				// the source page collapses the first lesson of the
				// week into the date row; feed it through the same
				// extraction path as a regular lesson row
				if info.pair != 0 {
					candidates = append(candidates, n.lessonFromRow(ctx, info, cells))
				}
			case rowLesson:
				candidates = append(candidates, n.lessonFromRow(ctx, info, cells))
			}
		})
	})

	return candidates
}

func (n Normalizer) lessonFromRow(ctx DateContext, info rowInfo, cells []string) Lesson {
	f := n.extractFields(info.subject)
	return Lesson{
		Pair:    info.pair,
		Time:    SlotRange(info.pair),
		Subject: ctx.Prefix() + " | " + f.Subject,
		Kind:    f.Kind,
		Room:    f.Room,
		Teacher: f.Teacher,
		Raw:     cells,
	}
}

var timeRangeRegex = regexp.MustCompile(`\b(\d{1,2}[:.]\d{2})\s*[-–]\s*(\d{1,2}[:.]\d{2})\b`)

// walkLists is the degraded-mode extractor for markup that abandons
// the table layout entirely: any list item with an inline time range
// becomes a candidate. No slot index, no kind, no field cleanup.
func walkLists(doc *goquery.Document) []Lesson {
	var candidates []Lesson

	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := htmlutil.CellText(li)
		m := timeRangeRegex.FindStringSubmatch(text)
		if m == nil {
			return
		}
		candidates = append(candidates, Lesson{
			Time:    strings.ReplaceAll(m[1]+"-"+m[2], ".", ":"),
			Subject: text,
			Raw:     []string{text},
		})
	})

	return candidates
}
