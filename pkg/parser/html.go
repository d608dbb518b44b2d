package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractRecordLines turns the rows of every table in htmlContent into record lines.
// A row needs at least three <td> cells: name, runs and average. Rows whose runs
// cell reads "Runs" are treated as headers and skipped.
func ExtractRecordLines(htmlContent string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML content: %w", err)
	}

	var lines []string
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		var cellTexts []string
		cells.Each(func(j int, cell *goquery.Selection) {
			if j < 3 {
				cellTexts = append(cellTexts, strings.TrimSpace(cell.Text()))
			}
		})

		if strings.EqualFold(cellTexts[1], "runs") {
			return
		}
		lines = append(lines, strings.Join(cellTexts, ","))
	})

	return lines, nil
}
