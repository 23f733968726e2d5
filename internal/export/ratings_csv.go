package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vesteevolta/backend/internal/models"
)

// RatingsFilename is the download name of the ratings export.
const RatingsFilename = "rating-report.csv"

// UTF8BOM lets spreadsheet tools detect the encoding of accented comments.
const UTF8BOM = "\ufeff"

var ratingsHeader = []string{"Id", "UserId", "ClothingId", "Score", "Comment"}

// WriteRatingsCSV writes one line per rating after the header. A missing
// comment is written as an empty field.
func WriteRatingsCSV(w io.Writer, ratings []models.Rating) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ratingsHeader); err != nil {
		return err
	}

	for _, r := range ratings {
		comment := ""
		if r.Comment != nil {
			comment = *r.Comment
		}
		record := []string{
			r.ID.String(),
			r.UserID.String(),
			r.ClothingID.String(),
			strconv.Itoa(r.Score),
			comment,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
