// Package export renders report rows into downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/vesteevolta/backend/internal/models"
)

const dateLayout = "2006-01-02"

var rentalsHeader = []string{
	"RentalId", "UserId", "UserName", "ClothingId", "Description",
	"StartDate", "EndDate", "Status", "TotalValue",
}

// RentalsFilename names the export for the inclusive [from, to] window.
func RentalsFilename(from, to time.Time) string {
	return fmt.Sprintf("rentals_%s_%s.csv", from.Format("20060102"), to.Format("20060102"))
}

// WriteRentalsCSV writes rows with a header line. Fields containing commas
// or quotes are quoted.
func WriteRentalsCSV(w io.Writer, rows []models.RentalReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rentalsHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			r.ID.String(),
			r.UserID.String(),
			r.UserName,
			r.ClothingID.String(),
			r.Description,
			r.StartDate.Format(dateLayout),
			r.EndDate.Format(dateLayout),
			string(r.Status),
			r.TotalValue.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
