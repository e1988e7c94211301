package datasource

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/braintap/kpi-engine/internal/domain/dataset"
	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/types"
)

// decodeCSV validates the header of a raw export against the dataset's
// required columns and decodes the rows into out (a pointer to a slice of
// records). A missing required column fails with ErrMissingField naming the
// dataset and column.
func decodeCSV(kind types.DatasetKind, data []byte, out interface{}) error {
	if err := validateHeader(kind, data); err != nil {
		return err
	}

	if err := gocsv.UnmarshalBytes(data, out); err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to decode %s export", string(kind)).
			WithReportableDetails(map[string]interface{}{
				"dataset": string(kind),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func validateHeader(kind types.DatasetKind, data []byte) error {
	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err != nil {
		return ierr.WithError(err).
			WithHintf("The %s export has no readable header row", string(kind)).
			Mark(ierr.ErrValidation)
	}

	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF"))] = struct{}{}
	}

	for _, col := range dataset.RequiredColumns(kind) {
		if _, ok := present[col]; !ok {
			return ierr.NewErrorf("dataset %s is missing column %s", kind, col).
				WithHintf("The %s export must include a %q column", string(kind), col).
				WithReportableDetails(map[string]interface{}{
					"dataset": string(kind),
					"column":  col,
				}).
				Mark(ierr.ErrMissingField)
		}
	}
	return nil
}
