package importer

import (
	"io"

	"github.com/dydtjq94/lycon-engine/internal/instrument"
)

// Source identifies a supported export format.
type Source string

const (
	SourceKRBank Source = "krbank"
)

// Importer parses one export format into instrument record drafts. The
// drafts have no profile attached; the caller assigns one before persisting.
type Importer interface {
	Parse(r io.Reader) ([]*instrument.Record, error)
}
