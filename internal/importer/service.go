package importer

import (
	"fmt"
	"io"

	"github.com/dydtjq94/lycon-engine/internal/importer/krbank"
	"github.com/dydtjq94/lycon-engine/internal/instrument"
)

type Service struct {
	krbankImporter Importer
}

func NewService() *Service {
	return &Service{
		krbankImporter: krbank.New(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]*instrument.Record, error) {
	var importer Importer

	switch source {
	case SourceKRBank:
		importer = s.krbankImporter
	default:
		return nil, fmt.Errorf("unknown import source: %s", source)
	}

	return importer.Parse(r)
}
