package app

import (
	"time"

	"agesweep/internal/adapters"
	"agesweep/internal/ports"
)

type Service struct {
	Walker       ports.WalkerPort
	Metadata     ports.MetadataPort
	Trash        ports.TrashPort
	ReportWriter ports.ReportWriterPort
	Clock        func() time.Time
}

func NewService() Service {
	return Service{
		Walker:       adapters.NewFSWalker(),
		Metadata:     adapters.NewMetadataAdapter(),
		Trash:        adapters.NewTrashAdapter(),
		ReportWriter: adapters.NewReportFileAdapter(),
		Clock:        time.Now,
	}
}
