package in

import (
	"context"

	"studylog/internal/modules/archive/dto"
	archivein "studylog/internal/modules/archive/port/in"
)

type CLIHandler struct {
	usecase archivein.Usecase
}

func NewCLIHandler(usecase archivein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context) ([]byte, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) Import(ctx context.Context, raw []byte) (dto.ImportOutput, error) {
	return h.usecase.Import(ctx, raw)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Notes(ctx context.Context) (dto.NotesOutput, error) {
	return h.usecase.Notes(ctx)
}

func (h CLIHandler) SetMotivation(ctx context.Context, text string) error {
	return h.usecase.SetMotivation(ctx, text)
}

func (h CLIHandler) SetReasons(ctx context.Context, text string) error {
	return h.usecase.SetReasons(ctx, text)
}

func (h CLIHandler) Quote() string {
	return h.usecase.Quote()
}
