package in

import (
	"context"

	"studylog/internal/modules/archive/dto"
)

type Usecase interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, raw []byte) (dto.ImportOutput, error)
	Reset(ctx context.Context) error
	Notes(ctx context.Context) (dto.NotesOutput, error)
	SetMotivation(ctx context.Context, text string) error
	SetReasons(ctx context.Context, text string) error
	Quote() string
}
