package gsheet

import (
	"context"

	"study-slot-scheduler/internal/schedule/repository"
	"study-slot-scheduler/pkg/gsheets"
	"study-slot-scheduler/pkg/log"
)

// Header is the fixed first row of every slot sheet.
var Header = []string{"Khung giờ", "Môn học", "Video (VI)", "Video (EN)"}

// implRepository adapts pkg/gsheets to the domain SheetRepository.
type implRepository struct {
	client *gsheets.Client
	l      log.Logger
}

var _ repository.SheetRepository = (*implRepository)(nil)

// New creates a Google Sheets backed SheetRepository.
func New(client *gsheets.Client, l log.Logger) *implRepository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) EnsureSheet(ctx context.Context, name string) error {
	return r.client.EnsureSheet(ctx, name, Header)
}

func (r *implRepository) WriteRows(ctx context.Context, name string, rows [][]string) error {
	return r.client.WriteRows(ctx, name, rows)
}

func (r *implRepository) ClearRows(ctx context.Context, name string) error {
	return r.client.ClearRows(ctx, name)
}
