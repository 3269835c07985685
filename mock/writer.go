package mock

import (
	"context"

	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
)

var _ zeirishi.WorkbookWriter = (*WorkbookWriter)(nil)

// WorkbookWriter is a mock implementation of zeirishi.WorkbookWriter.
type WorkbookWriter struct {
	WriteWorkbookFn func(ctx context.Context, path string, wb zeirishi.Workbook) error
}

func (w *WorkbookWriter) WriteWorkbook(ctx context.Context, path string, wb zeirishi.Workbook) error {
	return w.WriteWorkbookFn(ctx, path, wb)
}

var _ zeirishi.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of zeirishi.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
