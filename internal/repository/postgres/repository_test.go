package postgres

import (
	"testing"

	"github.com/golang/mock/gomock"
)

// stubRow satisfies pgx.Row with a canned scan outcome.
type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

func newTestRepository(t *testing.T, ctrl *gomock.Controller) (*Repository, *MockDB) {
	t.Helper()

	db := NewMockDB(ctrl)
	metrics := NewMockMetrics(ctrl)
	metrics.EXPECT().Observe(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return &Repository{db: db, metrics: metrics}, db
}
