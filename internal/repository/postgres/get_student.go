package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/registrarlabs/credchain-backend/internal/model"
)

// GetStudent loads one student row by primary key.
func (r *Repository) GetStudent(ctx context.Context, id int64) (student *model.Student, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_student", err, start)
	}()

	const query = `
SELECT id, full_name, institutional_id, program
FROM students
WHERE id = $1`

	student = &model.Student{}
	row := r.db.QueryRow(ctx, query, id)
	err = row.Scan(&student.ID, &student.FullName, &student.InstitutionalID, &student.Program)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: student %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("select student %d: %w", id, err)
	}
	return student, nil
}
