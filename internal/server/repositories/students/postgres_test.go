package students

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avlearn/authkeeper/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestResolveAccountID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id\s+FROM\s+students\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("stu-42").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("acct-99"))

	got, err := repo.ResolveAccountID(context.Background(), "stu-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "acct-99" {
		t.Fatalf("account id: got %q want %q", got, "acct-99")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResolveAccountID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+user_id\s+FROM\s+students\b`).
		WithArgs("stu-unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ResolveAccountID(context.Background(), "stu-unknown")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestResolveAccountID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+user_id\s+FROM\s+students\b`).
		WithArgs("stu-42").
		WillReturnError(errors.New("db down"))

	_, err := repo.ResolveAccountID(context.Background(), "stu-42")
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
