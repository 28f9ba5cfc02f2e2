package credentials

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/strength"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func credColumns() []string {
	return []string{"id", "user_id", "title", "username", "secret_enc", "url", "category", "strength", "created_at", "updated_at"}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+credentials\s*\(id,\s*user_id,\s*title,\s*username,\s*secret_enc,\s*url,\s*category,\s*strength\)`

	rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now())
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "u-1", "Mail", "ann", "ciphertext", "", "personal", "strong").
		WillReturnRows(rows)

	c := &models.Credential{
		UserID:   "u-1",
		Title:    "Mail",
		Username: "ann",
		Secret:   "ciphertext",
		Category: models.CategoryPersonal,
		Strength: strength.Strong,
	}
	got, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id, got empty")
	}
}

func TestSelectByUser_OrdersAndScans(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.+\s+FROM\s+credentials\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(credColumns()).
		AddRow("c-2", "u-1", "Bank", "", "ct2", "", "finance", "medium", now, now).
		AddRow("c-1", "u-1", "Mail", "ann", "ct1", "https://mail.example", "personal", "strong", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.SelectByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("SelectByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "c-2" || got[1].ID != "c-1" {
		t.Fatalf("expected store order preserved, got %s, %s", got[0].ID, got[1].ID)
	}
	if got[1].Category != models.CategoryPersonal || got[1].Strength != strength.Strong {
		t.Fatalf("unexpected scan result: %+v", got[1])
	}
}

func TestSelectByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.+\s+FROM\s+credentials\s+WHERE\s+user_id\s*=\s*\$1`

	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(sqlmock.NewRows(credColumns()))

	got, err := repo.SelectByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("SelectByUser error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestGetByIDAndUser_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.+\s+FROM\s+credentials\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	mock.ExpectQuery(q).WithArgs("c-1", "intruder").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDAndUser(context.Background(), "c-1", "intruder")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_NotOwned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+credentials\s+SET\s+.+\s+WHERE\s+id\s*=\s*\$7\s+AND\s+user_id\s*=\s*\$8`

	mock.ExpectQuery(q).
		WithArgs("Mail", "ann", "ct", "", "personal", "strong", "c-1", "intruder").
		WillReturnError(sql.ErrNoRows)

	c := &models.Credential{
		ID: "c-1", UserID: "intruder",
		Title: "Mail", Username: "ann", Secret: "ct",
		Category: models.CategoryPersonal, Strength: strength.Strong,
	}
	_, err := repo.Update(context.Background(), c)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+credentials\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).WithArgs("c-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "c-1", "u-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+credentials\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).WithArgs("c-1", "intruder").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "c-1", "intruder")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
