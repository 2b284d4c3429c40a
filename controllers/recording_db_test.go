package controllers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// recordingDB captures every write statement the handlers issue so tests can
// assert on the generated SQL and bound values. Reads are not supported.
type recordingDB struct {
	mu     sync.Mutex
	execs  []recordedExec
	nextID int64
}

type recordedExec struct {
	query string
	args  []driver.Value
}

func (db *recordingDB) record(query string, args []driver.NamedValue) driver.Result {
	db.mu.Lock()
	defer db.mu.Unlock()

	values := make([]driver.Value, len(args))
	for i, arg := range args {
		values[i] = arg.Value
	}
	db.execs = append(db.execs, recordedExec{query: query, args: values})

	db.nextID++
	return recordingResult{lastInsertID: db.nextID, rowsAffected: 1}
}

func (db *recordingDB) recorded() []recordedExec {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]recordedExec(nil), db.execs...)
}

type recordingDriver struct {
	db *recordingDB
}

func (d *recordingDriver) Open(string) (driver.Conn, error) {
	return &recordingConn{db: d.db}, nil
}

type recordingConn struct {
	db *recordingDB
}

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *recordingConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return nil, errors.New("queries not supported")
}

func (c *recordingConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	return c.db.record(query, args), nil
}

type recordingResult struct {
	lastInsertID int64
	rowsAffected int64
}

func (r recordingResult) LastInsertId() (int64, error) { return r.lastInsertID, nil }

func (r recordingResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

func newRecordingGormDB(t *testing.T) (*gorm.DB, *recordingDB, func()) {
	t.Helper()
	state := &recordingDB{}
	driverName := fmt.Sprintf("recording_%d", time.Now().UnixNano())
	sql.Register(driverName, &recordingDriver{db: state})

	sqlDB, err := sql.Open(driverName, "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError: true,
		// The recording conn does not implement transactions; write calls must
		// hit ExecContext directly instead of being wrapped in Begin/Commit.
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return gormDB, state, cleanup
}
