package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr    error
	closeSrc error
	closeDB  error
	upCalled bool
}

func (f *fakeMigrator) Up() error {
	f.upCalled = true
	return f.upErr
}

func (f *fakeMigrator) Close() (error, error) {
	return f.closeSrc, f.closeDB
}

func TestMigrationUp(t *testing.T) {
	var gotSource, gotDatabase string
	fake := &fakeMigrator{}

	engine := func(sourceURL, databaseURL string) (Migrator, error) {
		gotSource = sourceURL
		gotDatabase = databaseURL
		return fake, nil
	}

	mg := New("migrations", "/tmp/timekeeper.db", engine)
	require.NoError(t, mg.Up())

	assert.True(t, fake.upCalled)
	assert.Equal(t, "file://migrations", gotSource)
	assert.Equal(t, "sqlite3:///tmp/timekeeper.db", gotDatabase)
}

func TestMigrationUpNoChange(t *testing.T) {
	// ErrNoChange - штатная ситуация: схема уже актуальна.
	fake := &fakeMigrator{upErr: migrate.ErrNoChange}
	mg := New("migrations", "db", func(string, string) (Migrator, error) { return fake, nil })
	assert.NoError(t, mg.Up())
}

func TestMigrationUpError(t *testing.T) {
	boom := errors.New("corrupt migration")
	fake := &fakeMigrator{upErr: boom}
	mg := New("migrations", "db", func(string, string) (Migrator, error) { return fake, nil })
	assert.ErrorIs(t, mg.Up(), boom)
}

func TestMigrationEngineError(t *testing.T) {
	boom := errors.New("no such directory")
	mg := New("migrations", "db", func(string, string) (Migrator, error) { return nil, boom })
	assert.ErrorIs(t, mg.Up(), boom)
}

func TestMigrationCloseError(t *testing.T) {
	fake := &fakeMigrator{closeDB: errors.New("close failed")}
	mg := New("migrations", "db", func(string, string) (Migrator, error) { return fake, nil })
	assert.Error(t, mg.Up())
}
