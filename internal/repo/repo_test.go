package repo

import (
	"testing"

	snapshotrepo "github.com/GlebRadaev/walletsync/internal/repo/snapshot-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.NotNil(t, repo.WalletCache)
	assert.IsType(t, &snapshotrepo.Repository{}, repo.WalletCache)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
