package repo

import (
	"github.com/GlebRadaev/walletsync/internal/pg"
	snapshotrepo "github.com/GlebRadaev/walletsync/internal/repo/snapshot-repo"
	"github.com/GlebRadaev/walletsync/internal/session"
)

type Repositories struct {
	WalletCache session.Cache
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		WalletCache: snapshotrepo.New(conn),
	}
}
