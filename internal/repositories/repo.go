package repositories

import (
	intconfig "busbook/internal/config"
	"busbook/internal/db"
)

// gateway falls back to the shared connection when none was injected.
func gateway(g db.Gateway) db.Gateway {
	if g.Conn != nil {
		return g
	}
	if intconfig.DB == nil {
		return db.Gateway{}
	}
	return db.New(intconfig.DB)
}
