package repositories

import (
	"context"

	"busbook/internal/db"
	"busbook/internal/domain/models"
)

type AdminRepository struct {
	GW db.Gateway
}

func (r AdminRepository) gw() db.Gateway { return gateway(r.GW) }

// FindByUsername returns NotFoundError when no admin has that username.
func (r AdminRepository) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	row, err := r.gw().SelectOne(ctx, db.TableAdmins, db.Query{Filters: db.Row{"username": username}})
	if err != nil {
		return models.Admin{}, err
	}
	return DecodeAdmin(row), nil
}

func (r AdminRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	return r.gw().Insert(ctx, db.TableAdmins, db.Row{"username": username, "password": passwordHash})
}
