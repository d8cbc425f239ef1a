package store

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Banks manages the singleton bank-name record
type Banks interface {
	Get(ctx context.Context) (*Bank, error)
	Upsert(ctx context.Context, value string) (*Bank, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Titles manages the singleton site-title record
type Titles interface {
	Get(ctx context.Context) (*Title, error)
	Upsert(ctx context.Context, value string) (*Title, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Abouts manages the singleton about-text record
type Abouts interface {
	Get(ctx context.Context) (*About, error)
	Upsert(ctx context.Context, value string) (*About, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type banks struct{ db *bun.DB }
type titles struct{ db *bun.DB }
type abouts struct{ db *bun.DB }

func NewBanksRepository(db *bun.DB) Banks   { return &banks{db: db} }
func NewTitlesRepository(db *bun.DB) Titles { return &titles{db: db} }
func NewAboutsRepository(db *bun.DB) Abouts { return &abouts{db: db} }

func (r *banks) Get(ctx context.Context) (*Bank, error) {
	record := &Bank{}
	if err := contentGet(ctx, r.db, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *banks) Upsert(ctx context.Context, value string) (*Bank, error) {
	record := &Bank{ID: BankSingletonID, Bank: value}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (id) DO UPDATE").
		Set("bank = EXCLUDED.bank").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not upsert bank record")
	}
	return record, nil
}

func (r *banks) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*Bank)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return contentDeleteResult(res, err)
}

func (r *titles) Get(ctx context.Context) (*Title, error) {
	record := &Title{}
	if err := contentGet(ctx, r.db, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *titles) Upsert(ctx context.Context, value string) (*Title, error) {
	record := &Title{ID: TitleSingletonID, Title: value}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (id) DO UPDATE").
		Set("title = EXCLUDED.title").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not upsert title record")
	}
	return record, nil
}

func (r *titles) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*Title)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return contentDeleteResult(res, err)
}

func (r *abouts) Get(ctx context.Context) (*About, error) {
	record := &About{}
	if err := contentGet(ctx, r.db, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *abouts) Upsert(ctx context.Context, value string) (*About, error) {
	record := &About{ID: AboutSingletonID, About: value}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (id) DO UPDATE").
		Set("about = EXCLUDED.about").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not upsert about record")
	}
	return record, nil
}

func (r *abouts) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*About)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return contentDeleteResult(res, err)
}

func contentGet(ctx context.Context, db *bun.DB, record any) error {
	err := db.NewSelect().
		Model(record).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return ErrContentNotFound
		}
		return errors.Wrap(err, errors.CategoryInternal, "could not load content record")
	}

	return nil
}

func contentDeleteResult(res sql.Result, err error) error {
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "could not delete content record")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "could not read delete result")
	}

	if n == 0 {
		return ErrContentNotFound
	}

	return nil
}
