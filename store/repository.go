// Package store persists fitted distributions in a sqlite database.
package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/nelhage/distributions/dist"
)

const (
	KindBinomial = "binomial"
	KindGaussian = "gaussian"
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Fit is one stored distribution. P and N are zero for Gaussians.
type Fit struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Kind      string    `db:"kind"`
	Source    string    `db:"source"`
	Timestamp time.Time `db:"time"`
	P         float64   `db:"p"`
	N         int       `db:"n"`
	Mean      float64   `db:"mean"`
	Stdev     float64   `db:"stdev"`
	Samples   int       `db:"samples"`
}

func FromBinomial(name, source string, b *dist.Binomial) *Fit {
	return &Fit{
		Name:      name,
		Kind:      KindBinomial,
		Source:    source,
		Timestamp: time.Now(),
		P:         b.P(),
		N:         b.N(),
		Mean:      b.Mean(),
		Stdev:     b.Stdev(),
		Samples:   len(b.Data()),
	}
}

func FromGaussian(name, source string, g *dist.Gaussian) *Fit {
	return &Fit{
		Name:      name,
		Kind:      KindGaussian,
		Source:    source,
		Timestamp: time.Now(),
		Mean:      g.Mean(),
		Stdev:     g.Stdev(),
		Samples:   len(g.Data()),
	}
}

func FromDistribution(name, source string, d dist.Distribution) (*Fit, error) {
	switch d := d.(type) {
	case *dist.Binomial:
		return FromBinomial(name, source, d), nil
	case *dist.Gaussian:
		return FromGaussian(name, source, d), nil
	default:
		return nil, fmt.Errorf("unsupported distribution %T", d)
	}
}

// Distribution rebuilds the stored distribution, without its data.
func (f *Fit) Distribution() (dist.Distribution, error) {
	switch f.Kind {
	case KindBinomial:
		return dist.NewBinomial(f.P, f.N)
	case KindGaussian:
		return dist.NewGaussian(f.Mean, f.Stdev), nil
	default:
		return nil, fmt.Errorf("unknown kind: %q", f.Kind)
	}
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	_, err = sql.Exec(createFitTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create fits table: %w", err)
	}

	repo := &Repository{db: sql}
	repo.insert, err = sql.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertFit(f *Fit) error {
	return r.insertFit(r.insert, f)
}

func (r *Repository) insertFit(stmt *sqlx.NamedStmt, f *Fit) error {
	res, err := stmt.Exec(f)
	if err != nil {
		return err
	}
	f.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) InsertFits(fs []*Fit) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, f := range fs {
		if e := r.insertFit(stmt, f); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Fits returns stored fits in insertion order. An empty kind selects
// every kind.
func (r *Repository) Fits(kind string) ([]*Fit, error) {
	var out []*Fit
	var err error
	if kind == "" {
		err = r.db.Select(&out, selectFits)
	} else {
		err = r.db.Select(&out, selectFitsByKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("select fits: %w", err)
	}
	return out, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
