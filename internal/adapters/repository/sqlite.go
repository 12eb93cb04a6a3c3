package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/okian/alumnihub/internal/domain/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS alumni (
	seq      INTEGER NOT NULL,
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	avatar   TEXT NOT NULL DEFAULT '',
	company  TEXT NOT NULL,
	position TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	batch    TEXT NOT NULL,
	industry TEXT NOT NULL,
	skills   TEXT NOT NULL DEFAULT '[]',
	linkedin TEXT NOT NULL DEFAULT '',
	email    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS jobs (
	seq          INTEGER NOT NULL,
	id           INTEGER PRIMARY KEY,
	title        TEXT NOT NULL,
	company      TEXT NOT NULL,
	location     TEXT NOT NULL DEFAULT '',
	type         TEXT NOT NULL,
	experience   TEXT NOT NULL DEFAULT '',
	salary       TEXT NOT NULL DEFAULT '',
	posted       TEXT NOT NULL DEFAULT '',
	domain       TEXT NOT NULL,
	skills       TEXT NOT NULL DEFAULT '[]',
	description  TEXT NOT NULL DEFAULT '',
	remote       INTEGER NOT NULL DEFAULT 0,
	company_logo TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS events (
	seq           INTEGER NOT NULL,
	id            INTEGER PRIMARY KEY,
	title         TEXT NOT NULL,
	type          TEXT NOT NULL,
	date          TEXT NOT NULL,
	time          TEXT NOT NULL DEFAULT '',
	duration      TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	speaker       TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	attendees     INTEGER NOT NULL DEFAULT 0,
	max_attendees INTEGER NOT NULL,
	price         TEXT NOT NULL DEFAULT '',
	category      TEXT NOT NULL,
	status        TEXT NOT NULL,
	image         TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS campaigns (
	seq         INTEGER NOT NULL,
	id          INTEGER PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL,
	goal        INTEGER NOT NULL,
	raised      INTEGER NOT NULL DEFAULT 0,
	donors      INTEGER NOT NULL DEFAULT 0,
	days_left   INTEGER NOT NULL DEFAULT 0,
	image       TEXT NOT NULL DEFAULT '',
	featured    INTEGER NOT NULL DEFAULT 0
);`

// SQLiteProvider serves listings stored in a SQLite database.
// Home, impact and analytics content come from the bundled dataset.
type SQLiteProvider struct {
	db *sql.DB
}

// NewSQLiteProvider opens dsn and checks that the schema exists.
func NewSQLiteProvider(ctx context.Context, dsn string) (*SQLiteProvider, error) {
	db, err := Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create schema: %w", ErrLoadDataset, err)
	}
	return &SQLiteProvider{db: db}, nil
}

// Open opens and pings a SQLite database.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrLoadDataset, dsn, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrLoadDataset, dsn, err)
	}
	return db, nil
}

// Snapshot implements Provider. The four listing tables are read concurrently.
func (p *SQLiteProvider) Snapshot(ctx context.Context) (*model.Dataset, error) {
	start := time.Now()
	ds := builtinDataset()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds.Alumni, err = loadAlumni(gctx, p.db)
		return err
	})
	g.Go(func() (err error) {
		ds.Jobs, err = loadJobs(gctx, p.db)
		return err
	})
	g.Go(func() (err error) {
		ds.Events, err = loadEvents(gctx, p.db)
		return err
	})
	g.Go(func() (err error) {
		ds.Campaigns, err = loadCampaigns(gctx, p.db)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	return publish(SourceSQLite, ds, start)
}

// Name implements Provider.
func (p *SQLiteProvider) Name() string { return SourceSQLite }

// Close implements Provider.
func (p *SQLiteProvider) Close() error { return p.db.Close() }

func loadAlumni(ctx context.Context, db *sql.DB) ([]model.AlumniProfile, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, avatar, company, position, location, batch,
		industry, skills, linkedin, email FROM alumni ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query alumni: %w", err)
	}
	defer rows.Close()

	out := []model.AlumniProfile{}
	for rows.Next() {
		var a model.AlumniProfile
		var skills string
		if err := rows.Scan(&a.ID, &a.Name, &a.Avatar, &a.Company, &a.Position, &a.Location, &a.Batch,
			&a.Industry, &skills, &a.LinkedIn, &a.Email); err != nil {
			return nil, fmt.Errorf("scan alumni: %w", err)
		}
		if a.Skills, err = decodeSkills(skills); err != nil {
			return nil, fmt.Errorf("alumni %d: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func loadJobs(ctx context.Context, db *sql.DB) ([]model.JobPosting, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, title, company, location, type, experience, salary,
		posted, domain, skills, description, remote, company_logo FROM jobs ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	out := []model.JobPosting{}
	for rows.Next() {
		var j model.JobPosting
		var skills string
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Experience, &j.Salary,
			&j.Posted, &j.Domain, &skills, &j.Description, &j.Remote, &j.CompanyLogo); err != nil {
			return nil, fmt.Errorf("scan jobs: %w", err)
		}
		if j.Skills, err = decodeSkills(skills); err != nil {
			return nil, fmt.Errorf("job %d: %w", j.ID, err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func loadEvents(ctx context.Context, db *sql.DB) ([]model.Event, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, title, type, date, time, duration, location, speaker,
		description, attendees, max_attendees, price, category, status, image FROM events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Type, &e.Date, &e.Time, &e.Duration, &e.Location, &e.Speaker,
			&e.Description, &e.Attendees, &e.MaxAttendees, &e.Price, &e.Category, &e.Status, &e.Image); err != nil {
			return nil, fmt.Errorf("scan events: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func loadCampaigns(ctx context.Context, db *sql.DB) ([]model.Campaign, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, title, description, category, goal, raised, donors,
		days_left, image, featured FROM campaigns ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	defer rows.Close()

	out := []model.Campaign{}
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.Goal, &c.Raised, &c.Donors,
			&c.DaysLeft, &c.Image, &c.Featured); err != nil {
			return nil, fmt.Errorf("scan campaigns: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func decodeSkills(raw string) ([]string, error) {
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return skills, nil
}

func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("encode skills: %w", err)
	}
	return string(b), nil
}

// Seed replaces the listing tables of db with the records of ds in one transaction.
// The schema is created when missing.
func Seed(ctx context.Context, db *sql.DB, ds *model.Dataset) (err error) {
	if err := Validate(ds); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	for _, table := range []string{"alumni", "jobs", "events", "campaigns"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, a := range ds.Alumni {
		skills, err := encodeSkills(a.Skills)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `INSERT INTO alumni (seq, id, name, avatar, company, position,
			location, batch, industry, skills, linkedin, email) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, a.ID, a.Name, a.Avatar, a.Company, a.Position, a.Location, a.Batch, a.Industry, skills,
			a.LinkedIn, a.Email); err != nil {
			return fmt.Errorf("insert alumni %d: %w", a.ID, err)
		}
	}
	for i, j := range ds.Jobs {
		skills, err := encodeSkills(j.Skills)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `INSERT INTO jobs (seq, id, title, company, location, type,
			experience, salary, posted, domain, skills, description, remote, company_logo)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, j.ID, j.Title, j.Company, j.Location, j.Type, j.Experience, j.Salary, j.Posted, j.Domain,
			skills, j.Description, j.Remote, j.CompanyLogo); err != nil {
			return fmt.Errorf("insert job %d: %w", j.ID, err)
		}
	}
	for i, e := range ds.Events {
		if _, err = tx.ExecContext(ctx, `INSERT INTO events (seq, id, title, type, date, time, duration,
			location, speaker, description, attendees, max_attendees, price, category, status, image)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, e.ID, e.Title, e.Type, e.Date, e.Time, e.Duration, e.Location, e.Speaker, e.Description,
			e.Attendees, e.MaxAttendees, e.Price, e.Category, e.Status, e.Image); err != nil {
			return fmt.Errorf("insert event %d: %w", e.ID, err)
		}
	}
	for i, c := range ds.Campaigns {
		if _, err = tx.ExecContext(ctx, `INSERT INTO campaigns (seq, id, title, description, category,
			goal, raised, donors, days_left, image, featured) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, c.ID, c.Title, c.Description, c.Category, c.Goal, c.Raised, c.Donors, c.DaysLeft, c.Image,
			c.Featured); err != nil {
			return fmt.Errorf("insert campaign %d: %w", c.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
