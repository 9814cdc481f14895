package db

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries holds the SQL statements used by the stores.
type Queries struct {
	db DBTX
}

// New binds the queries to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a copy of q bound to tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Post is a row of the posts table. Hashtags are stored space separated.
type Post struct {
	ID          string
	SessionID   string
	FileName    string
	FilePath    string
	Scale       int64
	Effect      string
	Intensity   float64
	Hashtags    string
	Description string
	Destination string
	CreatedAt   int64
}

const postColumns = `id, session_id, file_name, file_path, scale, effect, intensity, hashtags, description, destination, created_at`

const insertPost = `INSERT INTO posts (` + postColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertPost stores a post row.
func (q *Queries) InsertPost(ctx context.Context, p Post) error {
	_, err := q.db.ExecContext(ctx, insertPost,
		p.ID,
		p.SessionID,
		p.FileName,
		p.FilePath,
		p.Scale,
		p.Effect,
		p.Intensity,
		p.Hashtags,
		p.Description,
		p.Destination,
		p.CreatedAt,
	)
	return err
}

const getPost = `SELECT ` + postColumns + ` FROM posts WHERE id = ?`

// GetPost returns the post with id or sql.ErrNoRows.
func (q *Queries) GetPost(ctx context.Context, id string) (Post, error) {
	return scanPost(q.db.QueryRowContext(ctx, getPost, id))
}

const listPosts = `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC, id LIMIT ?`

// ListPosts returns up to limit posts, newest first.
func (q *Queries) ListPosts(ctx context.Context, limit int64) ([]Post, error) {
	return q.queryPosts(ctx, listPosts, limit)
}

const listPostsByHashtag = `SELECT ` + postColumns + ` FROM posts
WHERE (' ' || hashtags || ' ') LIKE ('% ' || ? || ' %')
ORDER BY created_at DESC, id LIMIT ?`

// ListPostsByHashtag returns up to limit posts carrying tag, newest first.
func (q *Queries) ListPostsByHashtag(ctx context.Context, tag string, limit int64) ([]Post, error) {
	return q.queryPosts(ctx, listPostsByHashtag, tag, limit)
}

const countPosts = `SELECT COUNT(*) FROM posts`

// CountPosts returns the number of stored posts.
func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countPosts).Scan(&n)
	return n, err
}

const deletePost = `DELETE FROM posts WHERE id = ?`

// DeletePost removes a post. It reports whether a row was deleted.
func (q *Queries) DeletePost(ctx context.Context, id string) (bool, error) {
	res, err := q.db.ExecContext(ctx, deletePost, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (q *Queries) queryPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (Post, error) {
	var p Post
	err := row.Scan(
		&p.ID,
		&p.SessionID,
		&p.FileName,
		&p.FilePath,
		&p.Scale,
		&p.Effect,
		&p.Intensity,
		&p.Hashtags,
		&p.Description,
		&p.Destination,
		&p.CreatedAt,
	)
	return p, err
}
