// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DBTX is the subset of database/sql used by Queries. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries wraps a database handle and exposes typed query methods.
type Queries struct {
	db DBTX
}

// New creates a Queries instance bound to the given database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries instance bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const postColumns = `id, title, slug, content, summary, cover_url, read_time,
	difficulty, topic, author_name, author_role, created_at`

func scanPost(row interface{ Scan(...interface{}) error }) (Post, error) {
	var p Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Summary,
		&p.CoverUrl,
		&p.ReadTime,
		&p.Difficulty,
		&p.Topic,
		&p.AuthorName,
		&p.AuthorRole,
		&p.CreatedAt,
	)
	return p, err
}

// ListPostsParams filters the post listing. Empty fields are ignored, so the
// zero value lists everything.
type ListPostsParams struct {
	Topic      string
	Difficulty string
	Search     string
}

// ListPosts returns posts matching all non-empty filters, newest first.
// Search matches the title case-insensitively as a substring.
func (q *Queries) ListPosts(ctx context.Context, arg ListPostsParams) ([]Post, error) {
	var (
		conds []string
		args  []interface{}
	)
	if arg.Topic != "" {
		conds = append(conds, "topic = ?")
		args = append(args, arg.Topic)
	}
	if arg.Difficulty != "" {
		conds = append(conds, "difficulty = ?")
		args = append(args, arg.Difficulty)
	}
	if arg.Search != "" {
		conds = append(conds, "title LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(arg.Search)+"%")
	}

	query := "SELECT " + postColumns + " FROM posts"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// escapeLike escapes the LIKE wildcard characters in a user-supplied search
// term so it matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// GetPost returns a single post by ID. Returns sql.ErrNoRows when absent.
func (q *Queries) GetPost(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = ?", id)
	return scanPost(row)
}

// GetPostBySlug returns a single post by slug. Returns sql.ErrNoRows when
// absent.
func (q *Queries) GetPostBySlug(ctx context.Context, slug string) (Post, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE slug = ?", slug)
	return scanPost(row)
}

// CreatePostParams holds the fields for a new post. The creation timestamp is
// assigned by the store, not the caller.
type CreatePostParams struct {
	Title      string
	Slug       string
	Content    string
	Summary    string
	CoverUrl   sql.NullString
	ReadTime   int64
	Difficulty string
	Topic      string
	AuthorName string
	AuthorRole string
}

// CreatePost inserts a new post and returns the stored row.
func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (Post, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO posts (
			title, slug, content, summary, cover_url, read_time,
			difficulty, topic, author_name, author_role, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Slug, arg.Content, arg.Summary, arg.CoverUrl,
		arg.ReadTime, arg.Difficulty, arg.Topic, arg.AuthorName,
		arg.AuthorRole, now,
	)
	if err != nil {
		return Post{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Post{}, err
	}
	return q.GetPost(ctx, id)
}

// CreateSubscriber inserts a newsletter subscriber and returns the stored row.
// The email must already be normalized by the caller.
func (q *Queries) CreateSubscriber(ctx context.Context, email string) (Subscriber, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO subscribers (email, created_at) VALUES (?, ?)",
		email, now,
	)
	if err != nil {
		return Subscriber{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Subscriber{}, err
	}
	var s Subscriber
	row := q.db.QueryRowContext(ctx,
		"SELECT id, email, created_at FROM subscribers WHERE id = ?", id)
	if err := row.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
		return Subscriber{}, err
	}
	return s, nil
}

// CountPosts returns the total number of posts.
func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

// CreateEventParams holds the fields for a new event-log entry.
type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	Metadata string
}

// CreateEvent inserts an event-log entry.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	metadata := arg.Metadata
	if metadata == "" {
		metadata = "{}"
	}
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO events (level, category, message, metadata, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, metadata, time.Now().UTC(),
	)
	return err
}

// ListEventsParams pages through the event log.
type ListEventsParams struct {
	Limit  int64
	Offset int64
}

// ListEvents returns event-log entries, newest first.
func (q *Queries) ListEvents(ctx context.Context, arg ListEventsParams) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, level, category, message, metadata, created_at
		FROM events ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message,
			&e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteEventsBefore removes event-log entries older than the cutoff and
// returns the number deleted.
func (q *Queries) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		"DELETE FROM events WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
