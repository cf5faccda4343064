/*
Package store implements a cache of conversions backed by an SQLite
database.

Conversions are keyed by the SHA-1 of the source file and a string
describing the conversion options, such as the screen mode. Each conversion
stores its files compressed with zstd.
*/
package store

import (
	"crypto/sha1"
	"database/sql"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	_ "github.com/mattn/go-sqlite3"
)

// Store is the conversion cache
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open opens, or creates, the cache database in file
func Open(file string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, options TEXT NOT NULL, UNIQUE(sha1, options))"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS file (conversion_id INTEGER NOT NULL, tag TEXT NOT NULL, data BLOB, UNIQUE(conversion_id, tag), FOREIGN KEY(conversion_id) REFERENCES conversion(id) ON DELETE CASCADE)"); err != nil {
		db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		enc: enc,
		dec: dec,
	}, nil
}

// Close closes the database
func (s *Store) Close() error {
	s.dec.Close()
	if err := s.enc.Close(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// Hash returns the key used for the contents of r
func Hash(r io.Reader) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", h.Sum(nil)), nil
}

// Find returns the files of a previous conversion, or nil if there isn't one
func (s *Store) Find(sha, options string) (map[string][]byte, error) {
	var id int64
	switch err := s.db.QueryRow("SELECT id FROM conversion WHERE sha1 = ? AND options = ?", sha, options).Scan(&id); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
	default:
		return nil, err
	}

	rows, err := s.db.Query("SELECT tag, data FROM file WHERE conversion_id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make(map[string][]byte)
	for rows.Next() {
		var tag string
		var data []byte
		if err := rows.Scan(&tag, &data); err != nil {
			return nil, err
		}
		b, err := s.dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("store: corrupt %s data: %w", tag, err)
		}
		files[tag] = b
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return files, nil
}

// Put stores the files of a conversion, replacing any previous conversion
// with the same key
func (s *Store) Put(sha, options string, files map[string][]byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM conversion WHERE sha1 = ? AND options = ?", sha, options); err != nil {
		return err
	}

	result, err := tx.Exec("INSERT INTO conversion (sha1, options) VALUES (?, ?)", sha, options)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for tag, b := range files {
		if _, err = tx.Exec("INSERT INTO file (conversion_id, tag, data) VALUES (?, ?, ?)", id, tag, s.enc.EncodeAll(b, nil)); err != nil {
			return err
		}
	}

	return tx.Commit()
}
