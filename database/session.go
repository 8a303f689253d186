// This file is part of rollout.
//
// rollout is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rollout is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rollout.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/rollout/curated"
)

// Activity is used to specify the type of activity that will be performed
// during the database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying

	// ActivityCreating implies ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. The init function is
// called before the database file is read.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if err := init(db); err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}
	defer f.Close()

	if err := db.read(f.Name(), bufio.NewScanner(f)); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) read(name string, scanner *bufio.Scanner) error {
	var line int
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if len(s) == 0 {
			continue
		}

		fields := strings.Split(s, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: %s: line %d: too few fields", name, line)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: %s: line %d: invalid key (%s)", name, line, fields[leaderFieldKey])
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: %s: line %d: duplicate key (%d)", name, line, key)
		}

		des, ok := db.entryTypes[fields[leaderFieldType]]
		if !ok {
			return curated.Errorf("database: %s: line %d: unrecognised entry type (%s)", name, line, fields[leaderFieldType])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: %s: line %d: %v", name, line, err)
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("database: %s: %v", name, err)
	}

	return nil
}

// EndSession closes the database. Changes are only written to disk if
// commitChanges is true and the session was not started with
// ActivityReading.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	var s strings.Builder
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		s.WriteString(recordHeader(key, ent.EntryType()))
		for _, f := range fields {
			if strings.ContainsAny(f, fieldSep+entrySep) {
				return curated.Errorf("database: field contains a separator (%q)", f)
			}
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString(entrySep)
	}

	if err := os.MkdirAll(filepath.Dir(db.path), 0700); err != nil {
		return curated.Errorf("database: %v", err)
	}

	if err := os.WriteFile(db.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) String() string {
	return fmt.Sprintf("%s (%d entries)", db.path, len(db.entries))
}
