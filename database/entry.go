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

import "github.com/jetsetilly/rollout/curated"

// Entry represents the generic entry in the database.
type Entry interface {
	// EntryType returns the string that is used to identify the entry type in
	// the database
	EntryType() string

	// String should return information about the entry in a human readable
	// format. by contrast, machine readable representation is returned by the
	// Serialise function
	String() string

	// return the Entry data as a list of fields
	Serialise() ([]string, error)

	// a cleanup is performed when entry is deleted from the database
	CleanUp() error
}

// Deserialiser creates a new Entry from a list of fields.
type Deserialiser func(fields []string) (Entry, error)

// RegisterEntryType tells the database what entries it may expect in the
// database and what to do when it encounters one.
func (db *Session) RegisterEntryType(entryType string, des Deserialiser) error {
	if _, ok := db.entryTypes[entryType]; ok {
		return curated.Errorf("database: duplicate entry type (%s)", entryType)
	}
	db.entryTypes[entryType] = des
	return nil
}
