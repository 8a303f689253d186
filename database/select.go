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

// SelectAll entries in the database in key order. onSelect can be nil.
//
// Selection stops at the first error returned by onSelect(). The key of the
// entry is passed to onSelect() along with the entry.
func (db Session) SelectAll(onSelect func(int, Entry) error) error {
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified key(s). If list of keys is
// empty then all keys are matched in key order. onSelect can be nil.
//
// Selection stops at the first error returned by onSelect(). An error is
// returned if a key does not exist.
func (db Session) SelectKeys(onSelect func(int, Entry) error, keys ...int) error {
	if onSelect == nil {
		onSelect = func(_ int, _ Entry) error { return nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			return curated.Errorf("database: key not available (%d)", key)
		}
		if err := onSelect(key, ent); err != nil {
			return err
		}
	}

	return nil
}
