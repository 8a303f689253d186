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

// Package database is a very simple way of storing structured and arbitrary
// entry types. It's as simple as simple can be but is still useful in helping
// to organise what is essentially a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first agument is the path to the database file on the local disk. The
// second argument is a description of the type of activity that will be
// happening during the session. ActivityCreating will create the database if
// it does not already exist. If the database already exists ActivityCreating
// is treated the same as ActivityModifying. If we don't want to modify the
// database at all, then we can use ActivityReading.
//
// The third argument is the database initialisation function. The
// initialisation function takes a pointer to the new database session as its
// sole argument and should register every entry type that the database might
// contain:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("scenario", deserialiseScenario)
//	}
//
// The deserialise function takes the fields of an entry and returns a new
// database.Entry. The key and the entry type are not included in the fields.
// Any error returned by a deserialiser causes StartSession() to fail.
//
// Once a database session has successfully initialised, entries can be added,
// removed and selected as the activity type permits.
//
// On disk, each entry is a single line of comma separated fields. The first
// two fields are the key and the entry type. Fields may not contain commas or
// newlines.
package database
