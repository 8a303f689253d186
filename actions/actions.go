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

package actions

import (
	"github.com/jetsetilly/rollout/agent"
	"github.com/jetsetilly/rollout/curated"
)

// Sentinal error patterns.
const (
	UnknownAction   = "unknown action: %q"
	DuplicateAction = "duplicate action: %q"
)

// Action describes a registered identifier.
type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type entry[I any] struct {
	Action
	input I
}

// Registry maps identifiers to inputs.
type Registry[I any] struct {
	entries []entry[I]
	lookup  map[string]int
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry[I any]() *Registry[I] {
	return &Registry[I]{
		lookup: make(map[string]int),
	}
}

// Register an input with an identifier. The label is a human readable
// description. Returns an error if the identifier has already been
// registered.
func (reg *Registry[I]) Register(id string, label string, input I) error {
	if _, ok := reg.lookup[id]; ok {
		return curated.Errorf(DuplicateAction, id)
	}
	reg.lookup[id] = len(reg.entries)
	reg.entries = append(reg.entries, entry[I]{
		Action: Action{ID: id, Label: label},
		input:  input,
	})
	return nil
}

// Lookup the input for an identifier. Returns an UnknownAction error if the
// identifier has not been registered.
func (reg *Registry[I]) Lookup(id string) (I, error) {
	idx, ok := reg.lookup[id]
	if !ok {
		var i I
		return i, curated.Errorf(UnknownAction, id)
	}
	return reg.entries[idx].input, nil
}

// Manifest returns every registered action in the order they were registered.
func (reg *Registry[I]) Manifest() []Action {
	m := make([]Action, len(reg.entries))
	for i := range reg.entries {
		m[i] = reg.entries[i].Action
	}
	return m
}

// IDs returns the identifier of every registered action in the order they were
// registered.
func (reg *Registry[I]) IDs() []string {
	ids := make([]string, len(reg.entries))
	for i := range reg.entries {
		ids[i] = reg.entries[i].ID
	}
	return ids
}

// StepByID looks up the identifier and sends a step request to the host. The
// host is not used if the identifier is unknown.
func StepByID[S any, I any](host *agent.Host[S, I], reg *Registry[I], id string) (agent.Response[S], error) {
	input, err := reg.Lookup(id)
	if err != nil {
		return agent.Response[S]{}, err
	}
	return host.Handle(agent.Step(input)), nil
}
