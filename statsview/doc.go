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


// Package statsview serves runtime statistics over HTTP while a simulation is
// being profiled. It is only functional when built with the statsview build
// tag:
//
//	go build -tags statsview .
//
// The graphs are provided by "github.com/go-echarts/statsview" and are viewable
// at:
//
//	localhost:12600/debug/statsview
//
// The standard Go pprof pages are also available at:
//
//	localhost:12600/debug/pprof/
package statsview
