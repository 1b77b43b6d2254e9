// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// +build debug

package boolgraph

const _DEBUG bool = true

// traceGate writes a one-line, human-readable description of a gate to
// the preprocessor's logger, gated behind the debug build tag so it never
// costs anything in a release build.
func (p *Preprocessor) traceGate(op string, g *Gate) {
	p.cfg.logger.Trace().
		Int("index", g.index).
		Str("kind", g.Kind.String()).
		Str("state", g.State.String()).
		Int("nargs", g.argCount()).
		Msg(op)
}

// traceOp logs entry into a phase, with a snapshot of the graph's size at
// that point.
func (p *Preprocessor) traceOp(phase string) {
	p.cfg.logger.Trace().
		Int("gates", len(p.graph.Gates)).
		Int("variables", len(p.graph.Variables)).
		Bool("normal", p.graph.Normal).
		Bool("coherent", p.graph.Coherent).
		Msg(phase)
}
