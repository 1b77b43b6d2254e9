// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// +build !debug

package boolgraph

// _DEBUG mirrors the build-tag-gated constant of the same name in
// debug.go; outside a debug build it stays false, and traceGate/traceOp
// log a short record at Debug level instead of debug.go's detailed
// Trace-level one.
const _DEBUG bool = false

func (p *Preprocessor) traceGate(op string, g *Gate) {
	p.cfg.logger.Debug().Str("kind", g.Kind.String()).Msg(op)
}

func (p *Preprocessor) traceOp(phase string) {
	p.cfg.logger.Debug().Int("gates", len(p.graph.Gates)).Msg(phase)
}
