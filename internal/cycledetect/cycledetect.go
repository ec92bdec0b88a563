// Package cycledetect guards the enumerator (spec §4.G) against
// infinite expansion of cyclic stack graphs: it decides whether a
// candidate path is worth processing given every path already seen
// between the same pair of endpoints.
package cycledetect

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/stackpath/internal/graph"
	"github.com/standardbeagle/stackpath/internal/partial"
	"github.com/standardbeagle/stackpath/internal/path"
)

// Detector decides whether a newly dequeued path should be processed
// (extended and visited) or discarded as a likely-unproductive repeat
// of a path already seen between the same endpoints (spec §4.G).
type Detector interface {
	ShouldProcessPath(g graph.Graph, session *partial.Session, candidate path.PartialPath) bool
}

type endpoints struct {
	start graph.NodeHandle
	end   graph.NodeHandle
}

// seenPath pairs a previously processed path with a cheap xxhash
// fingerprint of its stacks, so that distinguishing it from a new
// candidate usually costs one uint64 comparison instead of walking
// every deque in both paths.
type seenPath struct {
	path.PartialPath
	fingerprint uint64
}

// VisitedSetDetector buckets seen paths by (start node, end node) and
// only compares a candidate against paths sharing the same bucket,
// keeping comparison cost proportional to the cycle's local fan-out
// rather than to the whole path set.
type VisitedSetDetector struct {
	seen map[endpoints][]seenPath
}

// NewVisitedSetDetector returns a Detector with an empty visited set.
func NewVisitedSetDetector() *VisitedSetDetector {
	return &VisitedSetDetector{seen: make(map[endpoints][]seenPath)}
}

// ShouldProcessPath reports whether candidate has not already been
// seen (by Cmp equality) among paths sharing its endpoints, and records
// it as seen if so. Candidates whose fingerprint differs from every
// bucket member skip the expensive Cmp entirely; a fingerprint match
// still falls through to Cmp, since xxhash collisions are possible and
// must never cause a genuinely new path to be dropped.
func (d *VisitedSetDetector) ShouldProcessPath(g graph.Graph, session *partial.Session, candidate path.PartialPath) bool {
	key := endpoints{start: candidate.StartNode, end: candidate.EndNode}
	bucket := d.seen[key]
	fingerprint := fingerprintOf(session, candidate)

	for _, seen := range bucket {
		if seen.fingerprint != fingerprint {
			continue
		}
		if seen.Cmp(g, session, candidate) == 0 {
			return false
		}
	}
	d.seen[key] = append(bucket, seenPath{PartialPath: candidate, fingerprint: fingerprint})
	return true
}

// fingerprintOf hashes a canonical rendering of candidate's four
// stacks. It only needs to agree whenever two paths are Cmp-equal, not
// to be collision-free, so handle numbers (rather than human-readable
// names) are used to keep it cheap and deterministic across graphs.
func fingerprintOf(session *partial.Session, candidate path.PartialPath) uint64 {
	nodeName := func(n graph.NodeHandle) string { return strconv.FormatUint(uint64(n), 10) }
	symbolName := func(s graph.SymbolHandle) string { return strconv.FormatUint(uint64(s), 10) }

	symPre := candidate.SymbolStackPrecondition
	symPost := candidate.SymbolStackPostcondition
	scopePre := candidate.ScopeStackPrecondition
	scopePost := candidate.ScopeStackPostcondition

	var sig []byte
	sig = append(sig, symPre.Render(session, nodeName, symbolName)...)
	sig = append(sig, '|')
	sig = append(sig, symPost.Render(session, nodeName, symbolName)...)
	sig = append(sig, '|')
	sig = append(sig, scopePre.Render(session, nodeName)...)
	sig = append(sig, '|')
	sig = append(sig, scopePost.Render(session, nodeName)...)
	return xxhash.Sum64(sig)
}
