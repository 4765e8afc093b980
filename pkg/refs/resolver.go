// Package refs resolves caller-supplied layer references.
//
// A reference is, in order of precedence: an exact layer id, an exact
// layer name (first match in document order when names collide), or a
// positional alias "layer_<N>" naming the Nth layer created during the
// current interactive turn.
//
// Alias state lives in a Turn created fresh for each user-initiated
// generation turn and discarded afterwards. Stateless callers (the remote
// MCP/HTTP path) have no turn and must use ids or names; aliases are
// rejected there rather than silently misresolved.
package refs

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/easel-ai/easel/pkg/domain"
)

// ErrAliasOutsideSession is returned when a positional alias is used on a
// path that has no interactive turn to count against.
var ErrAliasOutsideSession = errors.New("positional aliases are only valid within an interactive session; use the layer id or name")

var aliasPattern = regexp.MustCompile(`^layer_(\d+)$`)

// Turn tracks the layers created during one interactive generation turn,
// in creation order. The zero value is ready to use.
type Turn struct {
	created []string
}

// NewTurn returns an empty turn. The orchestrator creates one per
// user-initiated turn; alias counters persist across the tool calls of
// that turn and reset with the next.
func NewTurn() *Turn {
	return &Turn{}
}

// Record appends a newly created layer id to the turn.
func (t *Turn) Record(layerID string) {
	t.created = append(t.created, layerID)
}

// Layer returns the id of the Nth (0-indexed) layer created this turn.
func (t *Turn) Layer(n int) (string, bool) {
	if n < 0 || n >= len(t.created) {
		return "", false
	}
	return t.created[n], true
}

// Len reports how many layers were created this turn.
func (t *Turn) Len() int {
	return len(t.created)
}

// IsAlias reports whether ref matches the positional alias pattern.
func IsAlias(ref string) bool {
	return aliasPattern.MatchString(ref)
}

// Resolve maps ref to a concrete layer id within the project.
// turn may be nil on stateless paths; aliases then resolve to
// ErrAliasOutsideSession.
func Resolve(project *domain.Project, turn *Turn, ref string) (string, error) {
	// 1. Exact id match.
	if project.Layer(ref) != nil {
		return ref, nil
	}

	// 2. Exact name match; first in document order wins on collisions.
	for _, l := range project.Layers {
		if l.Name == ref {
			return l.ID, nil
		}
	}

	// 3. Positional alias against the current turn.
	if m := aliasPattern.FindStringSubmatch(ref); m != nil {
		if turn == nil {
			return "", ErrAliasOutsideSession
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return "", fmt.Errorf("%w: %q", domain.ErrLayerNotFound, ref)
		}
		id, ok := turn.Layer(n)
		if !ok {
			return "", fmt.Errorf("%w: alias %q is out of range, %d layer(s) created this turn", domain.ErrLayerNotFound, ref, turn.Len())
		}
		return id, nil
	}

	return "", fmt.Errorf("%w: %q", domain.ErrLayerNotFound, ref)
}
