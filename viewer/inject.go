package viewer

import "github.com/phanxgames/fractal"

// Inject queues a synthetic action. Queued actions are consumed one per
// frame, ahead of real input, which is skipped on frames that consume one.
func (g *Game) Inject(a Action) {
	g.injectQueue = append(g.injectQueue, a)
}

// InjectText queues one text action per character of s.
func (g *Game) InjectText(s string) {
	for _, r := range s {
		g.Inject(Action{Type: ActionText, Text: string(r)})
	}
}

// InjectKind queues a kind selection.
func (g *Game) InjectKind(k fractal.Kind) {
	g.Inject(Action{Type: ActionSelectKind, Kind: k})
}

// popInjected removes and returns the oldest queued action.
func (g *Game) popInjected() (Action, bool) {
	if len(g.injectQueue) == 0 {
		return Action{}, false
	}
	a := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	return a, true
}
