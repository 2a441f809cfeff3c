package core

type listener struct {
	tok  ListenerToken
	kind PointerKind
	fn   PointerHandler
}

// Listeners is a PointerSource that hosts embed and feed with Dispatch.
type Listeners struct {
	next ListenerToken
	subs []listener
}

// Subscribe registers fn for events of the given kind.
func (l *Listeners) Subscribe(kind PointerKind, fn PointerHandler) ListenerToken {
	if fn == nil {
		return 0
	}
	l.next++
	l.subs = append(l.subs, listener{tok: l.next, kind: kind, fn: fn})
	return l.next
}

// Unsubscribe removes a subscription. Unknown or repeated tokens are ignored.
func (l *Listeners) Unsubscribe(tok ListenerToken) {
	for i, s := range l.subs {
		if s.tok == tok {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}

// Len reports the number of live subscriptions.
func (l *Listeners) Len() int { return len(l.subs) }

// Dispatch delivers ev to every handler subscribed to its kind.
func (l *Listeners) Dispatch(ev PointerEvent) {
	subs := append([]listener(nil), l.subs...)
	for _, s := range subs {
		if s.kind == ev.Kind {
			s.fn(ev)
		}
	}
}
