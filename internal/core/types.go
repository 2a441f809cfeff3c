package core

// Size describes pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// HAlign selects the horizontal anchor of drawn text.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign selects the vertical anchor of drawn text.
type VAlign uint8

const (
	AlignBaseline VAlign = iota
	AlignTop
	AlignMiddle
)

// TextAlign bundles both text anchors.
type TextAlign struct {
	H HAlign
	V VAlign
}

// Canvas is the 2D drawing context of a surface. Coordinates are in pixels
// with the origin at the top-left corner.
type Canvas interface {
	Bounds() Size
	FillRect(x, y, w, h float64, p Paint)
	FillRoundedRect(x, y, w, h, radius float64, p Paint)
	StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, p Paint)
	FillText(s string, x, y float64, align TextAlign, p Paint)
}

// PointerKind enumerates the pointer events a surface delivers.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent carries surface-local pointer coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// PointerHandler receives pointer events.
type PointerHandler func(PointerEvent)

// ListenerToken identifies a pointer subscription. The zero token is never
// issued.
type ListenerToken uint64

// PointerSource lets a caller subscribe to one kind of pointer event and
// later release the subscription with the returned token.
type PointerSource interface {
	Subscribe(kind PointerKind, fn PointerHandler) ListenerToken
	Unsubscribe(tok ListenerToken)
}

// Surface is a resizable drawable area that also delivers pointer events.
type Surface interface {
	PointerSource
	Width() int
	Height() int
	SetSize(w, h int)
	Canvas() Canvas
}

// FrameHandle identifies a scheduled frame callback. Zero means none.
type FrameHandle uint64

// Scheduler requests and cancels next-frame callbacks.
type Scheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}
