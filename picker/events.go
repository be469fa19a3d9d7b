package picker

// UIEventType defines the kind of event emitted by the picker.
type UIEventType int

const (
	EventColorChanged UIEventType = iota
)

// UIEvent describes a user interaction with the picker.
type UIEvent struct {
	Type   UIEventType
	Color  Color
	Region Region

	Hue        float64
	Saturation float64
	Value      float64
}

// EventHandler provides both channel and callback based event delivery.
type EventHandler struct {
	Events chan UIEvent
	Handle func(UIEvent)
}

// Emit delivers the event through the channel and callback if present.
func (h *EventHandler) Emit(ev UIEvent) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

// NewHandler returns an EventHandler with a buffered event channel.
func NewHandler() *EventHandler {
	return &EventHandler{Events: make(chan UIEvent, 8)}
}
