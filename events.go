package compass

// EventType identifies a kind of selector event.
type EventType uint8

const (
	EventSelect  EventType = iota // fires when the selected region index changes
	EventTrigger                  // fires after a trigger is sent to a region's animator
	EventDragEnd                  // fires when a drag ends
)

func (t EventType) String() string {
	switch t {
	case EventSelect:
		return "select"
	case EventTrigger:
		return "trigger"
	case EventDragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}

// Event carries selector state at the moment an event fired.
type Event struct {
	Type    EventType
	Index   int
	Region  string
	Angle   float64
	Trigger string // set for EventTrigger only
}

// EventSink receives every selector event. It is the hook used by ECS
// adapters.
type EventSink interface {
	EmitEvent(event Event)
}

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	byType [3][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered selector callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.event) >= len(h.reg.byType) {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) add(t EventType, fn func(Event)) CallbackHandle {
	if int(t) >= len(r.byType) {
		return CallbackHandle{}
	}
	r.nextID++
	id := r.nextID
	r.byType[t] = append(r.byType[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: t}
}

func (r *handlerRegistry) fire(e Event) {
	if int(e.Type) >= len(r.byType) {
		return
	}
	// Handlers may remove themselves or others while firing.
	hs := append([]eventHandler(nil), r.byType[e.Type]...)
	for _, h := range hs {
		if h.fn != nil {
			h.fn(e)
		}
	}
}
