// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher - диспетчер событий.
// События из Queue копятся до Flush, чтобы подписчики не вмешивались
// в середину шага физики.
type Dispatcher struct {
	listeners map[EventType][]Listener
	pending   []Event
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe - отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch - немедленная отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Queue откладывает событие до следующего Flush
func (d *Dispatcher) Queue(event Event) {
	d.pending = append(d.pending, event)
}

// Flush рассылает накопленные события в порядке поступления.
// События, поставленные в очередь во время рассылки, уйдут в следующий Flush.
func (d *Dispatcher) Flush() {
	pending := d.pending
	d.pending = nil
	for _, e := range pending {
		d.Dispatch(e)
	}
}
