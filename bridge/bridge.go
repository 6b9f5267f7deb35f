// Package bridge forwards pointer and viewport events from a host window to
// the components that subscribe to them. Subscribers register callbacks and
// get back a cancel func; the host emits raw pixel coordinates and sizes.
package bridge

import "slices"

// Source is the subscription side of the bridge.
type Source interface {
	// OnPointerMove registers fn for raw pointer positions in viewport pixels.
	OnPointerMove(fn func(x, y float64)) (cancel func())
	// OnResize registers fn for viewport size changes.
	OnResize(fn func(width, height int)) (cancel func())
}

type listener[F any] struct {
	id uint64
	fn F
}

// Hub is an in-process Source that hosts drive by calling Emit methods.
// It is not safe for concurrent use; hosts emit from their frame loop.
type Hub struct {
	next    uint64
	pointer []listener[func(x, y float64)]
	resize  []listener[func(width, height int)]
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) OnPointerMove(fn func(x, y float64)) func() {
	h.next++
	id := h.next
	h.pointer = append(h.pointer, listener[func(x, y float64)]{id: id, fn: fn})
	return func() {
		h.pointer = slices.DeleteFunc(h.pointer, func(l listener[func(x, y float64)]) bool {
			return l.id == id
		})
	}
}

func (h *Hub) OnResize(fn func(width, height int)) func() {
	h.next++
	id := h.next
	h.resize = append(h.resize, listener[func(width, height int)]{id: id, fn: fn})
	return func() {
		h.resize = slices.DeleteFunc(h.resize, func(l listener[func(width, height int)]) bool {
			return l.id == id
		})
	}
}

// EmitPointer delivers a pointer position to every pointer listener.
func (h *Hub) EmitPointer(x, y float64) {
	for _, l := range slices.Clone(h.pointer) {
		l.fn(x, y)
	}
}

// EmitResize delivers a viewport size to every resize listener. Sizes are
// not deduplicated; listeners compare against their own viewport.
func (h *Hub) EmitResize(width, height int) {
	for _, l := range slices.Clone(h.resize) {
		l.fn(width, height)
	}
}

// Listeners returns the number of registered callbacks of both kinds.
func (h *Hub) Listeners() int {
	return len(h.pointer) + len(h.resize)
}
