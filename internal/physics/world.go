package physics

import (
	"dr-fingers/internal/types"

	"github.com/jakecoffman/cp"
)

// World - обёртка над пространством Chipmunk2D.
// Координаты мировые: ось Y направлена вверх.
type World struct {
	space *cp.Space
}

// NewWorld создаёт пространство с гравитацией, направленной вниз
func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &World{space: space}
}

// Space даёт доступ к пространству движка
func (w *World) Space() *cp.Space {
	return w.space
}

// AddStaticBox добавляет неподвижный прямоугольник с центром в (x, y).
// В UserData формы записывается ID сущности.
func (w *World) AddStaticBox(id types.EntityID, x, y, halfW, halfH float64) *cp.Shape {
	bb := cp.BB{L: x - halfW, B: y - halfH, R: x + halfW, T: y + halfH}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.UserData = id
	return w.space.AddShape(shape)
}

// AddCapsule добавляет динамическое тело с горизонтальной капсулой.
// Момент инерции бесконечный, тело не вращается.
func (w *World) AddCapsule(id types.EntityID, x, y, halfLength, radius, mass float64) (*cp.Body, *cp.Shape) {
	body := w.space.AddBody(cp.NewBody(mass, cp.INFINITY))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = id

	shape := cp.NewSegment(body, cp.Vector{X: -halfLength, Y: 0}, cp.Vector{X: halfLength, Y: 0}, radius)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.UserData = id
	w.space.AddShape(shape)
	return body, shape
}

// Step продвигает симуляцию на dt секунд
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// Teleport переносит тело в точку и обнуляет скорость
func Teleport(body *cp.Body, x, y float64) {
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetVelocity(0, 0)
}

// Contacts возвращает ID сущностей, формы которых сейчас касаются тела
func Contacts(body *cp.Body) []types.EntityID {
	var ids []types.EntityID
	body.EachArbiter(func(arb *cp.Arbiter) {
		_, other := arb.Shapes()
		if id, ok := other.UserData.(types.EntityID); ok {
			ids = append(ids, id)
		}
	})
	return ids
}

// TouchesTopFloor сообщает, касается ли игрок хотя бы одного тайла
// с верхней поверхностью. isTopFloor решает по ID сущности.
func TouchesTopFloor(contacts []types.EntityID, isTopFloor func(types.EntityID) bool) bool {
	for _, id := range contacts {
		if isTopFloor(id) {
			return true
		}
	}
	return false
}
