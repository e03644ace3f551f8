// component/physics.go
package component

import "github.com/jakecoffman/cp"

// PhysicsBody связывает сущность с телом и формой в пространстве Chipmunk2D.
// У статических тайлов Body - общее статическое тело пространства.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Static bool
}
