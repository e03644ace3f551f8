// component/movement.go
package component

// Position - компонент позиции в мировых координатах (ось Y вверх)
type Position struct {
	X, Y float64
}

// Velocity - компонент скорости, копия скорости тела после шага физики
type Velocity struct {
	X, Y float64
}
