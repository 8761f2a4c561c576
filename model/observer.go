package model

// Observer receives grid lifecycle events. Implementations must not retain or mutate the grid.
type Observer interface {
	GridCreated(size int)
	GridUpdated(size, living int)
	GridRejected(err error)
}
