package board

// axisSize is the number of coordinates on one axis of the board.
const axisSize = 8

// pool holds the eight instances of one coordinate kind, indexed by raw offset.
type pool[T any] [axisSize]T

// buildPool constructs every instance of a kind up front.
func buildPool[T any](constructor func(offset int) T) pool[T] {
	var p pool[T]
	for i := range p {
		p[i] = constructor(i)
	}
	return p
}

// at returns the instance at offset, or false if offset is outside 0-7.
func (p *pool[T]) at(offset int) (T, bool) {
	if offset < 0 || offset >= axisSize {
		var zero T
		return zero, false
	}
	return p[offset], true
}
