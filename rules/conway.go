package rules

/*
LiveOrDie returns the next state of a cell given its current state and live neighbor count.

The checks run in order and the first match wins:
  - alive with fewer than 2 neighbors dies (underpopulation)
  - alive with more than 3 neighbors dies (overpopulation)
  - dead with exactly 3 neighbors comes alive (reproduction)
  - anything else keeps its state
*/
func LiveOrDie(alive bool, liveNeighbors int) bool {
	switch {
	case alive && liveNeighbors < 2:
		return false
	case alive && liveNeighbors > 3:
		return false
	case !alive && liveNeighbors == 3:
		return true
	}
	return alive
}
