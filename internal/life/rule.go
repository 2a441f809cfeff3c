package life

// nextState applies B3/S23 to a cell given its live-neighbour count.
func nextState(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}
