package mines

// generate lays out exactly bombsCount mines, none of them at
// (excludeRow, excludeColumn), and fills in the neighbour counts.
func (b *Board) generate(excludeRow, excludeColumn int) {
	b.boom = false

	/*
	 * Write down every cell a mine may go to, then pick bombsCount of
	 * them off the list at random.
	 */
	exclude := excludeRow*b.size + excludeColumn
	candidates := make([]int, 0, b.size*b.size-1)
	for i := range b.size * b.size {
		if i != exclude {
			candidates = append(candidates, i)
		}
	}

	k := len(candidates)
	for range b.bombsCount {
		j := b.rnd.IntN(k)
		i := candidates[j]
		k--
		candidates[j] = candidates[k]

		bomb := b.bombs.MustCell(i/b.size, i%b.size)
		bomb.SetValue(true)

		for _, n := range b.neighboringBombs.MustCell(bomb.Row(), bomb.Column()).Neighbors() {
			n.SetValue(n.Value() + 1)
		}
	}

	b.generated = true

	b.logger().WithField("exclude", [2]int{excludeRow, excludeColumn}).
		Debug("mines placed")
}
