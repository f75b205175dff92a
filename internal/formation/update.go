package formation

// Update advances the formation by one tick. Movement only happens when the
// interval counter reaches the current speed; every other tick just counts.
func (f *Formation) Update() {
	if len(f.columns) == 0 {
		return
	}

	f.speed = f.mode.Speed(f)
	f.interval++
	if f.interval < f.speed {
		return
	}
	f.interval = 0

	f.cleanUp()
	if len(f.columns) == 0 {
		return
	}

	d := f.mode.Step(f, f.boundaries())
	f.displace(d)
	f.recomputeBounds()
}

// boundaries checks the bounding box against the arena edges.
func (f *Formation) boundaries() Boundaries {
	w, h := f.arena.Width(), f.arena.Height()
	return Boundaries{
		AtBottom:   f.anchorY+f.height > h-f.geo.BottomMargin,
		AtRight:    f.anchorX+f.width >= w-f.geo.SideMargin,
		AtLeft:     f.anchorX <= f.geo.SideMargin,
		AtAltitude: f.originY%f.geo.DescentDistance == 0,
	}
}

// cleanUp purges destroyed units, drops columns left empty and refreshes
// the bounding box.
func (f *Formation) cleanUp() {
	kept := f.columns[:0]
	for _, col := range f.columns {
		live := col.units[:0]
		for _, u := range col.units {
			if !u.destroyed {
				live = append(live, u)
			}
		}
		clear(col.units[len(live):])
		col.units = live

		if len(col.units) == 0 {
			f.logger.Debug("removing empty column", "column", col.index)
			continue
		}
		kept = append(kept, col)
	}
	clear(f.columns[len(kept):])
	f.columns = kept

	f.recomputeBounds()
}

// displace moves every unit by the base displacement plus its share of the
// bow. Units further from the grid center get a proportionally larger
// counter-offset.
func (f *Formation) displace(d Displacement) {
	f.originX += d.DX
	f.originY += d.DY

	for _, col := range f.columns {
		for _, u := range col.units {
			dx := d.DX + d.Extend*(f.centerCol-u.col)
			dy := d.DY + d.Extend*(f.centerRow-u.row)
			u.Move(dx, dy)
			u.Update()
		}
	}
}

// recomputeBounds derives the bounding box from the surviving columns:
// horizontal extent from the first and last column heads, vertical extent
// from the highest head and the tallest column.
func (f *Formation) recomputeBounds() {
	if len(f.columns) == 0 {
		f.width, f.height = 0, 0
		return
	}

	first := f.columns[0].units[0]
	last := f.columns[len(f.columns)-1].units[0]
	f.anchorX = first.x
	f.width = last.x + last.width - first.x

	f.anchorY = first.y
	for _, col := range f.columns[1:] {
		f.anchorY = min(f.anchorY, col.units[0].y)
	}

	f.height = 0
	for _, col := range f.columns {
		tail := col.units[len(col.units)-1]
		f.height = max(f.height, tail.y+tail.height-f.anchorY)
	}
}
