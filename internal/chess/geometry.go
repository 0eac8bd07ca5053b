package chess

import "errors"

// ErrNotALine is returned for displacements that are neither straight nor diagonal.
var ErrNotALine = errors.New("displacement is not a straight or diagonal line")

// Displacement is the (rank, file) difference between two squares.
type Displacement struct {
	DRank int
	DFile int
}

// Between returns the displacement from a to b.
func Between(a, b Square) Displacement {
	return Displacement{DRank: b.Rank - a.Rank, DFile: b.File - a.File}
}

// IsZero reports whether both components are zero.
func (d Displacement) IsZero() bool {
	return d.DRank == 0 && d.DFile == 0
}

// IsStraight reports a move along a rank or a file.
// The zero displacement is not a move and is not straight.
func (d Displacement) IsStraight() bool {
	return !d.IsZero() && (d.DRank == 0 || d.DFile == 0)
}

// IsDiagonal reports a nonzero move with equal rank and file distance.
func (d Displacement) IsDiagonal() bool {
	return !d.IsZero() && abs(d.DRank) == abs(d.DFile)
}

// IsUnit reports a move to one of the eight neighbouring squares.
func (d Displacement) IsUnit() bool {
	return d.Length() == 1
}

// IsLShape reports a knight jump: one square one way, two the other.
func (d Displacement) IsLShape() bool {
	r, f := abs(d.DRank), abs(d.DFile)
	return (r == 1 && f == 2) || (r == 2 && f == 1)
}

// Length returns the Chebyshev distance, the step count of a sliding move.
func (d Displacement) Length() int {
	return max(abs(d.DRank), abs(d.DFile))
}

// UnitDirection reduces each component to its sign.
// It fails for displacements that are not straight or diagonal.
func (d Displacement) UnitDirection() (Displacement, error) {
	if !d.IsStraight() && !d.IsDiagonal() {
		return Displacement{}, ErrNotALine
	}
	return Displacement{DRank: sign(d.DRank), DFile: sign(d.DFile)}, nil
}

// Path returns the squares strictly between origin and target on a straight
// or diagonal line, nearest first. Adjacent squares give an empty path.
func Path(origin, target Square) ([]Square, error) {
	d := Between(origin, target)
	dir, err := d.UnitDirection()
	if err != nil {
		return nil, err
	}

	n := d.Length()
	path := make([]Square, 0, n-1)
	sq := origin.Add(dir)
	for step := 1; step < n; step++ {
		path = append(path, sq)
		sq = sq.Add(dir)
	}
	return path, nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
