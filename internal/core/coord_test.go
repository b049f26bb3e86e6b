package core

import (
	"math/rand/v2"
	"testing"
	"unsafe"
)

const (
	trials    = 2000
	sizeLimit = 255
)

func newTestRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5eed, uint64(len(t.Name()))))
}

func randCoordinate(r *rand.Rand) Coordinate {
	return Coordinate{X: SmallNat(r.IntN(sizeLimit)), Y: SmallNat(r.IntN(sizeLimit))}
}

func randBound(r *rand.Rand) (SmallNat, SmallNat) {
	return SmallNat(1 + r.IntN(sizeLimit-1)), SmallNat(1 + r.IntN(sizeLimit-1))
}

// randWideBound draws bounds from the whole axis range, always including one
// side above 32768.
func randWideBound(r *rand.Rand) (SmallNat, SmallNat) {
	w := SmallNat(32769 + r.IntN(65535-32769+1))
	h := SmallNat(1 + r.IntN(65535))
	if r.IntN(2) == 0 {
		w, h = h, w
	}
	return w, h
}

func tentative(c Coordinate) Tentative {
	return Tentative{x: int32(c.X), y: int32(c.Y)}
}

func randDirection(r *rand.Rand) Direction {
	return Direction(r.IntN(4))
}

var directions = []Direction{North, South, East, West}

func TestDoubleOppositeIsIdentity(t *testing.T) {
	for _, d := range directions {
		if got := d.Opposite().Opposite(); got != d {
			t.Fatalf("%v.Opposite().Opposite() = %v", d, got)
		}
		if d.Opposite() == d {
			t.Fatalf("%v is its own opposite", d)
		}
	}
}

func TestTurnsAreInverse(t *testing.T) {
	for _, d := range directions {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Fatalf("%v left then right = %v", d, got)
		}
		if got := d.TurnLeft().TurnLeft(); got != d.Opposite() {
			t.Fatalf("%v two left turns = %v, want %v", d, got, d.Opposite())
		}
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b  Coordinate
		order int
		ok    bool
	}{
		{C(1, 1), C(1, 1), 0, true},
		{C(1, 1), C(1, 2), -1, true},
		{C(3, 1), C(1, 1), 1, true},
		{C(0, 0), C(4, 9), -1, true},
		{C(5, 6), C(4, 2), 1, true},
		{C(1, 2), C(2, 1), 0, false},
		{C(7, 0), C(0, 7), 0, false},
	}
	for _, tc := range cases {
		order, ok := tc.a.Compare(tc.b)
		if order != tc.order || ok != tc.ok {
			t.Errorf("%v.Compare(%v) = (%d,%v), want (%d,%v)", tc.a, tc.b, order, ok, tc.order, tc.ok)
		}
	}
}

func TestIndexPreservesPartialOrder(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < trials; i++ {
		a, b := randCoordinate(r), randCoordinate(r)
		if i%4 == 0 {
			b.X = a.X
		}
		order, ok := a.Compare(b)
		if !ok {
			continue
		}
		ia, ib := a.index(), b.index()
		var want int
		switch {
		case ia < ib:
			want = -1
		case ia > ib:
			want = 1
		}
		if order != want {
			t.Fatalf("%v vs %v: order %d but index order %d (%d, %d)", a, b, order, want, ia, ib)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	r := newTestRand(t)
	edges := []Coordinate{C(0, 0), C(1, 0), C(0, 1), C(65535, 0), C(0, 65535), C(65535, 65535)}
	for _, c := range edges {
		if got := coordinateAt(c.index()); got != c {
			t.Fatalf("round trip of %v = %v", c, got)
		}
	}
	for i := 0; i < trials; i++ {
		c := Coordinate{X: SmallNat(r.Uint32()), Y: SmallNat(r.Uint32())}
		if got := coordinateAt(c.index()); got != c {
			t.Fatalf("round trip of %v = %v", c, got)
		}
	}
	for i := 0; i < 1<<10; i++ {
		if got := coordinateAt(i).index(); got != i {
			t.Fatalf("index %d decodes back to %d", i, got)
		}
	}
}

func TestOppositeMovesCancel(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < trials; i++ {
		w, h := randBound(r)
		d := randDirection(r)
		start := tentative(randCoordinate(r)).Wrap(w, h)

		c := start.MoveTowards(d).Wrap(w, h)
		c = c.MoveTowards(d.Opposite()).Wrap(w, h)
		if c != start {
			t.Fatalf("%v on %dx%d: %v then back gave %v", start, w, h, d, c)
		}
	}
}

func TestLoopReturnsToStart(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < trials; i++ {
		w, h := randBound(r)
		start := tentative(randCoordinate(r)).Wrap(w, h)
		c := start
		for _, d := range []Direction{East, North, West, South} {
			c = c.MoveTowards(d).Wrap(w, h)
		}
		if c != start {
			t.Fatalf("%v on %dx%d: loop ended at %v", start, w, h, c)
		}
	}
}

func TestWrapOnFullRangeBounds(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < trials; i++ {
		w, h := randWideBound(r)
		d := randDirection(r)
		start := tentative(Coordinate{X: SmallNat(r.Uint32()), Y: SmallNat(r.Uint32())}).Wrap(w, h)

		c := start.MoveTowards(d).Wrap(w, h)
		if back := c.MoveTowards(d.Opposite()).Wrap(w, h); back != start {
			t.Fatalf("%v on %dx%d: %v then back gave %v", start, w, h, d, back)
		}
		loop := start
		for _, step := range []Direction{East, North, West, South} {
			loop = loop.MoveTowards(step).Wrap(w, h)
		}
		if loop != start {
			t.Fatalf("%v on %dx%d: loop ended at %v", start, w, h, loop)
		}
	}

	for _, tc := range []struct {
		from Coordinate
		d    Direction
		w, h SmallNat
		want Coordinate
	}{
		{C(39999, 0), East, 40000, 1, C(0, 0)},
		{C(0, 0), West, 40000, 1, C(39999, 0)},
		{C(65534, 3), East, 65535, 5, C(0, 3)},
		{C(0, 0), North, 1, 65535, C(0, 65534)},
		{C(7, 65534), South, 9, 65535, C(7, 0)},
	} {
		if got := tc.from.MoveTowards(tc.d).Wrap(tc.w, tc.h); got != tc.want {
			t.Errorf("%v %v on %dx%d wrapped to %v, want %v", tc.from, tc.d, tc.w, tc.h, got, tc.want)
		}
	}
	if _, ok := C(65534, 0).MoveTowards(East).Clip(65535, 1); ok {
		t.Error("clip accepted a step past the last column")
	}
}

func TestClipAgreesWithWrapInside(t *testing.T) {
	r := newTestRand(t)
	clipped := 0
	for i := 0; i < trials; i++ {
		w, h := randBound(r)
		tc := tentative(randCoordinate(r))
		got, ok := tc.Clip(w, h)
		if !ok {
			continue
		}
		clipped++
		if wrapped := tc.Wrap(w, h); wrapped != got {
			t.Fatalf("%v on %dx%d: clip %v, wrap %v", tc, w, h, got, wrapped)
		}
	}
	if clipped == 0 {
		t.Fatal("no sample landed inside its bound")
	}
}

func TestInsidePolicies(t *testing.T) {
	g := NewGrid(10, 2)
	tc := C(0, 0).MoveTowards(West)

	got, ok := Inside[Wrap](tc, g)
	if !ok || got != C(9, 0) {
		t.Fatalf("Inside[Wrap] = (%v,%v), want ((9,0),true)", got, ok)
	}
	if got, ok := Inside[Clip](tc, g); ok {
		t.Fatalf("Inside[Clip] = %v, want absent", got)
	}

	in := C(3, 1).MoveTowards(North)
	w, _ := Inside[Wrap](in, g)
	c, ok := Inside[Clip](in, g)
	if !ok || c != w || c != C(3, 0) {
		t.Fatalf("in-bounds move: wrap %v clip (%v,%v)", w, c, ok)
	}
}

func TestCellFitsInByte(t *testing.T) {
	if size := unsafe.Sizeof(Cell(0)); size != 1 {
		t.Fatalf("Cell occupies %d bytes", size)
	}
}

func TestCellStates(t *testing.T) {
	for _, d := range directions {
		c := SnakeCell(d)
		got, ok := c.Snake()
		if !ok || got != d {
			t.Fatalf("SnakeCell(%v).Snake() = (%v,%v)", d, got, ok)
		}
		if c.IsEmpty() || c == CellFood || c == CellOutOfBounds {
			t.Fatalf("SnakeCell(%v) collides with another state", d)
		}
	}
	for _, c := range []Cell{CellEmpty, CellFood, CellOutOfBounds} {
		if c.IsSnake() {
			t.Fatalf("%v reported as snake", c)
		}
	}
	if !CellEmpty.IsEmpty() || CellFood.IsEmpty() {
		t.Fatal("IsEmpty mismatch")
	}
}

func TestKeyDirections(t *testing.T) {
	cases := []struct {
		key Key
		dir Direction
		ok  bool
	}{
		{KeyLeft, West, true},
		{KeyUp, North, true},
		{KeyRight, East, true},
		{KeyDown, South, true},
		{KeyNone, 0, false},
		{Key(36), 0, false},
		{Key(41), 0, false},
		{Key(32), 0, false},
	}
	for _, tc := range cases {
		d, ok := tc.key.Command()
		if ok != tc.ok || (ok && d != tc.dir) {
			t.Errorf("Key(%d).Command() = (%v,%v), want (%v,%v)", tc.key, d, ok, tc.dir, tc.ok)
		}
		if tc.key.IsDirection() != tc.ok {
			t.Errorf("Key(%d).IsDirection() = %v", tc.key, !tc.ok)
		}
	}
}
