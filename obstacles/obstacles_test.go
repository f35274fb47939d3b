package obstacles_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/obstacles"
	"github.com/katalvlaran/gridpath/relax"
)

func TestMain(m *testing.M) {
	obstacles.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	os.Exit(m.Run())
}

const fallingBytes = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`

func openGrid(t testing.TB, w, h int) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.New(w, h, nil)
	require.NoError(t, err)
	return g
}

func corner(g *gridmap.Grid) gridmap.Coord {
	return gridmap.Coord{Row: g.Height() - 1, Col: g.Width() - 1}
}

// wallSequence builds 51 obstacles on a 10×10 grid. The first 36 leave a
// winding corridor open; #36 closes the last gap in row 5; the rest land on
// the far side of the wall.
func wallSequence() []gridmap.Coord {
	var wall, fill []gridmap.Coord
	for c := 0; c < 9; c++ {
		wall = append(wall, gridmap.Coord{Row: 5, Col: c})
	}
	for c := 1; c < 10; c++ {
		fill = append(fill, gridmap.Coord{Row: 2, Col: c})
	}
	for c := 0; c < 9; c++ {
		fill = append(fill, gridmap.Coord{Row: 7, Col: c})
	}
	for c := 0; c < 8; c++ {
		fill = append(fill, gridmap.Coord{Row: 4, Col: c})
	}
	fill = append(fill, gridmap.Coord{Row: 9, Col: 0})

	var seq []gridmap.Coord
	for i := range wall {
		seq = append(seq, wall[i])
		seq = append(seq, fill[3*i:3*i+3]...)
	}
	seq = append(seq, gridmap.Coord{Row: 5, Col: 9})
	for c := 1; c < 10; c++ {
		seq = append(seq, gridmap.Coord{Row: 0, Col: c})
	}
	for c := 0; c < 5; c++ {
		seq = append(seq, gridmap.Coord{Row: 8, Col: c})
	}
	return seq
}

// SolveSuite runs every FirstDisconnect case under both strategies.
type SolveSuite struct {
	suite.Suite
	strategy obstacles.Strategy
}

func (s *SolveSuite) solve(g *gridmap.Grid, seq []gridmap.Coord) (obstacles.Outcome, error) {
	return obstacles.Solve(g, seq, gridmap.Coord{}, corner(g),
		obstacles.WithMode(obstacles.FirstDisconnect),
		obstacles.WithStrategy(s.strategy),
	)
}

func (s *SolveSuite) TestFallingBytesExample() {
	seq, err := gridmap.ParseCoords(strings.NewReader(fallingBytes))
	s.Require().NoError(err)
	g := openGrid(s.T(), 7, 7)

	out, err := s.solve(g, seq)
	s.Require().NoError(err)
	s.Equal(20, out.Index)
	s.Equal("6,1", out.String())
	s.Equal(relax.Unreachable, out.Distance)
	// the grid holds exactly the applied prefix
	s.Equal(21, g.Count(gridmap.Blocked))
}

func (s *SolveSuite) TestWallAtIndex36() {
	seq := wallSequence()
	s.Require().GreaterOrEqual(len(seq), 50)
	g := openGrid(s.T(), 10, 10)

	out, err := s.solve(g, seq)
	s.Require().NoError(err)
	s.Equal(36, out.Index)
	s.Equal(gridmap.Coord{Row: 5, Col: 9}, out.At)
	s.Equal("9,5", out.String())
	s.Equal(37, out.Applied)
	s.Equal(37, g.Count(gridmap.Blocked))
}

func (s *SolveSuite) TestNeverDisconnected() {
	seq := wallSequence()[:36]
	g := openGrid(s.T(), 10, 10)

	out, err := s.solve(g, seq)
	s.ErrorIs(err, obstacles.ErrNeverDisconnected)
	s.Equal(-1, out.Index)
	s.Equal(36, g.Count(gridmap.Blocked))
}

func (s *SolveSuite) TestDisconnectedByFirst() {
	// A 1×3 corridor: the middle cell cuts it immediately.
	g := openGrid(s.T(), 3, 1)
	out, err := s.solve(g, []gridmap.Coord{{Col: 1}, {Col: 0}})
	s.Require().NoError(err)
	s.Equal(0, out.Index)
}

func (s *SolveSuite) TestEmptySequence() {
	g := openGrid(s.T(), 3, 3)
	_, err := s.solve(g, nil)
	s.ErrorIs(err, obstacles.ErrNeverDisconnected)
}

func TestSolveLinear(t *testing.T) {
	suite.Run(t, &SolveSuite{strategy: obstacles.Linear})
}

func TestSolveBisect(t *testing.T) {
	suite.Run(t, &SolveSuite{strategy: obstacles.Bisect})
}

func TestSolve_FinalDistance(t *testing.T) {
	seq, err := gridmap.ParseCoords(strings.NewReader(fallingBytes))
	require.NoError(t, err)

	g := openGrid(t, 7, 7)
	out, err := obstacles.Solve(g, seq, gridmap.Coord{}, corner(g), obstacles.WithLimit(12))
	require.NoError(t, err)
	assert.Equal(t, uint64(22), out.Distance)
	assert.Equal(t, 12, out.Applied)
	assert.Equal(t, -1, out.Index)
	assert.Equal(t, "22", out.String())

	// Every obstacle applied: cut off.
	g = openGrid(t, 7, 7)
	out, err = obstacles.Solve(g, seq, gridmap.Coord{}, corner(g))
	require.NoError(t, err)
	assert.Equal(t, relax.Unreachable, out.Distance)
	assert.Equal(t, "unreachable", out.String())
	assert.Equal(t, len(seq), out.Applied)

	// A zero limit applies nothing.
	g = openGrid(t, 7, 7)
	out, err = obstacles.Solve(g, seq, gridmap.Coord{}, corner(g), obstacles.WithLimit(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(12), out.Distance)
	assert.Equal(t, 0, out.Applied)
	assert.Equal(t, 0, g.Count(gridmap.Blocked))

	// A limit past the end is the whole sequence.
	g = openGrid(t, 7, 7)
	out, err = obstacles.Solve(g, seq, gridmap.Coord{}, corner(g), obstacles.WithLimit(len(seq)+10))
	require.NoError(t, err)
	assert.Equal(t, len(seq), out.Applied)
}

func TestSolve_OpenGrid71(t *testing.T) {
	g := openGrid(t, 71, 71)
	out, err := obstacles.Solve(g, nil, gridmap.Coord{}, corner(g))
	require.NoError(t, err)
	assert.Equal(t, uint64(140), out.Distance)
}

func TestSolve_SkipsMarkers(t *testing.T) {
	g, err := gridmap.ParseString("S.E\n")
	require.NoError(t, err)
	start, end, err := g.Markers()
	require.NoError(t, err)

	out, err := obstacles.Solve(g, []gridmap.Coord{start, end}, start, end)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), out.Distance)
	assert.Equal(t, gridmap.Start, g.Get(start))
	assert.Equal(t, gridmap.End, g.Get(end))
}

func TestSolve_Validation(t *testing.T) {
	g := openGrid(t, 3, 3)

	_, err := obstacles.Solve(nil, nil, gridmap.Coord{}, gridmap.Coord{})
	assert.ErrorIs(t, err, obstacles.ErrNilGrid)

	_, err = obstacles.Solve(g, nil, gridmap.Coord{}, gridmap.Coord{Row: 3})
	assert.ErrorIs(t, err, obstacles.ErrEndpointOutOfBounds)

	_, err = obstacles.Solve(g, []gridmap.Coord{{Row: 1}, {Col: 7}}, gridmap.Coord{}, corner(g))
	assert.ErrorIs(t, err, obstacles.ErrObstacleOutOfBounds)
	assert.Equal(t, 0, g.Count(gridmap.Blocked), "nothing applied before validation failed")

	_, err = obstacles.Solve(g, nil, gridmap.Coord{}, corner(g), obstacles.WithLimit(-1))
	assert.ErrorIs(t, err, obstacles.ErrOptionViolation)

	_, err = obstacles.Solve(g, nil, gridmap.Coord{}, corner(g), obstacles.WithMode(obstacles.Mode(9)))
	assert.ErrorIs(t, err, obstacles.ErrOptionViolation)

	_, err = obstacles.Solve(g, nil, gridmap.Coord{}, corner(g), obstacles.WithStrategy(obstacles.Strategy(9)))
	assert.ErrorIs(t, err, obstacles.ErrOptionViolation)

	_, err = obstacles.Solve(g, nil, gridmap.Coord{}, corner(g), obstacles.WithWorklist(relax.Worklist(9)))
	assert.ErrorIs(t, err, relax.ErrOptionViolation)
}

func TestSolve_LogsDisconnect(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	g := openGrid(t, 3, 1)
	_, err := obstacles.Solve(g, []gridmap.Coord{{Col: 1}}, gridmap.Coord{}, corner(g),
		obstacles.WithMode(obstacles.FirstDisconnect), obstacles.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "obstacles: target disconnected")
	assert.Contains(t, buf.String(), "index=0")
}
