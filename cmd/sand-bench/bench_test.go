package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"testing"

	"falling-sand/internal/sims/sand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenes(t *testing.T) {
	all, err := parseScenes("all")
	require.NoError(t, err)
	assert.Len(t, all, len(sand.SceneNames()))

	got, err := parseScenes("ocean, beach")
	require.NoError(t, err)
	assert.Equal(t, []sand.Scene{sand.SceneOcean, sand.SceneBeach}, got)

	_, err = parseScenes("ocean,lava")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sand.ErrUnknownScene))
}

func TestParseSeeds(t *testing.T) {
	got, err := parseSeeds("1, 2,,-7")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, -7}, got)

	_, err = parseSeeds("1,x")
	assert.Error(t, err)
	_, err = parseSeeds(" , ")
	assert.Error(t, err)
}

func TestJobsForAndSort(t *testing.T) {
	jobs := jobsFor([]sand.Scene{sand.SceneBeach, sand.SceneMiddle}, []int64{2, 1})
	require.Len(t, jobs, 4)

	results := make([]scenarioResult, len(jobs))
	for i, j := range jobs {
		results[i] = scenarioResult{job: j}
	}
	sortResults(results)
	assert.Equal(t, job{sand.SceneMiddle, 1}, results[0].job)
	assert.Equal(t, job{sand.SceneMiddle, 2}, results[1].job)
	assert.Equal(t, job{sand.SceneBeach, 1}, results[2].job)
}

func TestRunScenarioDeterministic(t *testing.T) {
	base := sand.DefaultConfig()
	base.Width = 32
	base.Height = 32
	j := job{scene: sand.SceneRandomOcean, seed: 4}

	a := runScenario(base, j, 40)
	b := runScenario(base, j, 40)
	assert.Equal(t, a.frame, b.frame)
	assert.Equal(t, a.census, b.census)
	assert.Equal(t, a.final, a.census[sand.Sand]+a.census[sand.Water])
	assert.GreaterOrEqual(t, a.peak, a.final)
}

func TestRunScenarioWithoutFloorDrains(t *testing.T) {
	base := sand.DefaultConfig()
	base.Width = 16
	base.Height = 16
	base.Floor = false
	res := runScenario(base, job{scene: sand.SceneMiddle, seed: 1}, 40)
	assert.Equal(t, 16, res.initial)
	assert.Zero(t, res.final)
}

func TestCensusSummary(t *testing.T) {
	got := censusSummary(map[sand.Material]int{sand.Empty: 90, sand.Water: 3, sand.Sand: 7, sand.Kelp: 3})
	assert.Equal(t, "sand=7 water=3 kelp=3", got)
	assert.Equal(t, "-", censusSummary(map[sand.Material]int{sand.Empty: 4}))
}

func TestWriteFrame(t *testing.T) {
	base := sand.DefaultConfig()
	base.Width = 8
	base.Height = 6
	res := runScenario(base, job{scene: sand.SceneOcean, seed: 1}, 1)

	path, err := writeFrame(t.TempDir(), res, 8, 6)
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	_, err = writeFrame(t.TempDir(), res, 9, 6)
	assert.Error(t, err)
}

type closeFailer struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (c *closeFailer) Close() error {
	c.closed = true
	return c.closeErr
}

func TestEncodePNGReportsCloseError(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	ok := &closeFailer{}
	require.NoError(t, encodePNG(ok, img))
	assert.True(t, ok.closed)
	assert.NotZero(t, ok.Len())

	diskFull := errors.New("disk full")
	bad := &closeFailer{closeErr: diskFull}
	err := encodePNG(bad, img)
	require.Error(t, err)
	assert.True(t, errors.Is(err, diskFull))
	assert.True(t, bad.closed)
}
