package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoneHouseFullBuild(t *testing.T) {
	b := NewStoneHouseBuilder()
	d := NewDirector()
	d.SetBuilder(b)

	require.NoError(t, d.Construct())
	house := b.Product()

	assert.Equal(t, []string{
		"a reinforced concrete foundation",
		"granite walls",
		"a slate roof",
		"leaded windows",
	}, house.Parts())
}

func TestWoodHouseFullBuild(t *testing.T) {
	b := NewWoodHouseBuilder()
	d := NewDirector()
	d.SetBuilder(b)

	require.NoError(t, d.Construct())
	house := b.Product()

	parts := house.Parts()
	require.Len(t, parts, 4)
	assert.Equal(t, "log walls", parts[1])
}

func TestConstructMinimal(t *testing.T) {
	b := NewStoneHouseBuilder()
	d := NewDirector()
	d.SetBuilder(b)

	require.NoError(t, d.ConstructMinimal())
	house := b.Product()

	assert.Len(t, house.Parts(), 3)
	assert.NotContains(t, house.Parts(), "leaded windows")
}

func TestDirectorWithoutBuilder(t *testing.T) {
	d := NewDirector()

	assert.ErrorIs(t, d.Construct(), ErrNoBuilder)
	assert.ErrorIs(t, d.ConstructMinimal(), ErrNoBuilder)
}

func TestProductResetsBuilder(t *testing.T) {
	b := NewStoneHouseBuilder()
	b.BuildFoundation().BuildWalls()

	first := b.Product()
	assert.Len(t, first.Parts(), 2)

	// Handoff reset the builder: the next product starts empty.
	second := b.Product()
	assert.Empty(t, second.Parts())
	assert.NotSame(t, first, second)
}

func TestFluentChainWithoutDirector(t *testing.T) {
	house := NewWoodHouseBuilder().
		BuildFoundation().
		BuildRoof().
		Product()

	assert.Equal(t, []string{
		"timber pile foundations",
		"a cedar shingle roof",
	}, house.Parts())
}

func TestSwappingBuilders(t *testing.T) {
	d := NewDirector()

	stone := NewStoneHouseBuilder()
	d.SetBuilder(stone)
	require.NoError(t, d.Construct())

	wood := NewWoodHouseBuilder()
	d.SetBuilder(wood)
	require.NoError(t, d.Construct())

	assert.Contains(t, stone.Product().Summary(), "granite walls")
	assert.Contains(t, wood.Product().Summary(), "log walls")
}

func TestPartsReturnsCopy(t *testing.T) {
	b := NewStoneHouseBuilder()
	b.BuildWalls()
	house := b.Product()

	parts := house.Parts()
	parts[0] = "mutated"

	assert.Equal(t, []string{"granite walls"}, house.Parts())
}

func TestEmptyHouseSummary(t *testing.T) {
	var h House
	assert.Equal(t, "an empty lot", h.Summary())
}
