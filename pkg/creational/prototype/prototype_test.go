package prototype

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleClone(t *testing.T) {
	original := NewCircle(1.05)
	clone := original.Clone().(*Circle)

	assert.Equal(t, original.Radius, clone.Radius)
	assert.NotEqual(t, original.ID(), clone.ID())
	assert.Equal(t, original.ID(), clone.ParentID())
	assert.Empty(t, original.ParentID())

	_, err := uuid.Parse(clone.ID())
	assert.NoError(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	original := NewRectangle(2, 3)
	clone := original.Clone().(*Rectangle)

	clone.Width = 10

	assert.Equal(t, 2.0, original.Width)
}

func TestLabelDeepCopiesTags(t *testing.T) {
	original := NewLabel("hello", "greeting", "en")
	clone := original.Clone().(*Label)

	clone.Tags[0] = "mutated"

	assert.Equal(t, []string{"greeting", "en"}, original.Tags)
}

func TestCloneLineage(t *testing.T) {
	gen0 := NewCircle(1)
	gen1 := gen0.Clone()
	gen2 := gen1.Clone()

	assert.Equal(t, gen0.ID(), gen1.ParentID())
	assert.Equal(t, gen1.ID(), gen2.ParentID())
	assert.NotEqual(t, gen0.ID(), gen2.ParentID())
}

func TestCatalogCloneNeverReturnsMaster(t *testing.T) {
	catalog := NewCatalog()
	master := NewCircle(1)
	catalog.Put("unit-circle", master)

	a, err := catalog.Clone("unit-circle")
	require.NoError(t, err)
	b, err := catalog.Clone("unit-circle")
	require.NoError(t, err)

	assert.NotSame(t, Cloner(master), a)
	assert.NotSame(t, a, b)
	// Clones descend from the same master
	assert.Equal(t, master.ID(), a.ParentID())
	assert.Equal(t, master.ID(), b.ParentID())
}

func TestCatalogUnknownName(t *testing.T) {
	catalog := NewCatalog()
	_, err := catalog.Clone("nope")
	assert.ErrorContains(t, err, `unknown prototype "nope"`)
}

func TestCatalogNamesSorted(t *testing.T) {
	catalog := NewCatalog()
	catalog.Put("square", NewRectangle(1, 1))
	catalog.Put("circle", NewCircle(1))

	assert.Equal(t, []string{"circle", "square"}, catalog.Names())
	assert.Equal(t, 2, catalog.Len())
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	catalog := NewCatalog()
	catalog.Put("unit-circle", NewCircle(1))
	catalog.Put("banner", NewLabel("welcome", "ui"))

	require.NoError(t, catalog.SaveTo(store))

	restored := NewCatalog()
	require.NoError(t, restored.LoadFrom(store))

	assert.Equal(t, []string{"banner", "unit-circle"}, restored.Names())

	shape, err := restored.Clone("unit-circle")
	require.NoError(t, err)
	circle, ok := shape.(*Circle)
	require.True(t, ok)
	assert.Equal(t, 1.0, circle.Radius)

	text, err := restored.Clone("banner")
	require.NoError(t, err)
	label, ok := text.(*Label)
	require.True(t, ok)
	assert.Equal(t, "welcome", label.Text)
	assert.Equal(t, []string{"ui"}, label.Tags)
}

func TestLoadFromUnknownKind(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	require.NoError(t, store.Save("weird", "hexagon", []byte(`{}`)))

	err := NewCatalog().LoadFrom(store)
	assert.ErrorContains(t, err, `no decoder registered for kind "hexagon"`)
}

type stamp struct {
	id       string
	parentID string
	Ink      string `json:"ink"`
}

func (s *stamp) ID() string       { return s.id }
func (s *stamp) ParentID() string { return s.parentID }
func (s *stamp) Kind() string     { return "stamp" }
func (s *stamp) Clone() Cloner {
	return &stamp{id: uuid.NewString(), parentID: s.id, Ink: s.Ink}
}

func TestRegisterKindCustomPrototype(t *testing.T) {
	t.Cleanup(func() { decoders.Unregister("stamp") })
	RegisterKind("stamp", func(data []byte) (Cloner, error) {
		s := &stamp{}
		return s, json.Unmarshal(data, s)
	})

	store := NewMemoryStore()
	defer store.Close()

	catalog := NewCatalog()
	catalog.Put("approved", &stamp{id: uuid.NewString(), Ink: "red"})
	require.NoError(t, catalog.SaveTo(store))

	restored := NewCatalog()
	require.NoError(t, restored.LoadFrom(store))

	c, err := restored.Clone("approved")
	require.NoError(t, err)
	assert.Equal(t, "red", c.(*stamp).Ink)
}
