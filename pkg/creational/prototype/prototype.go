package prototype

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Cloner is the prototype interface. Clone returns a deep copy with a
// fresh id; the original's id is retained as the clone's parent so
// lineage stays traceable.
type Cloner interface {
	// ID returns this object's unique id.
	ID() string

	// ParentID returns the id of the prototype this was cloned from,
	// or "" for an original.
	ParentID() string

	// Kind returns the registered kind name used for snapshots.
	Kind() string

	// Clone returns a deep copy with a fresh id.
	Clone() Cloner
}

// Circle is a prototype with a radius.
type Circle struct {
	id       string
	parentID string

	Radius float64
}

// NewCircle creates an original circle with a fresh id.
func NewCircle(radius float64) *Circle {
	return &Circle{id: uuid.NewString(), Radius: radius}
}

func (c *Circle) ID() string       { return c.id }
func (c *Circle) ParentID() string { return c.parentID }
func (c *Circle) Kind() string     { return "circle" }

// Clone implements Cloner.
func (c *Circle) Clone() Cloner {
	return &Circle{
		id:       uuid.NewString(),
		parentID: c.id,
		Radius:   c.Radius,
	}
}

type circleState struct {
	ID       string  `json:"id"`
	ParentID string  `json:"parent_id,omitempty"`
	Radius   float64 `json:"radius"`
}

// MarshalJSON includes the unexported identity fields in snapshots.
func (c *Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(circleState{ID: c.id, ParentID: c.parentID, Radius: c.Radius})
}

// UnmarshalJSON restores a circle from a snapshot.
func (c *Circle) UnmarshalJSON(data []byte) error {
	var s circleState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	c.id, c.parentID, c.Radius = s.ID, s.ParentID, s.Radius
	return nil
}

// Rectangle is a prototype with width and height.
type Rectangle struct {
	id       string
	parentID string

	Width  float64
	Height float64
}

// NewRectangle creates an original rectangle with a fresh id.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{id: uuid.NewString(), Width: width, Height: height}
}

func (r *Rectangle) ID() string       { return r.id }
func (r *Rectangle) ParentID() string { return r.parentID }
func (r *Rectangle) Kind() string     { return "rectangle" }

// Clone implements Cloner.
func (r *Rectangle) Clone() Cloner {
	return &Rectangle{
		id:       uuid.NewString(),
		parentID: r.id,
		Width:    r.Width,
		Height:   r.Height,
	}
}

type rectangleState struct {
	ID       string  `json:"id"`
	ParentID string  `json:"parent_id,omitempty"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// MarshalJSON includes the unexported identity fields in snapshots.
func (r *Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectangleState{ID: r.id, ParentID: r.parentID, Width: r.Width, Height: r.Height})
}

// UnmarshalJSON restores a rectangle from a snapshot.
func (r *Rectangle) UnmarshalJSON(data []byte) error {
	var s rectangleState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	r.id, r.parentID, r.Width, r.Height = s.ID, s.ParentID, s.Width, s.Height
	return nil
}

// Label is a prototype with text and tags. Clone copies the tags slice,
// so mutating a clone's tags never leaks into the original.
type Label struct {
	id       string
	parentID string

	Text string
	Tags []string
}

// NewLabel creates an original label with a fresh id.
func NewLabel(text string, tags ...string) *Label {
	return &Label{id: uuid.NewString(), Text: text, Tags: tags}
}

func (l *Label) ID() string       { return l.id }
func (l *Label) ParentID() string { return l.parentID }
func (l *Label) Kind() string     { return "label" }

// Clone implements Cloner.
func (l *Label) Clone() Cloner {
	tags := make([]string, len(l.Tags))
	copy(tags, l.Tags)
	return &Label{
		id:       uuid.NewString(),
		parentID: l.id,
		Text:     l.Text,
		Tags:     tags,
	}
}

type labelState struct {
	ID       string   `json:"id"`
	ParentID string   `json:"parent_id,omitempty"`
	Text     string   `json:"text"`
	Tags     []string `json:"tags,omitempty"`
}

// MarshalJSON includes the unexported identity fields in snapshots.
func (l *Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(labelState{ID: l.id, ParentID: l.parentID, Text: l.Text, Tags: l.Tags})
}

// UnmarshalJSON restores a label from a snapshot.
func (l *Label) UnmarshalJSON(data []byte) error {
	var s labelState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	l.id, l.parentID, l.Text, l.Tags = s.ID, s.ParentID, s.Text, s.Tags
	return nil
}
