package abstractfactory

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/creational/pkg/creational/registry"
)

// ErrUnknownStyle indicates a style with no registered factory.
var ErrUnknownStyle = errors.New("abstractfactory: unknown style")

// FurnitureFactory creates one coherent family of products. Every
// product from a single factory shares the factory's style.
type FurnitureFactory interface {
	CreateChair() Chair
	CreateSofa() Sofa
	CreateTable() Table
}

// ModernFactory creates the modern family.
type ModernFactory struct{}

func (ModernFactory) CreateChair() Chair { return ModernChair{} }
func (ModernFactory) CreateSofa() Sofa   { return ModernSofa{} }
func (ModernFactory) CreateTable() Table { return ModernTable{} }

// VictorianFactory creates the victorian family.
type VictorianFactory struct{}

func (VictorianFactory) CreateChair() Chair { return VictorianChair{} }
func (VictorianFactory) CreateSofa() Sofa   { return VictorianSofa{} }
func (VictorianFactory) CreateTable() Table { return VictorianTable{} }

// ArtDecoFactory creates the art deco family.
type ArtDecoFactory struct{}

func (ArtDecoFactory) CreateChair() Chair { return ArtDecoChair{} }
func (ArtDecoFactory) CreateSofa() Sofa   { return ArtDecoSofa{} }
func (ArtDecoFactory) CreateTable() Table { return ArtDecoTable{} }

// factories maps styles to their family factory.
var factories = registry.New[Style, FurnitureFactory]()

func init() {
	factories.Register(StyleModern, ModernFactory{})
	factories.Register(StyleVictorian, VictorianFactory{})
	factories.Register(StyleArtDeco, ArtDecoFactory{})
}

// RegisterStyle adds a factory for a style, replacing any existing one.
func RegisterStyle(style Style, f FurnitureFactory) {
	factories.Register(style, f)
}

// ForStyle returns the factory for a style.
func ForStyle(style Style) (FurnitureFactory, error) {
	f, ok := factories.Get(style)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return f, nil
}

// Styles returns the registered styles in sorted order.
func Styles() []Style {
	return factories.Keys()
}

// FurnishRoom creates a full family from one factory and reports the
// resulting room. It is the client code of the pattern: it never names a
// concrete product type.
func FurnishRoom(f FurnitureFactory) []string {
	chair := f.CreateChair()
	sofa := f.CreateSofa()
	table := f.CreateTable()

	return []string{
		chair.SitOn(),
		sofa.LieOn(),
		table.PlaceOn(),
		sofa.PutBeside(chair),
	}
}
