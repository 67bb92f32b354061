package abstractfactory

// Style identifies a furniture family. Every product a factory creates
// carries the factory's style, which is what keeps families coherent.
type Style string

// Built-in furniture styles.
const (
	StyleModern    Style = "modern"
	StyleVictorian Style = "victorian"
	StyleArtDeco   Style = "artdeco"
)

// Chair is a product interface. All variants implement it.
type Chair interface {
	Style() Style
	SitOn() string
}

// Sofa is a product interface. PutBeside shows collaboration between
// products; the abstract factory guarantees both come from the same
// family and are therefore compatible.
type Sofa interface {
	Style() Style
	LieOn() string
	PutBeside(c Chair) string
}

// Table is a product interface.
type Table interface {
	Style() Style
	PlaceOn() string
}

// ModernChair is the modern Chair variant.
type ModernChair struct{}

func (ModernChair) Style() Style  { return StyleModern }
func (ModernChair) SitOn() string { return "you sit on the minimalist modern chair" }

// VictorianChair is the victorian Chair variant.
type VictorianChair struct{}

func (VictorianChair) Style() Style  { return StyleVictorian }
func (VictorianChair) SitOn() string { return "you sit on the tufted victorian chair" }

// ArtDecoChair is the art deco Chair variant.
type ArtDecoChair struct{}

func (ArtDecoChair) Style() Style  { return StyleArtDeco }
func (ArtDecoChair) SitOn() string { return "you sit on the geometric art deco chair" }

// ModernSofa is the modern Sofa variant.
type ModernSofa struct{}

func (ModernSofa) Style() Style  { return StyleModern }
func (ModernSofa) LieOn() string { return "you lie on the low modern sofa" }

// PutBeside implements Sofa.
func (s ModernSofa) PutBeside(c Chair) string {
	return s.LieOn() + ", and " + c.SitOn()
}

// VictorianSofa is the victorian Sofa variant.
type VictorianSofa struct{}

func (VictorianSofa) Style() Style  { return StyleVictorian }
func (VictorianSofa) LieOn() string { return "you lie on the carved victorian sofa" }

// PutBeside implements Sofa.
func (s VictorianSofa) PutBeside(c Chair) string {
	return s.LieOn() + ", and " + c.SitOn()
}

// ArtDecoSofa is the art deco Sofa variant.
type ArtDecoSofa struct{}

func (ArtDecoSofa) Style() Style  { return StyleArtDeco }
func (ArtDecoSofa) LieOn() string { return "you lie on the lacquered art deco sofa" }

// PutBeside implements Sofa.
func (s ArtDecoSofa) PutBeside(c Chair) string {
	return s.LieOn() + ", and " + c.SitOn()
}

// ModernTable is the modern Table variant.
type ModernTable struct{}

func (ModernTable) Style() Style    { return StyleModern }
func (ModernTable) PlaceOn() string { return "you place your coffee on the glass modern table" }

// VictorianTable is the victorian Table variant.
type VictorianTable struct{}

func (VictorianTable) Style() Style    { return StyleVictorian }
func (VictorianTable) PlaceOn() string { return "you place your tea on the mahogany victorian table" }

// ArtDecoTable is the art deco Table variant.
type ArtDecoTable struct{}

func (ArtDecoTable) Style() Style    { return StyleArtDeco }
func (ArtDecoTable) PlaceOn() string { return "you place your drink on the chrome art deco table" }
