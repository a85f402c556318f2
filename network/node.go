package network

import "fmt"

// NodeKind identifies what a Node represents in the drainage network.
type NodeKind int

const (
	// KindInlet is a node that intercepts surface runoff (grate, curb
	// opening, combination, or slotted).
	KindInlet NodeKind = iota
	// KindJunction is an access hole or manhole: a pipe-to-pipe connection
	// with no surface interception of its own.
	KindJunction
	// KindOutfall is a terminal node with a boundary condition instead of a
	// downstream conduit.
	KindOutfall
)

// String renders the NodeKind the way it appears in error messages.
func (k NodeKind) String() string {
	switch k {
	case KindInlet:
		return "inlet"
	case KindOutfall:
		return "outfall"
	default:
		return "junction"
	}
}

// BarOrientation is the grate bar orientation relative to the direction of
// flow, used by the grate-interception efficiency model.
type BarOrientation int

const (
	BarParallel BarOrientation = iota
	BarTransverse
)

// ThroatType is the curb-opening throat geometry, used by the sag
// orifice-flow capacity model.
type ThroatType int

const (
	ThroatHorizontal ThroatType = iota
	ThroatInclined
	ThroatVertical
)

// InletType is the physical interception device at an inlet node.
type InletType int

const (
	InletGrate InletType = iota
	InletCurbOpening
	InletCombination
	InletSlotted
)

func (t InletType) String() string {
	switch t {
	case InletCurbOpening:
		return "curb_opening"
	case InletCombination:
		return "combination"
	case InletSlotted:
		return "slotted"
	default:
		return "grate"
	}
}

// InletLocation determines which interception model (on-grade or sag
// ponding) applies to an inlet.
type InletLocation int

const (
	LocationOnGrade InletLocation = iota
	LocationSag
)

// BenchingType is the access-hole invert benching shape, selecting the
// benching coefficient C_B (HEC-22 Table 9.5).
type BenchingType int

const (
	BenchingFlat BenchingType = iota
	BenchingDepressed
	BenchingHalf
	BenchingFull
	BenchingImproved
)

// BoundaryCondition is the downstream hydraulic condition imposed at an
// outfall.
type BoundaryCondition int

const (
	// BoundaryFree lets the outfall discharge to atmosphere; the tailwater
	// equals critical or normal depth, whichever governs.
	BoundaryFree BoundaryCondition = iota
	// BoundaryNormalDepth fixes tailwater at the outlet conduit's normal depth.
	BoundaryNormalDepth
	// BoundaryFixedStage fixes tailwater at a caller-supplied elevation.
	BoundaryFixedStage
	// BoundaryTidal takes tailwater from a tidal stage curve: the solver uses
	// the curve's earliest point (by TimeHours) and does not interpolate.
	BoundaryTidal
)

// GrateGeometry describes a grate opening for interception-efficiency and
// splash-over calculations.
type GrateGeometry struct {
	Length float64
	Width  float64
	Bar    BarOrientation
}

// CurbOpeningGeometry describes a curb-opening throat for on-grade
// interception and sag orifice-flow calculations.
type CurbOpeningGeometry struct {
	Length float64
	Height float64
	Throat ThroatType
}

// Coordinates is an optional planform location, carried through for callers
// that render a network but never consumed by the hydraulic computations.
type Coordinates struct {
	X, Y float64
}

// TidalPoint is one sample of a tidal stage curve: time in hours from the
// start of the storm, elevation in the network's unit system.
type TidalPoint struct {
	TimeHours float64
	Elevation float64
}

// InletAttrs holds the interception geometry and surface parameters of an
// inlet node. Construct with NewInletAttrs so Clogging resolves to its
// HEC-22 default (0.15) when not supplied.
type InletAttrs struct {
	Type            InletType
	Location        InletLocation
	Grate           *GrateGeometry
	CurbOpening     *CurbOpeningGeometry
	LocalDepression float64 // feet/metres below the gutter cross slope line
	Clogging        float64 // fraction of opening assumed clogged, [0,1]
}

// InletOption configures an InletAttrs built by NewInletAttrs.
type InletOption func(*InletAttrs)

// WithGrateGeometry attaches grate dimensions, required when Type is
// InletGrate or InletCombination.
func WithGrateGeometry(length, width float64, bar BarOrientation) InletOption {
	return func(a *InletAttrs) { a.Grate = &GrateGeometry{Length: length, Width: width, Bar: bar} }
}

// WithCurbOpeningGeometry attaches curb-opening dimensions, required when
// Type is InletCurbOpening or InletCombination.
func WithCurbOpeningGeometry(length, height float64, throat ThroatType) InletOption {
	return func(a *InletAttrs) {
		a.CurbOpening = &CurbOpeningGeometry{Length: length, Height: height, Throat: throat}
	}
}

// WithLocalDepression sets the gutter local depression at the inlet, in the
// network's unit system (feet internally for US; never inches).
func WithLocalDepression(depression float64) InletOption {
	return func(a *InletAttrs) { a.LocalDepression = depression }
}

// WithClogging overrides the default 0.15 clogging factor. frac must lie in
// [0,1]; a value outside that range indicates a caller programming error and
// panics rather than silently clamping.
func WithClogging(frac float64) InletOption {
	if frac < 0 || frac > 1 {
		panic(fmt.Sprintf("network: clogging factor %v out of [0,1]", frac))
	}
	return func(a *InletAttrs) { a.Clogging = frac }
}

// NewInletAttrs builds InletAttrs for the given device type and location,
// defaulting Clogging to 0.15 (HEC-22 typical) unless overridden.
func NewInletAttrs(t InletType, loc InletLocation, opts ...InletOption) InletAttrs {
	a := InletAttrs{Type: t, Location: loc, Clogging: 0.15}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// JunctionAttrs holds the access-hole geometry consumed by the FHWA
// Access-Hole Method. Construct with NewJunctionAttrs so Benching resolves
// to BenchingFlat when not supplied.
type JunctionAttrs struct {
	Diameter        *float64 // access-hole plan diameter; nil lets the caller's default stand in
	SumpDepth       *float64 // depth of sump below the lowest invert, if any
	LossCoefficient *float64 // caller-supplied loss coefficient; the solver does not read it
	Benching        BenchingType
	DropStructure   bool // true if this junction is a drop manhole
}

// JunctionOption configures a JunctionAttrs built by NewJunctionAttrs.
type JunctionOption func(*JunctionAttrs)

// WithAccessHoleDiameter sets the access hole's plan diameter.
func WithAccessHoleDiameter(diameter float64) JunctionOption {
	return func(a *JunctionAttrs) { a.Diameter = &diameter }
}

// WithSumpDepth sets the depth of a sump below the lowest invert.
func WithSumpDepth(depth float64) JunctionOption {
	return func(a *JunctionAttrs) { a.SumpDepth = &depth }
}

// WithLossCoefficient records a fixed loss coefficient on the junction. The
// solver does not read it: a junction's energy level always comes from the
// FHWA Access-Hole Method.
func WithLossCoefficient(k float64) JunctionOption {
	return func(a *JunctionAttrs) { a.LossCoefficient = &k }
}

// WithBenching sets the invert benching shape (HEC-22 Table 9.5).
func WithBenching(b BenchingType) JunctionOption {
	return func(a *JunctionAttrs) { a.Benching = b }
}

// WithDropStructure marks the junction as a drop manhole.
func WithDropStructure() JunctionOption {
	return func(a *JunctionAttrs) { a.DropStructure = true }
}

// NewJunctionAttrs builds JunctionAttrs, defaulting Benching to BenchingFlat
// unless overridden.
func NewJunctionAttrs(opts ...JunctionOption) JunctionAttrs {
	a := JunctionAttrs{Benching: BenchingFlat}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// OutfallAttrs holds the downstream boundary condition of an outfall node.
type OutfallAttrs struct {
	Boundary          BoundaryCondition
	TailwaterElevation *float64
	TidalCurve        []TidalPoint
}

// OutfallOption configures an OutfallAttrs built by NewOutfallAttrs.
type OutfallOption func(*OutfallAttrs)

// WithTailwaterElevation sets a fixed tailwater elevation, required when
// Boundary is BoundaryFixedStage.
func WithTailwaterElevation(elevation float64) OutfallOption {
	return func(a *OutfallAttrs) { a.TailwaterElevation = &elevation }
}

// WithTidalCurve sets the tidal stage curve, required when Boundary is
// BoundaryTidal. points need not be pre-sorted; NewOutfallAttrs sorts them
// by TimeHours.
func WithTidalCurve(points []TidalPoint) OutfallOption {
	return func(a *OutfallAttrs) { a.TidalCurve = points }
}

// NewOutfallAttrs builds OutfallAttrs for the given boundary condition.
func NewOutfallAttrs(boundary BoundaryCondition, opts ...OutfallOption) OutfallAttrs {
	a := OutfallAttrs{Boundary: boundary}
	for _, opt := range opts {
		opt(&a)
	}
	sortTidalCurve(a.TidalCurve)
	return a
}

func sortTidalCurve(points []TidalPoint) {
	for i := 1; i < len(points); i++ {
		for j := i; j > 0 && points[j].TimeHours < points[j-1].TimeHours; j-- {
			points[j], points[j-1] = points[j-1], points[j]
		}
	}
}

// Node is a point in the drainage network: an inlet, a junction, or an
// outfall. Exactly one of Inlet, Junction, Outfall is populated, matching
// Kind.
type Node struct {
	ID              string
	Kind            NodeKind
	InvertElevation float64
	RimElevation    float64
	Coordinates     *Coordinates

	Inlet    *InletAttrs
	Junction *JunctionAttrs
	Outfall  *OutfallAttrs
}

// NewInlet constructs an inlet Node.
func NewInlet(id string, invertElevation, rimElevation float64, attrs InletAttrs) *Node {
	return &Node{
		ID: id, Kind: KindInlet,
		InvertElevation: invertElevation, RimElevation: rimElevation,
		Inlet: &attrs,
	}
}

// NewJunction constructs a junction Node.
func NewJunction(id string, invertElevation, rimElevation float64, attrs JunctionAttrs) *Node {
	return &Node{
		ID: id, Kind: KindJunction,
		InvertElevation: invertElevation, RimElevation: rimElevation,
		Junction: &attrs,
	}
}

// NewOutfall constructs an outfall Node.
func NewOutfall(id string, invertElevation float64, attrs OutfallAttrs) *Node {
	return &Node{
		ID: id, Kind: KindOutfall,
		InvertElevation: invertElevation,
		Outfall:         &attrs,
	}
}

// WithCoordinates attaches a planform location to a Node already built by
// NewInlet/NewJunction/NewOutfall, returning the same pointer for chaining.
func (n *Node) WithCoordinates(x, y float64) *Node {
	n.Coordinates = &Coordinates{X: x, Y: y}
	return n
}

// checkAttrs reports ErrKindMismatch if n's populated attrs pointer disagrees
// with n.Kind.
func (n *Node) checkAttrs() error {
	switch n.Kind {
	case KindInlet:
		if n.Inlet == nil || n.Junction != nil || n.Outfall != nil {
			return fmt.Errorf("%w: node %q", ErrKindMismatch, n.ID)
		}
	case KindJunction:
		if n.Junction == nil || n.Inlet != nil || n.Outfall != nil {
			return fmt.Errorf("%w: node %q", ErrKindMismatch, n.ID)
		}
	case KindOutfall:
		if n.Outfall == nil || n.Inlet != nil || n.Junction != nil {
			return fmt.Errorf("%w: node %q", ErrKindMismatch, n.ID)
		}
		if n.Outfall.Boundary == BoundaryFixedStage && n.Outfall.TailwaterElevation == nil {
			return fmt.Errorf("%w: outfall %q", ErrMissingTailwater, n.ID)
		}
		if n.Outfall.Boundary == BoundaryTidal && len(n.Outfall.TidalCurve) == 0 {
			return fmt.Errorf("%w: outfall %q has no tidal curve", ErrMissingTailwater, n.ID)
		}
	}
	return nil
}
