package generator

// Method names used as error prefixes.
const (
	// MethodNamePool is the canonical name for the NamePool sampler.
	MethodNamePool = "NamePool"
	// MethodSampleEdges is the canonical name for the SampleEdges sampler.
	MethodSampleEdges = "SampleEdges"
	// MethodBuild is the canonical name for the Build composition.
	MethodBuild = "Build"
	// MethodVerify is the canonical name for the Verify check.
	MethodVerify = "Verify"
)

// NameSeparator joins a first-name token and a last-name token.
const NameSeparator = " "

// MinEdgeNames is the smallest pool that admits at least one edge.
const MinEdgeNames = 2

// Reference defaults for the configuration surface.
const (
	// DefaultPoolSize is the reference number of unique names.
	DefaultPoolSize = 100
	// DefaultEdgeCount is the reference number of unique friendships.
	DefaultEdgeCount = 300
)
