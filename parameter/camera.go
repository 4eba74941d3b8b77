package parameter

// Camera projection of world units onto terminal cells
const (
	// CellAspect is the height/width ratio of a terminal cell
	// One row covers CellAspect times the world distance of one column
	CellAspect = 2.0

	// CameraFitMargin is the fraction of the half-viewport the system radius fills on fit
	CameraFitMargin = 0.95

	// CameraZoomStep multiplies or divides scale per zoom key press
	CameraZoomStep = 1.25

	// CameraMinScale and CameraMaxScale bound world units per column
	CameraMinScale = 0.05
	CameraMaxScale = 200.0
)

// Orbit outline sampling
const (
	OrbitOutlineSegments = 128
)
