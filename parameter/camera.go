package parameter

// Chase Camera
const (
	// CameraChaseDistance is the trailing distance behind the racer in meters
	CameraChaseDistance = 14.0

	// CameraChaseDistanceBoost is the extra trailing distance added at full
	// boost intensity (speed stretch effect)
	CameraChaseDistanceBoost = 6.0

	// CameraChaseHeight lifts the camera along the frame normal
	CameraChaseHeight = 5.0

	// CameraLateralFraction is the share of racer lateral offset the camera follows
	CameraLateralFraction = 0.6

	// CameraPosDampRate is the frame-rate-independent position smoothing (1/s)
	CameraPosDampRate = 5.0

	// CameraLookAhead is the look-at distance along the tangent in meters
	CameraLookAhead = 30.0
)

// Free Look
const (
	// CameraLookYawMax clamps smoothed free-look yaw in radians
	CameraLookYawMax = 0.9

	// CameraLookPitchMax clamps smoothed free-look pitch in radians
	CameraLookPitchMax = 0.5

	// CameraLookDampRate smooths raw look deltas, decoupled from position damping (1/s)
	CameraLookDampRate = 9.0

	// CameraLookReturnRate recenters the look when no delta arrives (1/s)
	CameraLookReturnRate = 4.0

	// CameraLookSensitivity converts raw look-delta units to radians
	CameraLookSensitivity = 0.012
)

// Field of View
const (
	// CameraFOVBase is the resting vertical field of view in degrees
	CameraFOVBase = 62.0

	// CameraFOVCorridor is the widened field of view while inside a corridor
	CameraFOVCorridor = 74.0

	// CameraFOVLerpRate drives the field of view toward its target (1/s)
	CameraFOVLerpRate = 6.0
)

// Presentation Jitter
const (
	// CameraJitterSpeedScale converts normalized speed to jitter amplitude in meters
	CameraJitterSpeedScale = 0.05

	// CameraJitterBoostScale is the extra amplitude per active boost intensity
	CameraJitterBoostScale = 0.12
)
