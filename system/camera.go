package system

import (
	"math/rand"

	"github.com/lixenwraith/slipstream/component"
	"github.com/lixenwraith/slipstream/config"
	"github.com/lixenwraith/slipstream/input"
	"github.com/lixenwraith/slipstream/parameter"
	"github.com/lixenwraith/slipstream/track"
	"github.com/lixenwraith/slipstream/vmath"
)

// Pose is the derived camera output consumed by the renderer
type Pose struct {
	Position vmath.Vec3F
	LookAt   vmath.Vec3F
	Up       vmath.Vec3F
	FOV      float64 // Vertical field of view in degrees
}

// CameraSystem derives a trailing chase pose from the post-tick banked frame.
// Read-only observer: it never feeds anything back into RacerState.
//
// Smoothing is deliberately split three ways: position damping, free-look
// damping, and field-of-view lerp each run at their own rate so free-look
// never destabilizes chase framing. The speed/boost jitter is applied to the
// output pose strictly after all smoothing
type CameraSystem struct {
	tune config.Tuning

	pos         vmath.Vec3F
	initialized bool

	yaw       float64 // Smoothed free-look about the frame normal
	pitch     float64 // Smoothed free-look about the frame binormal
	yawRaw    float64 // Accumulated raw look target, recentering
	pitchRaw  float64
	fov       float64
	jitterRng *rand.Rand

	pose Pose
}

// NewCameraSystem creates the chase camera at the base field of view
func NewCameraSystem(tune config.Tuning) *CameraSystem {
	return &CameraSystem{
		tune:      tune,
		fov:       parameter.CameraFOVBase,
		jitterRng: rand.New(rand.NewSource(1)),
	}
}

// Pose returns the most recently derived camera pose
func (c *CameraSystem) Pose() Pose {
	return c.pose
}

// Reset snaps the camera to uninitialized so the next update teleports
// instead of sweeping across the track
func (c *CameraSystem) Reset() {
	c.initialized = false
	c.yaw, c.pitch, c.yawRaw, c.pitchRaw = 0, 0, 0, 0
	c.fov = parameter.CameraFOVBase
}

// Update derives the pose from the post-tick frame and state. The look
// deltas come from the same latched intent the integrator consumed
func (c *CameraSystem) Update(f track.Frame, st component.RacerState, in input.Intent, dt float64) {
	boost := c.boostIntensity(st)

	// Target: behind the racer along the tangent, lifted along the normal,
	// tracking a fraction of the lateral offset; chase distance stretches
	// with boost intensity
	chase := parameter.CameraChaseDistance + parameter.CameraChaseDistanceBoost*boost
	target := f.Position
	target = vmath.V3FAdd(target, vmath.V3FScale(f.Binormal, parameter.CameraLateralFraction*st.Lateral))
	target = vmath.V3FAdd(target, vmath.V3FScale(f.Normal, parameter.CameraChaseHeight))
	target = vmath.V3FAdd(target, vmath.V3FScale(f.Tangent, -chase))

	if !c.initialized {
		c.pos = target
		c.initialized = true
	} else {
		c.pos = vmath.V3FApproach(c.pos, target, parameter.CameraPosDampRate, dt)
	}

	// Free-look: raw targets integrate the deltas and recenter on silence;
	// the smoothed angles chase them at their own rate. Both stay clamped
	c.yawRaw = vmath.Clamp(c.yawRaw+in.LookDX*parameter.CameraLookSensitivity,
		-parameter.CameraLookYawMax, parameter.CameraLookYawMax)
	c.pitchRaw = vmath.Clamp(c.pitchRaw-in.LookDY*parameter.CameraLookSensitivity,
		-parameter.CameraLookPitchMax, parameter.CameraLookPitchMax)
	c.yawRaw = vmath.Approach(c.yawRaw, 0, parameter.CameraLookReturnRate, dt)
	c.pitchRaw = vmath.Approach(c.pitchRaw, 0, parameter.CameraLookReturnRate, dt)

	c.yaw = vmath.Approach(c.yaw, c.yawRaw, parameter.CameraLookDampRate, dt)
	c.pitch = vmath.Approach(c.pitch, c.pitchRaw, parameter.CameraLookDampRate, dt)

	// Look-at: a point ahead along the tangent, rotated by the smoothed
	// free-look about the frame axes
	ahead := vmath.V3FScale(f.Tangent, parameter.CameraLookAhead)
	if c.yaw != 0 {
		ahead = vmath.V3FRotateAxis(ahead, f.Normal, c.yaw)
	}
	if c.pitch != 0 {
		ahead = vmath.V3FRotateAxis(ahead, f.Binormal, c.pitch)
	}
	lookAt := vmath.V3FAdd(f.Position, ahead)

	// Field of view widens inside corridors
	fovTarget := parameter.CameraFOVBase
	if st.InCorridor {
		fovTarget = parameter.CameraFOVCorridor
	}
	c.fov = vmath.Approach(c.fov, fovTarget, parameter.CameraFOVLerpRate, dt)

	// Presentation jitter, strictly after all smoothing; the internal
	// position is untouched so there is no feedback
	speedNorm := 0.0
	if c.tune.MaxSpeed > 0 {
		speedNorm = vmath.Clamp(st.Speed/c.tune.MaxSpeed, 0, 1)
	}
	amp := parameter.CameraJitterSpeedScale*speedNorm + parameter.CameraJitterBoostScale*boost
	jittered := c.pos
	if amp > 0 {
		jittered = vmath.V3FAdd(jittered, vmath.V3FScale(f.Normal, (c.jitterRng.Float64()*2-1)*amp))
		jittered = vmath.V3FAdd(jittered, vmath.V3FScale(f.Binormal, (c.jitterRng.Float64()*2-1)*amp))
	}

	c.pose = Pose{
		Position: jittered,
		LookAt:   lookAt,
		Up:       f.Normal,
		FOV:      c.fov,
	}
}

// boostIntensity folds the active multiplier sources into a [0,1] scalar for
// presentation effects (chase stretch, jitter)
func (c *CameraSystem) boostIntensity(st component.RacerState) float64 {
	v := 0.0
	if st.ManualActive {
		v += 0.5
	}
	v += 0.25 * float64(len(st.ActiveBoosters))
	return vmath.Clamp(v, 0, 1)
}
