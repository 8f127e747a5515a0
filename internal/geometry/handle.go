// Package geometry provides the point, path and handle types shared by every drawing tool.
package geometry

// HandleRole describes what dragging a handle does.
type HandleRole string

const (
	HandleMove   HandleRole = "move"
	HandleScale  HandleRole = "scale"
	HandleRotate HandleRole = "rotate"
	HandleAdjust HandleRole = "adjustment"
)

// Handle is a point an interactive editor may drag. Anchors names the tool
// anchors the handle controls.
type Handle struct {
	Point   Point      `json:"point"`
	Role    HandleRole `json:"role"`
	Anchors []string   `json:"anchors,omitempty"`
}

// NewHandle creates a handle at p controlling the named anchors.
func NewHandle(p Point, role HandleRole, anchors ...string) Handle {
	return Handle{Point: p, Role: role, Anchors: anchors}
}

// HandlePoints returns only the coordinates of handles.
func HandlePoints(handles []Handle) []Point {
	out := make([]Point, len(handles))
	for i, h := range handles {
		out[i] = h.Point
	}
	return out
}

// AdjustHandles tags every point as an adjustment handle for the anchor of
// the same index in names. Extra points get no anchor name.
func AdjustHandles(points []Point, names []string) []Handle {
	out := make([]Handle, len(points))
	for i, p := range points {
		h := Handle{Point: p, Role: HandleAdjust}
		if i < len(names) {
			h.Anchors = []string{names[i]}
		}
		out[i] = h
	}
	return out
}
