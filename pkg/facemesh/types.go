package facemesh

// Landmark is a single face-mesh point in normalized image space.
// X and Y are roughly [0,1]; Z is relative depth with the head center as origin.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DetectionResult is the sidecar's reply for one analyzed frame.
// Landmarks is empty when no face was found.
type DetectionResult struct {
	FaceDetected bool       `json:"face_detected"`
	Landmarks    []Landmark `json:"landmarks"`
}
