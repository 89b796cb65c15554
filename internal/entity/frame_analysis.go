package entity

// FrameAnalysis is the outcome of analyzing one webcam frame. StressLevel is
// always 0 when FaceDetected is false; the flag is the only way to tell "calm
// face" from "no usable signal".
type FrameAnalysis struct {
	StressLevel  int  `json:"stress_level"`
	FaceDetected bool `json:"face_detected"`
}
