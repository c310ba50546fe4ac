package detector

// Detect exposes the detection rule for tests.
var Detect = detect
