// Package analysis implements the core pipeline: fingerprinting sampled
// frames, detecting and classifying UI transitions, reconstructing the user
// journey, and comparing it against a specification document.
package analysis
