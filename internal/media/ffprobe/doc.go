// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no journeylens-specific dependencies and could be
// extracted as a standalone library.
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result
//
// Helper methods on Result expose the fields the frame sampler needs: frame
// rate (including rational "30000/1001" rates), total frame count with a
// duration-derived fallback, and container duration.
package ffprobe
