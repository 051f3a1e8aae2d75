// Package frames turns a video file into an ordered stream of sampled raster
// frames.
//
// Decoding is delegated entirely to ffmpeg: the container is probed with
// ffprobe for frame rate and frame count, then a single ffmpeg process emits
// every interval-th frame as fixed-resolution rawvideo over a pipe. Frame
// ordinals refer to the undecimated stream so timestamps stay accurate at any
// sampling rate.
package frames
