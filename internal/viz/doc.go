// Package viz turns a trajectory snapshot into a colored frame.
//
// The pipeline runs once per frame:
//
//   - [Transform]: rotate every slot by Rz(yaw)·Ry(pitch)·Rx(roll) and drop z
//   - [Assemble]: connect consecutive points, skipping the seam at the head
//   - [ColorMapper]: hue from segment length, brightness from age
//   - [Viewport]: map the segments to screen pixels
//
// [Canvas] rasterizes a frame into Braille cells for terminal output.
package viz
