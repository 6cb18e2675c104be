// Package pointillism converts a pixel buffer into a sparse, ordered list of
// colored circular points that approximate the image at several scales.
//
// The central operation is the adaptive run: starting from the largest radius,
// every pixel whose boundary ring at that radius matches its own color is
// emitted as a point, and the disk it covers is consumed (made transparent) so
// later, smaller passes skip it. The radius then shrinks by a fixed step until
// the minimum is reached.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner, X increasing
// rightward and Y increasing downward, matching the imaging package.
//
// # Ordering
//
// Points come out in raster order (increasing Y, then X) within a radius, and
// radii are visited from largest to smallest. Consumers may rely on this to
// draw coarse points before fine ones.
//
// # Consumption
//
// Sampling with consumption enabled, and every adaptive run, mutates the
// Buffer in place by zeroing alpha. Nothing is restored afterwards. Callers
// that need the original pixels must Clone the buffer first.
//
// # Thread Safety
//
// A Buffer is not safe for concurrent use. The sampling functions are
// stateless, so separate buffers may be processed concurrently.
//
// # Error Handling
//
// The algorithmic functions never return errors. Out-of-range coordinates,
// empty buffers and invalid radii all degrade to fewer (or zero) points.
package pointillism
