// Package imaging is the image I/O layer of the pointillism server.
//
// It loads and caches decoded source images, prepares them for sampling
// (resizing, optional smoothing, region selection) and encodes sampling
// buffers back into PNG for inspection. The sampling itself lives in the
// pointillism package; nothing here knows about rings or points.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. A Region is given by its
// top-left corner and its size.
//
// # Supported Formats
//
// PNG, JPEG and GIF through the standard library, and BMP, TIFF and WebP
// through golang.org/x/image. JPEG EXIF orientation is applied on load.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached images are never
// modified: Prepare always returns a fresh pointillism.Buffer, so a
// destructive sampling run on one request cannot affect another.
//
// # Error Handling
//
// Functions return wrapped errors for unreadable or undecodable files,
// invalid preparation parameters and encoding failures.
package imaging
