//go:build ignore

// Pregenerated bindings for libturbojpeg (TurboJPEG API 2.x). Copied into
// the build output directory by tjbuild when the 'pregenerated' binding
// method is selected. Regenerate with TURBOJPEG_BINDING=bindgen.
package turbojpeg

/*
#include <stdlib.h>
#include <turbojpeg.h>
*/
import "C"

import "unsafe"

// Handle is an opaque TurboJPEG compressor/decompressor instance
type Handle = C.tjhandle

// Pixel formats
const (
	PF_RGB     = C.TJPF_RGB
	PF_BGR     = C.TJPF_BGR
	PF_RGBX    = C.TJPF_RGBX
	PF_BGRX    = C.TJPF_BGRX
	PF_XBGR    = C.TJPF_XBGR
	PF_XRGB    = C.TJPF_XRGB
	PF_GRAY    = C.TJPF_GRAY
	PF_RGBA    = C.TJPF_RGBA
	PF_BGRA    = C.TJPF_BGRA
	PF_ABGR    = C.TJPF_ABGR
	PF_ARGB    = C.TJPF_ARGB
	PF_CMYK    = C.TJPF_CMYK
	PF_UNKNOWN = C.TJPF_UNKNOWN
)

// Chrominance subsampling options
const (
	SAMP_444  = C.TJSAMP_444
	SAMP_422  = C.TJSAMP_422
	SAMP_420  = C.TJSAMP_420
	SAMP_GRAY = C.TJSAMP_GRAY
	SAMP_440  = C.TJSAMP_440
	SAMP_411  = C.TJSAMP_411
)

// Flags
const (
	FLAG_BOTTOMUP      = C.TJFLAG_BOTTOMUP
	FLAG_FASTUPSAMPLE  = C.TJFLAG_FASTUPSAMPLE
	FLAG_NOREALLOC     = C.TJFLAG_NOREALLOC
	FLAG_FASTDCT       = C.TJFLAG_FASTDCT
	FLAG_ACCURATEDCT   = C.TJFLAG_ACCURATEDCT
	FLAG_STOPONWARNING = C.TJFLAG_STOPONWARNING
	FLAG_PROGRESSIVE   = C.TJFLAG_PROGRESSIVE
)

// InitCompress creates a TurboJPEG compressor instance
func InitCompress() Handle {
	return C.tjInitCompress()
}

// InitDecompress creates a TurboJPEG decompressor instance
func InitDecompress() Handle {
	return C.tjInitDecompress()
}

// Destroy destroys a TurboJPEG instance
func Destroy(handle Handle) int {
	return int(C.tjDestroy(handle))
}

// Alloc allocates an image buffer for use with TurboJPEG
func Alloc(bytes int) unsafe.Pointer {
	return unsafe.Pointer(C.tjAlloc(C.int(bytes)))
}

// Free frees an image buffer previously allocated by TurboJPEG
func Free(buf unsafe.Pointer) {
	C.tjFree((*C.uchar)(buf))
}

// BufSize returns the maximum size of the buffer required to hold a JPEG
// image with the given parameters
func BufSize(width, height, jpegSubsamp int) int {
	return int(C.tjBufSize(C.int(width), C.int(height), C.int(jpegSubsamp)))
}

// Compress2 compresses an uncompressed image into a JPEG image
func Compress2(handle Handle, srcBuf unsafe.Pointer, width, pitch, height, pixelFormat int,
	jpegBuf *unsafe.Pointer, jpegSize *uint, jpegSubsamp, jpegQual, flags int) int {
	return int(C.tjCompress2(handle,
		(*C.uchar)(srcBuf), C.int(width), C.int(pitch), C.int(height), C.int(pixelFormat),
		(**C.uchar)(unsafe.Pointer(jpegBuf)), (*C.ulong)(unsafe.Pointer(jpegSize)),
		C.int(jpegSubsamp), C.int(jpegQual), C.int(flags)))
}

// DecompressHeader3 retrieves information about a JPEG image without
// decompressing it
func DecompressHeader3(handle Handle, jpegBuf unsafe.Pointer, jpegSize uint,
	width, height, jpegSubsamp, jpegColorspace *int) int {
	var w, h, subsamp, colorspace C.int
	rc := int(C.tjDecompressHeader3(handle,
		(*C.uchar)(jpegBuf), C.ulong(jpegSize), &w, &h, &subsamp, &colorspace))
	*width, *height, *jpegSubsamp, *jpegColorspace = int(w), int(h), int(subsamp), int(colorspace)
	return rc
}

// Decompress2 decompresses a JPEG image into an uncompressed image
func Decompress2(handle Handle, jpegBuf unsafe.Pointer, jpegSize uint,
	dstBuf unsafe.Pointer, width, pitch, height, pixelFormat, flags int) int {
	return int(C.tjDecompress2(handle,
		(*C.uchar)(jpegBuf), C.ulong(jpegSize),
		(*C.uchar)(dstBuf), C.int(width), C.int(pitch), C.int(height),
		C.int(pixelFormat), C.int(flags)))
}

// GetErrorStr2 returns a descriptive error message for the last error that
// occurred on the instance
func GetErrorStr2(handle Handle) string {
	return C.GoString(C.tjGetErrorStr2(handle))
}
