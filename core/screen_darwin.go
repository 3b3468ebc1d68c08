//go:build darwin

package core

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

// largest active display by area, main display as fallback
void largestDisplay(int* width, int* height) {
	*width = 0;
	*height = 0;

	uint32_t count;
	CGDirectDisplayID displays[16];
	if (CGGetActiveDisplayList(16, displays, &count) == kCGErrorSuccess) {
		for (uint32_t i = 0; i < count; i++) {
			int w = (int)CGDisplayPixelsWide(displays[i]);
			int h = (int)CGDisplayPixelsHigh(displays[i]);
			if (w * h > (*width) * (*height)) {
				*width = w;
				*height = h;
			}
		}
	}
	if (*width == 0 || *height == 0) {
		*width = (int)CGDisplayPixelsWide(CGMainDisplayID());
		*height = (int)CGDisplayPixelsHigh(CGMainDisplayID());
	}
}
*/
import "C"

// getLargestScreenSize returns the dimensions of the largest screen in a multi-monitor setup
func getLargestScreenSize() (int, int) {
	var width, height C.int
	C.largestDisplay(&width, &height)
	return int(width), int(height)
}
