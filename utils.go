package linearmap

import "unsafe"

// Estimates capacity (number of cells) from the given memory size in bytes.
// Only the cell array is accounted for, not the key and value bytes.
func CapacityFromSize(size uintptr) int {
	return int(size / unsafe.Sizeof(cell{}))
}
