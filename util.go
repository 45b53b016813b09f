package huffman

import (
	mathbits "math/bits"
)

// depthHint returns the depth of a balanced binary tree with n leaves.  It is
// used to size traversal stacks; real trees may be deeper.
func depthHint(n int) int {
	if n <= 1 {
		return 1
	}
	return mathbits.Len(uint(n - 1))
}
