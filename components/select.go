// SPDX-License-Identifier: MIT

package components

// Largest returns the component with the most vertices and its index in comps.
// Ties go to the component that appears first.
//
// Errors: ErrEmptyGraph if comps is empty.
// Complexity: O(len(comps)).
func Largest(comps []Component) (Component, int, error) {
	if len(comps) == 0 {
		return nil, -1, ErrEmptyGraph
	}

	best := 0
	for i := 1; i < len(comps); i++ {
		if len(comps[i]) > len(comps[best]) {
			best = i
		}
	}

	return comps[best], best, nil
}
