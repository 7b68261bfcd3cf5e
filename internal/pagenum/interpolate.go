package pagenum

// InterpolateOptions bounds how far gap interpolation is willing to guess.
type InterpolateOptions struct {
	// MaxGap is the largest physical gap between two anchors that will be
	// filled. Wider gaps carry too much risk of plates, inserts, or a
	// numbering restart in between.
	MaxGap int

	// Tolerance is how far the printed-number gap may deviate from the
	// physical gap before the numbering pattern is considered irregular.
	Tolerance int
}

// DefaultInterpolateOptions returns the interpolation defaults: fill gaps of
// at most 10 pages where the printed gap is within 2 of the physical gap.
func DefaultInterpolateOptions() InterpolateOptions {
	return InterpolateOptions{
		MaxGap:    10,
		Tolerance: 2,
	}
}

// Interpolate extends a map of detected printed numbers with inferred
// entries for pages where detection failed. Detected entries are never
// overwritten: the result restricted to the input's keys equals the input.
//
// Three passes, in order:
//  1. interior gaps between consecutive anchors,
//  2. backward extension before the first anchor,
//  3. forward extension after the last anchor.
//
// The passes touch disjoint index ranges, so ordering never arbitrates
// between them.
func Interpolate(detected Map, pageCount int, opts InterpolateOptions) Map {
	if opts.MaxGap <= 0 || opts.Tolerance < 0 {
		opts = DefaultInterpolateOptions()
	}

	m := detected.Clone()
	anchors := detected.Anchors()
	if len(anchors) == 0 {
		return m
	}

	fillInteriorGaps(m, anchors, opts)
	extendBackward(m, anchors[0])
	extendForward(m, anchors, pageCount)

	return m
}

// fillInteriorGaps fills pages between consecutive anchors where the local
// numbering looks sequential.
func fillInteriorGaps(m Map, anchors []int, opts InterpolateOptions) {
	for i := 0; i < len(anchors)-1; i++ {
		idx1, idx2 := anchors[i], anchors[i+1]
		num1, num2 := m[idx1], m[idx2]

		physGap := idx2 - idx1
		pageGap := num2 - num1

		// No interior pages, or too wide to trust a linear guess.
		if physGap <= 1 || physGap > opts.MaxGap {
			continue
		}
		// Numbering too irregular between these anchors.
		if pageGap < physGap-opts.Tolerance || pageGap > physGap+opts.Tolerance {
			continue
		}

		switch {
		case pageGap == physGap:
			// Perfect 1:1 sequential numbering.
			for j := 1; j < physGap; j++ {
				m[idx1+j] = num1 + j
			}
		case pageGap == physGap-1:
			// Exactly one interior page is unnumbered (a separator or
			// plate). Assign sequentially from the left while the candidate
			// stays below the right anchor; the page that would collide is
			// treated as the unnumbered one.
			next := num1 + 1
			for idx := idx1 + 1; idx < idx2; idx++ {
				if next >= num2 {
					continue
				}
				m[idx] = next
				next++
			}
		default:
			// Known limitation: other in-tolerance relations (such as
			// pageGap == physGap+1 or physGap-2) have no fill rule yet.
			// These interior pages stay unfilled rather than guessing.
		}
	}
}

// extendBackward walks from the first anchor toward page 0, assigning
// strictly decreasing numbers. Only fires when there are enough preceding
// physical pages to plausibly hold numbers 1..num0-1.
func extendBackward(m Map, idx0 int) {
	num0 := m[idx0]
	if num0 <= 1 || num0-1 > idx0 {
		return
	}

	for idx := idx0 - 1; idx >= 0; idx-- {
		num := num0 - (idx0 - idx)
		if num < 1 {
			break
		}
		if _, ok := m[idx]; ok {
			break
		}
		m[idx] = num
	}
}

// extendForward fills every page after the last anchor with sequential
// numbers, but only when the last two anchors are physically adjacent.
// Adjacent trailing anchors indicate the tail of the document numbers
// reliably; a lone trailing anchor does not.
func extendForward(m Map, anchors []int, pageCount int) {
	if len(anchors) < 2 {
		return
	}

	idxN := anchors[len(anchors)-1]
	if idxN-anchors[len(anchors)-2] != 1 {
		return
	}

	numN := m[idxN]
	for idx := idxN + 1; idx < pageCount; idx++ {
		if _, ok := m[idx]; ok {
			continue
		}
		m[idx] = numN + (idx - idxN)
	}
}
