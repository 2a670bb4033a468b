package domain

// VerifyReport describes a side-by-side build of both strategies for one bound.
type VerifyReport struct {
	Bound            int64
	Workers          int
	Entries          int
	SequentialDigest uint64
	ParallelDigest   uint64
}

// Consistent reports whether both strategies produced the same composite set.
func (r VerifyReport) Consistent() bool {
	return r.SequentialDigest == r.ParallelDigest
}
