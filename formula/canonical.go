package formula

// Canonical returns f's canonical form: a copy of f, normalized, then
// serialized. Two formulas share a canonical form iff they are
// α-equivalent. Canonical never mutates f (resolving spec.md §9 Open
// Question (b): this package has no mutating is_equal, only this
// side-effect-free canonicalization plus the pure Equal comparator).
func Canonical(f Formula) string {
	cp := f.SubtreeCopy(f.Root())
	cp.Normalize()
	return cp.String()
}
