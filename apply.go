package scalar

// The Apply functions dispatch on the active alternatives of two variants at
// once. The outer visitor's case for v1's alternative returns an exhaustive
// visitor for v2, so every combination must be handled before the call will
// compile, and exactly one combined case runs. More than two variants nest
// the same way: make the inner visitor's result a visitor for the next
// variant and Match it.

func Apply22[A, B, E, F, R any](vis Visitor2[A, B, Visitor2[E, F, R]], v1 Variant2[A, B], v2 Variant2[E, F]) R {
	return Match2(v2, Match2(v1, vis))
}

func Apply24[A, B, E, F, G, H, R any](vis Visitor2[A, B, Visitor4[E, F, G, H, R]], v1 Variant2[A, B], v2 Variant4[E, F, G, H]) R {
	return Match4(v2, Match2(v1, vis))
}

func Apply42[A, B, C, D, E, F, R any](vis Visitor4[A, B, C, D, Visitor2[E, F, R]], v1 Variant4[A, B, C, D], v2 Variant2[E, F]) R {
	return Match2(v2, Match4(v1, vis))
}

func Apply44[A, B, C, D, E, F, G, H, R any](vis Visitor4[A, B, C, D, Visitor4[E, F, G, H, R]], v1 Variant4[A, B, C, D], v2 Variant4[E, F, G, H]) R {
	return Match4(v2, Match4(v1, vis))
}
