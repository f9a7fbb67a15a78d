package wireflow

// Code in this file follows the same shape for every arity: curry f one
// argument at a time via CellMap, then thread the rest through Apply.
// Regenerate by hand if a new arity is needed; there is no code generator
// wired up for it in this package.

// Lift2 combines two cells with f, recomputed whenever either updates.
func Lift2[A, B, C any](f func(A, B) C, ca *Cell[A], cb *Cell[B]) *Cell[C] {
	cf := CellMap(ca, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
	return Apply(cf, cb)
}

// Lift3 combines three cells with f, recomputed whenever any of them
// updates.
func Lift3[A, B, C, D any](f func(A, B, C) D, ca *Cell[A], cb *Cell[B], cc *Cell[C]) *Cell[D] {
	cf := CellMap(ca, func(a A) func(B, C) D {
		return func(b B, c C) D { return f(a, b, c) }
	})
	return Apply2(cf, cb, cc)
}

// Lift4 combines four cells with f.
func Lift4[A, B, C, D, E any](f func(A, B, C, D) E, ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D]) *Cell[E] {
	cf := CellMap(ca, func(a A) func(B, C, D) E {
		return func(b B, c C, d D) E { return f(a, b, c, d) }
	})
	return Apply3(cf, cb, cc, cd)
}

// Lift5 combines five cells with f.
func Lift5[A, B, C, D, E, F any](f func(A, B, C, D, E) F, ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D], ce *Cell[E]) *Cell[F] {
	cf := CellMap(ca, func(a A) func(B, C, D, E) F {
		return func(b B, c C, d D, e E) F { return f(a, b, c, d, e) }
	})
	return Apply4(cf, cb, cc, cd, ce)
}

// Lift6 combines six cells with f.
func Lift6[A, B, C, D, E, F, G any](f func(A, B, C, D, E, F) G, ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D], ce *Cell[E], cf2 *Cell[F]) *Cell[G] {
	cf := CellMap(ca, func(a A) func(B, C, D, E, F) G {
		return func(b B, c C, d D, e E, ff F) G { return f(a, b, c, d, e, ff) }
	})
	return Apply5(cf, cb, cc, cd, ce, cf2)
}

// Lift7 combines seven cells with f.
func Lift7[A, B, C, D, E, F, G, H any](f func(A, B, C, D, E, F, G) H, ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D], ce *Cell[E], cf2 *Cell[F], cg *Cell[G]) *Cell[H] {
	cf := CellMap(ca, func(a A) func(B, C, D, E, F, G) H {
		return func(b B, c C, d D, e E, ff F, g G) H { return f(a, b, c, d, e, ff, g) }
	})
	return Apply6(cf, cb, cc, cd, ce, cf2, cg)
}

// Lift8 combines eight cells with f.
func Lift8[A, B, C, D, E, F, G, H, I any](f func(A, B, C, D, E, F, G, H) I, ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D], ce *Cell[E], cf2 *Cell[F], cg *Cell[G], ch *Cell[H]) *Cell[I] {
	cf := CellMap(ca, func(a A) func(B, C, D, E, F, G, H) I {
		return func(b B, c C, d D, e E, ff F, g G, h H) I { return f(a, b, c, d, e, ff, g, h) }
	})
	return Apply7(cf, cb, cc, cd, ce, cf2, cg, ch)
}

// Apply2 applies a curried two-argument function cell to two argument
// cells. It underlies Lift3 and up, folding Apply one argument at a time.
func Apply2[A, B, C any](cf *Cell[func(A, B) C], ca *Cell[A], cb *Cell[B]) *Cell[C] {
	stepped := CellMap(cf, func(f func(A, B) C) func(A) func(B) C {
		return func(a A) func(B) C {
			return func(b B) C { return f(a, b) }
		}
	})
	return Apply(Apply(stepped, ca), cb)
}

// Apply3 folds Apply across three argument cells.
func Apply3[A, B, C, D any](cf *Cell[func(A, B, C) D], ca *Cell[A], cb *Cell[B], cc *Cell[C]) *Cell[D] {
	stepped := CellMap(cf, func(f func(A, B, C) D) func(A) func(B, C) D {
		return func(a A) func(B, C) D {
			return func(b B, c C) D { return f(a, b, c) }
		}
	})
	return Apply2(Apply(stepped, ca), cb, cc)
}

// Apply4 folds Apply across four argument cells.
func Apply4[A, B, C, D, E any](cf *Cell[func(A, B, C, D) E], ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D]) *Cell[E] {
	stepped := CellMap(cf, func(f func(A, B, C, D) E) func(A) func(B, C, D) E {
		return func(a A) func(B, C, D) E {
			return func(b B, c C, d D) E { return f(a, b, c, d) }
		}
	})
	return Apply3(Apply(stepped, ca), cb, cc, cd)
}

// Apply5 folds Apply across five argument cells.
func Apply5[A, B, C, D, E, F any](cf *Cell[func(A, B, C, D, E) F], ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D], ce *Cell[E]) *Cell[F] {
	stepped := CellMap(cf, func(f func(A, B, C, D, E) F) func(A) func(B, C, D, E) F {
		return func(a A) func(B, C, D, E) F {
			return func(b B, c C, d D, e E) F { return f(a, b, c, d, e) }
		}
	})
	return Apply4(Apply(stepped, ca), cb, cc, cd, ce)
}

// Apply6 folds Apply across six argument cells.
func Apply6[A, B, C, D, E, F, G any](cf *Cell[func(A, B, C, D, E, F) G], ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D], ce *Cell[E], cf2 *Cell[F]) *Cell[G] {
	stepped := CellMap(cf, func(f func(A, B, C, D, E, F) G) func(A) func(B, C, D, E, F) G {
		return func(a A) func(B, C, D, E, F) G {
			return func(b B, c C, d D, e E, ff F) G { return f(a, b, c, d, e, ff) }
		}
	})
	return Apply5(Apply(stepped, ca), cb, cc, cd, ce, cf2)
}

// Apply7 folds Apply across seven argument cells.
func Apply7[A, B, C, D, E, F, G, H any](cf *Cell[func(A, B, C, D, E, F, G) H], ca *Cell[A], cb *Cell[B], cc *Cell[C], cd *Cell[D], ce *Cell[E], cf2 *Cell[F], cg *Cell[G]) *Cell[H] {
	stepped := CellMap(cf, func(f func(A, B, C, D, E, F, G) H) func(A) func(B, C, D, E, F, G) H {
		return func(a A) func(B, C, D, E, F, G) H {
			return func(b B, c C, d D, e E, ff F, g G) H { return f(a, b, c, d, e, ff, g) }
		}
	})
	return Apply6(Apply(stepped, ca), cb, cc, cd, ce, cf2, cg)
}
