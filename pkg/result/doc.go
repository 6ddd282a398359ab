// Package result provides an explicit two-variant outcome type for fallible
// computations.
//
// A [Result] holds either a success value of type S or an error value of
// type E. The variant is fixed when the value is built and never changes.
// Unlike the (value, error) pair, the error payload can be any type, which
// lets validation code carry plain messages or lists of messages as data.
//
// # Basic Usage
//
//	r := result.Success[string](2)
//	r = result.Map(r, func(i int) int { return i + 1 })
//	fmt.Println(r) // Success[3]
//
//	sum := r.Compose(result.Success[string](3), func(a, b int) int { return a + b })
//	sum = sum.Filter(func(i int) bool { return i > 5 }, func() string { return "Invalid value" })
//
// # Combinators
//
// Go methods cannot introduce type parameters, so combinators that change
// the success or error type ([Map], [FlatMap], [MapError]) are free
// functions. Combinators that keep both types ([Result.Filter],
// [Result.Compose], [Result.OrElse], [Result.OrElseGet]) are methods.
//
// # Invalid State Access
//
// [Result.Value] on an error and [Result.Err] on a success are programming
// mistakes. They panic with an error marked [ErrInvalidStateAccess], so a
// recovered value can be matched with errors.Is. Use [Result.Get] and
// [Result.GetErr] when the variant is not known.
package result
