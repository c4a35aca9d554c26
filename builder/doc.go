// Package builder assembles state.State fixtures from composable
// constructors: anyon rows plus the standard fusion schedules over them.
//
//	st, err := builder.BuildState(
//		[]builder.BuilderOption{builder.WithIDScheme(builder.LetterIDFn)},
//		builder.Anyons(6, anyon.Sigma),
//		builder.Chain(),
//	)
//
// Schedules (each yields a valid basis for the anyons present):
//
//   - Chain:     (0 1)@t, (0 2)@t+1, … ; a left fold onto anyon 0.
//   - RightFold: (n-2 n-1)@t, (n-3 n-2)@t+1, … (0 1).
//   - Balanced:  adjacent survivors fused pairwise, one level per step.
//   - Random:    one random adjacent pair of survivors per step (needs WithSeed
//     or WithRand).
//
// A schedule starts one step after the state's last recorded op, so
// constructors compose in order. Constructors return sentinel errors; option
// constructors panic on meaningless values.
package builder
