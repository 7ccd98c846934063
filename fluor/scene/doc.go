// Package scene runs the selected spectrum calculators for one configuration
// and collects their traces for a drawing surface.
//
// A [Session] keeps one calculator of each kind across updates together with
// the random source used for laser-intensity noise. [Session.Update] resolves
// the user inputs, recomputes every selected calculator and returns a [Result]
// that can be sent to any [Canvas].
package scene
