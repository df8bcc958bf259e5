/*
Package synth generates the synthetic dashboard frames for each demo topic.

A Dashboard is a 2x2 grid of panel functions. Run clears the surface, redraws
every panel from freshly generated series and rasterizes the result, once per
frame. The series are fabricated from sinusoids, uniform noise and random
walks; none of them carry over from one frame to the next.

	res, err := synth.BESS().Run(ctx, synth.WithSeed(42))
	if err != nil {
		return err
	}
	fmt.Println(len(res.Frames)) // 150

Frames stay in memory. Callers that want files attach an OnFrame hook.
*/
package synth
